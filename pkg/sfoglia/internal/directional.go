package internal

import (
	"time"
)

// Direction represents a horizontal navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// DirectionalInput tracks held directions and handles repeat timing.
// Embed this in widget controllers to get consistent held-key repeat
// behavior when moving focus along a bar.
type DirectionalInput struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction.
func (d *DirectionalInput) SetHeld(direction Direction, held bool) {
	switch direction {
	case DirectionLeft:
		d.held.left = held
	case DirectionRight:
		d.held.right = held
	default:
		return
	}
	if !held {
		d.hasRepeated = false
	}
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If both are held, left wins. Returns DirectionNone if neither is held.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after
// repeatInterval.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}
