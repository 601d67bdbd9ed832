package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDirectionalInput_HeldDirection(t *testing.T) {
	input := NewDirectionalInput()
	require.False(t, input.IsHeld())
	require.Equal(t, DirectionNone, input.HeldDirection())

	input.SetHeld(DirectionRight, true)
	require.True(t, input.IsHeld())
	require.Equal(t, DirectionRight, input.HeldDirection())

	// Left wins when both are held.
	input.SetHeld(DirectionLeft, true)
	require.Equal(t, DirectionLeft, input.HeldDirection())

	input.SetHeld(DirectionLeft, false)
	require.Equal(t, DirectionRight, input.HeldDirection())

	input.SetHeld(DirectionRight, false)
	require.False(t, input.IsHeld())
}

func TestDirectionalInput_RepeatTiming(t *testing.T) {
	input := NewDirectionalInputWithTiming(0, 0)

	// Nothing held: no repeats.
	require.Equal(t, DirectionNone, input.Update())

	input.SetHeld(DirectionLeft, true)
	require.Equal(t, DirectionLeft, input.Update())
	require.Equal(t, DirectionLeft, input.Update())

	input.SetHeld(DirectionLeft, false)
	require.Equal(t, DirectionNone, input.Update())
}

func TestDirectionalInput_DelayBeforeFirstRepeat(t *testing.T) {
	input := NewDirectionalInputWithTiming(time.Hour, time.Hour)

	input.SetHeld(DirectionRight, true)
	require.Equal(t, DirectionNone, input.Update())
}

func TestDirectionalInput_Reset(t *testing.T) {
	input := NewDirectionalInput()
	input.SetHeld(DirectionLeft, true)

	input.Reset()
	require.False(t, input.IsHeld())
	require.Equal(t, DirectionNone, input.Update())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "left", DirectionLeft.String())
	require.Equal(t, "right", DirectionRight.String())
	require.Equal(t, "", DirectionNone.String())
}
