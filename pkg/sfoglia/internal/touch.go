package internal

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

// TapPoint is a touchscreen tap in window coordinates.
type TapPoint struct {
	X int32
	Y int32
}

// TouchReader decodes taps from an evdev touchscreen device.
// Handheld panels deliver touches through /dev/input/event* rather than
// through SDL, so the reader runs its own goroutine and publishes taps
// on a channel that widget event loops select on.
type TouchReader struct {
	device *evdev.InputDevice
	taps   chan TapPoint
	done   chan struct{}

	minX, maxX int32
	minY, maxY int32
}

// NewTouchReader opens the touchscreen device and starts reading taps.
func NewTouchReader(devicePath string) (*TouchReader, error) {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", devicePath, err)
	}

	reader := &TouchReader{
		device: device,
		taps:   make(chan TapPoint, 8),
		done:   make(chan struct{}),
	}

	absInfos, err := device.AbsInfos()
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("touch: abs info %s: %w", devicePath, err)
	}
	if info, ok := absInfos[evdev.ABS_X]; ok {
		reader.minX, reader.maxX = info.Minimum, info.Maximum
	}
	if info, ok := absInfos[evdev.ABS_Y]; ok {
		reader.minY, reader.maxY = info.Minimum, info.Maximum
	}

	go reader.run()

	return reader, nil
}

// Taps returns the channel taps are published on. It is never closed;
// readers should select on it alongside their own exit condition.
func (r *TouchReader) Taps() <-chan TapPoint {
	return r.taps
}

// Close stops the reader. Safe to call once.
func (r *TouchReader) Close() {
	close(r.done)
	r.device.Close()
}

func (r *TouchReader) run() {
	var rawX, rawY int32
	touching := false

	for {
		event, err := r.device.ReadOne()
		if err != nil {
			select {
			case <-r.done:
			default:
				GetInternalLogger().Warn("Touchscreen read failed", "error", err)
			}
			return
		}

		switch event.Type {
		case evdev.EV_ABS:
			switch event.Code {
			case evdev.ABS_X:
				rawX = event.Value
			case evdev.ABS_Y:
				rawY = event.Value
			}

		case evdev.EV_KEY:
			if event.Code != evdev.BTN_TOUCH {
				continue
			}
			if event.Value == 1 {
				touching = true
				continue
			}
			// Finger lifted: the tap lands where the finger last was.
			if touching {
				touching = false
				r.publish(rawX, rawY)
			}
		}
	}
}

func (r *TouchReader) publish(rawX, rawY int32) {
	tap := TapPoint{
		X: scaleAxis(rawX, r.minX, r.maxX, window.GetWidth()),
		Y: scaleAxis(rawY, r.minY, r.maxY, window.GetHeight()),
	}

	select {
	case r.taps <- tap:
	default:
		// Event loop is behind; dropping a tap beats blocking the reader.
	}
}

func scaleAxis(value, min, max, extent int32) int32 {
	if max <= min {
		return value
	}
	scaled := int64(value-min) * int64(extent) / int64(max-min)
	if scaled < 0 {
		scaled = 0
	}
	if scaled >= int64(extent) {
		scaled = int64(extent) - 1
	}
	return int32(scaled)
}
