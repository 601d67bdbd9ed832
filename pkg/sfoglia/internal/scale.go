package internal

// baselineHeight is the display height the widget metrics were tuned
// against. Larger displays scale all pixel metrics proportionally.
const baselineHeight = 768

// GetScaleFactor returns the display scale relative to the baseline.
// Never returns less than 1 so metrics stay usable on small panels.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}

	_, height, err := window.Renderer.GetOutputSize()
	if err != nil || height <= 0 {
		return 1
	}

	scale := float32(height) / float32(baselineHeight)
	if scale < 1 {
		return 1
	}
	return scale
}
