package gui

// ScrollState tracks scroll position for list boxes.
type ScrollState struct {
	ScrollY       float32 // Current scroll position
	TargetScrollY float32 // Target for smooth scrolling
	ContentHeight float32 // Total content height
}

// UpdateSmooth moves ScrollY toward TargetScrollY.
// Returns true if still animating.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	const smoothSpeed = 15.0
	const threshold = 0.5

	diff := s.TargetScrollY - s.ScrollY
	if diff < threshold && diff > -threshold {
		s.ScrollY = s.TargetScrollY
		return false
	}

	step := deltaTime * smoothSpeed
	if step > 1 {
		step = 1
	}
	s.ScrollY += diff * step
	return true
}

// SliderState tracks an active slider drag.
type SliderState struct {
	Dragging bool
}
