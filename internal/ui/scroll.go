package ui

import "math"

// ScrollState provides vertical scroll tracking with smooth animation.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input
// and reports whether it moved.
func (s *ScrollState) HandleMouseWheel() bool {
	_, wy := MouseWheelDelta()
	if wy == 0 {
		return false
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY - wy*ScrollWheelSpeed)
	return true
}

// Animate steps the scroll toward its target and reports whether it is
// still moving.
func (s *ScrollState) Animate() bool {
	if math.Abs(s.TargetScrollY-s.ScrollY) < 0.5 {
		s.ScrollY = s.TargetScrollY
		return false
	}
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	return true
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureVisible scrolls so the span [top, top+height) lies within a viewport
// of viewHeight, all in content coordinates.
func (s *ScrollState) EnsureVisible(top, height, viewHeight float64) {
	if top+height > viewHeight+s.TargetScrollY {
		s.TargetScrollY = top + height - viewHeight
	}
	if top < s.TargetScrollY {
		s.TargetScrollY = top
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY)
}

func (s *ScrollState) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, s.MaxScrollY))
}
