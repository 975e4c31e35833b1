package viewer

// MaxScroll returns the largest useful scroll offset for content of the given height shown in a viewport of the
// given height.
func MaxScroll(height, viewport int) int {
	if height <= viewport {
		return 0
	}
	return height - viewport
}

// Scroll is a vertical scroll position.
type Scroll struct {
	Offset int
}

// Up scrolls up by n lines, stopping at the top.
func (s *Scroll) Up(n int) {
	s.Offset -= n
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// Down scrolls down by n lines, stopping at MaxScroll(height, viewport).
func (s *Scroll) Down(n, height, viewport int) {
	s.Offset += n
	s.Clamp(height, viewport)
}

// Top scrolls to the first line.
func (s *Scroll) Top() {
	s.Offset = 0
}

// Bottom scrolls to the last full page.
func (s *Scroll) Bottom(height, viewport int) {
	s.Offset = MaxScroll(height, viewport)
}

// To scrolls so that line is the first visible line, as far as the content allows.
func (s *Scroll) To(line, height, viewport int) {
	s.Offset = line
	s.Clamp(height, viewport)
}

// Clamp brings the offset back into range after the content or viewport changes size.
func (s *Scroll) Clamp(height, viewport int) {
	if max := MaxScroll(height, viewport); s.Offset > max {
		s.Offset = max
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
