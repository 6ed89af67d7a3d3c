package renderer

import "time"

// RenderStats summarizes a completed render.
type RenderStats struct {
	Width    int
	Height   int
	Workers  int
	Samples  int
	Duration time.Duration
}

// PixelCount returns the number of pixels rendered.
func (s RenderStats) PixelCount() int {
	return s.Width * s.Height
}

// RayCount returns the number of primary rays cast, including antialiasing
// samples.
func (s RenderStats) RayCount() int {
	return s.PixelCount() * s.Samples
}

// PixelsPerSecond returns the render throughput.
func (s RenderStats) PixelsPerSecond() float64 {
	secs := s.Duration.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.PixelCount()) / secs
}
