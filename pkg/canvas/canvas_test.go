package canvas

import (
	"strings"
	"testing"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(10, 20)

	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("dimensions = %dx%d, want 10x20", c.Width(), c.Height())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.PixelAt(x, y).Equal(core.Black()) {
				t.Fatalf("pixel (%d, %d) is not black", x, y)
			}
		}
	}
}

func TestSetPixel(t *testing.T) {
	c := NewCanvas(10, 20)
	red := core.NewColor(1, 0, 0)
	c.SetPixel(2, 3, red)

	if !c.PixelAt(2, 3).Equal(red) {
		t.Errorf("pixel (2, 3) = %v, want red", c.PixelAt(2, 3))
	}
}

func TestSetPixelIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(-1, 0, core.White())
	c.SetPixel(0, -1, core.White())
	c.SetPixel(2, 0, core.White())
	c.SetPixel(0, 2, core.White())
}

func TestToPPMHeader(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(c.ToPPM(), "\n")

	want := []string{"P3", "5 3", "255"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], w)
		}
	}
}

func TestToPPMPixelData(t *testing.T) {
	c := NewCanvas(5, 3)
	c.SetPixel(0, 0, core.NewColor(1.5, 0, 0))
	c.SetPixel(2, 1, core.NewColor(0, 0.5, 0))
	c.SetPixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.ToPPM(), "\n")
	want := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("data line %d = %q, want %q", i+1, lines[3+i], w)
		}
	}
}

func TestToPPMWrapsLongLines(t *testing.T) {
	c := NewCanvas(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			c.SetPixel(x, y, core.NewColor(1, 0.8, 0.6))
		}
	}

	lines := strings.Split(c.ToPPM(), "\n")
	want := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("data line %d = %q, want %q", i+1, lines[3+i], w)
		}
	}

	for i, line := range lines {
		if len(line) > 70 {
			t.Errorf("line %d is %d characters long", i+1, len(line))
		}
	}
}

func TestToPPMEndsWithNewline(t *testing.T) {
	c := NewCanvas(5, 3)
	if ppm := c.ToPPM(); !strings.HasSuffix(ppm, "\n") {
		t.Error("PPM output should end with a newline")
	}
}

func TestToImage(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(0, 0, core.NewColor(1, 0, 0))
	c.SetPixel(1, 1, core.NewColor(0, 0, 2))

	img := c.ToImage()
	if got := img.NRGBAAt(0, 0); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("pixel (0, 0) = %v, want opaque red", got)
	}
	if got := img.NRGBAAt(1, 1); got.B != 255 {
		t.Errorf("pixel (1, 1) blue = %d, want the clamped 255", got.B)
	}
}
