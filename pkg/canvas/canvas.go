// Package canvas holds the rendered image and writes it out as PPM or via
// the standard image encoders.
package canvas

import (
	"fmt"
	"math"
	"strings"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// ppmMaxLineLength is the longest line the plain PPM format allows.
const ppmMaxLineLength = 70

// Canvas is a width x height grid of colors, addressed with (0, 0) at the
// top left.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel writes the color at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, color core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// ToPPM serializes the canvas as a plain (P3) PPM file. Color components are
// scaled to 0..255 and clamped, and data lines are wrapped to stay within 70
// characters.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			color := c.PixelAt(x, y)
			for _, value := range [3]float64{color.R, color.G, color.B} {
				component := fmt.Sprintf("%d", clampComponent(value))
				switch {
				case lineLen == 0:
					sb.WriteString(component)
					lineLen = len(component)
				case lineLen+1+len(component) > ppmMaxLineLength:
					sb.WriteByte('\n')
					sb.WriteString(component)
					lineLen = len(component)
				default:
					sb.WriteByte(' ')
					sb.WriteString(component)
					lineLen += 1 + len(component)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// clampComponent maps a color component to the 0..255 PPM range.
func clampComponent(value float64) int {
	scaled := int(math.Round(value * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}
