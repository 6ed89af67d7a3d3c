package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ToImage converts the canvas into a standard library image.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			px := c.PixelAt(x, y)
			img.Set(x, y, color.NRGBA{
				R: uint8(clampComponent(px.R)),
				G: uint8(clampComponent(px.G)),
				B: uint8(clampComponent(px.B)),
				A: 255,
			})
		}
	}
	return img
}

// Save writes the canvas to path, picking the encoder from the file
// extension. Supported formats are ppm, png, tiff and bmp.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		_, err = f.WriteString(c.ToPPM())
	case ".png":
		err = png.Encode(f, c.ToImage())
	case ".tif", ".tiff":
		err = tiff.Encode(f, c.ToImage(), nil)
	case ".bmp":
		err = bmp.Encode(f, c.ToImage())
	default:
		return fmt.Errorf("canvas: unsupported output format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return nil
}
