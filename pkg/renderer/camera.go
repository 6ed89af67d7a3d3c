// Package renderer maps canvas pixels to world rays and renders scenes in
// parallel across row-partitioned workers.
package renderer

import (
	"fmt"
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Camera maps a canvas of hsize x vsize pixels onto a view plane one unit in
// front of the eye. The transform positions the camera in the world; its
// inverse is cached because every ray needs it.
type Camera struct {
	hsize            int
	vsize            int
	fieldOfView      float64
	transform        core.Matrix
	transformInverse core.Matrix
	pixelSize        float64
	halfWidth        float64
	halfHeight       float64
}

// NewCamera creates a camera for a canvas of the given dimensions with the
// given horizontal field of view in radians.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:            hsize,
		vsize:            vsize,
		fieldOfView:      fieldOfView,
		transform:        core.Identity(),
		transformInverse: core.Identity(),
		pixelSize:        halfWidth * 2 / float64(hsize),
		halfWidth:        halfWidth,
		halfHeight:       halfHeight,
	}
}

// HSize returns the canvas width in pixels.
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the canvas height in pixels.
func (c *Camera) VSize() int {
	return c.vsize
}

// PixelSize returns the world-space size of one pixel on the view plane.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the camera's view transform.
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform and refreshes the cached inverse.
func (c *Camera) SetTransform(transform core.Matrix) {
	c.transform = transform
	c.transformInverse = transform.Inverse()
}

// RayForPixel returns the ray through the center of the given pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	return c.rayThroughPixel(px, py, 0.5, 0.5)
}

// RaysForPixel returns one ray per antialiasing sample for the given pixel,
// using a fixed offset grid inside the pixel. Supported sample counts are 1,
// 2, 4, 8 and 16.
func (c *Camera) RaysForPixel(px, py, samples int) []core.Ray {
	offsets := sampleOffsets(samples)
	rays := make([]core.Ray, len(offsets))
	for i, offset := range offsets {
		rays[i] = c.rayThroughPixel(px, py, offset[0], offset[1])
	}
	return rays
}

// rayThroughPixel builds the world-space ray through the point (dx, dy)
// inside pixel (px, py), with dx and dy in 0..1 across the pixel.
func (c *Camera) rayThroughPixel(px, py int, dx, dy float64) core.Ray {
	xOffset := (float64(px) + dx) * c.pixelSize
	yOffset := (float64(py) + dy) * c.pixelSize

	// The camera looks toward -z, with +x to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.transformInverse.MultiplyPoint(core.Origin())
	direction := pixel.Sub(origin).Normalize()

	return core.NewRay(origin, direction)
}

// sampleOffsets returns the in-pixel sample grid for a sample count.
func sampleOffsets(samples int) [][2]float64 {
	switch samples {
	case 1:
		return [][2]float64{{0.5, 0.5}}
	case 2:
		return [][2]float64{{0.25, 0.5}, {0.75, 0.5}}
	case 4:
		return [][2]float64{
			{0.25, 0.25}, {0.75, 0.25},
			{0.25, 0.75}, {0.75, 0.75},
		}
	case 8:
		return [][2]float64{
			{0.25, 0.25}, {0.5, 0.25}, {0.75, 0.25},
			{0.25, 0.5}, {0.75, 0.5},
			{0.25, 0.75}, {0.5, 0.75}, {0.75, 0.75},
		}
	case 16:
		return [][2]float64{
			{0.125, 0.125}, {0.375, 0.125}, {0.625, 0.125}, {0.875, 0.125},
			{0.125, 0.375}, {0.375, 0.375}, {0.625, 0.375}, {0.875, 0.375},
			{0.125, 0.625}, {0.375, 0.625}, {0.625, 0.625}, {0.875, 0.625},
			{0.125, 0.875}, {0.375, 0.875}, {0.625, 0.875}, {0.875, 0.875},
		}
	default:
		panic(fmt.Sprintf("renderer: unsupported sample count %d (want 1, 2, 4, 8 or 16)", samples))
	}
}
