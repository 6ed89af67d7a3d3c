package renderer

import (
	"math"
	"testing"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

const testTolerance = 1e-4

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < testTolerance
}

func vectorsEqual(a, b core.Vector) bool {
	return floatsEqual(a.X, b.X) && floatsEqual(a.Y, b.Y) && floatsEqual(a.Z, b.Z)
}

func pointsEqual(a, b core.Point) bool {
	return floatsEqual(a.X, b.X) && floatsEqual(a.Y, b.Y) && floatsEqual(a.Z, b.Z)
}

func TestCameraPixelSize(t *testing.T) {
	t.Run("horizontal canvas", func(t *testing.T) {
		c := NewCamera(200, 125, math.Pi/2)
		if !floatsEqual(c.PixelSize(), 0.01) {
			t.Errorf("pixel size = %v, want 0.01", c.PixelSize())
		}
	})

	t.Run("vertical canvas", func(t *testing.T) {
		c := NewCamera(125, 200, math.Pi/2)
		if !floatsEqual(c.PixelSize(), 0.01) {
			t.Errorf("pixel size = %v, want 0.01", c.PixelSize())
		}
	})
}

func TestRayForPixel(t *testing.T) {
	t.Run("through the canvas center", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		ray := c.RayForPixel(100, 50)

		if !pointsEqual(ray.Origin, core.Origin()) {
			t.Errorf("origin = %v, want (0, 0, 0)", ray.Origin)
		}
		if !vectorsEqual(ray.Direction, core.NewVector(0, 0, -1)) {
			t.Errorf("direction = %v, want (0, 0, -1)", ray.Direction)
		}
	})

	t.Run("through a canvas corner", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		ray := c.RayForPixel(0, 0)

		if !pointsEqual(ray.Origin, core.Origin()) {
			t.Errorf("origin = %v, want (0, 0, 0)", ray.Origin)
		}
		if !vectorsEqual(ray.Direction, core.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("direction = %v, want (0.66519, 0.33259, -0.66851)", ray.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		c.SetTransform(core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)))
		ray := c.RayForPixel(100, 50)

		if !pointsEqual(ray.Origin, core.NewPoint(0, 2, -5)) {
			t.Errorf("origin = %v, want (0, 2, -5)", ray.Origin)
		}
		if !vectorsEqual(ray.Direction, core.NewVector(math.Sqrt2/2, 0, -math.Sqrt2/2)) {
			t.Errorf("direction = %v, want (sqrt2/2, 0, -sqrt2/2)", ray.Direction)
		}
	})
}

func TestRaysForPixel(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2)

	for _, samples := range []int{1, 2, 4, 8, 16} {
		rays := c.RaysForPixel(100, 50, samples)
		if len(rays) != samples {
			t.Errorf("samples = %d: got %d rays", samples, len(rays))
		}
	}

	t.Run("single sample matches the center ray", func(t *testing.T) {
		rays := c.RaysForPixel(100, 50, 1)
		center := c.RayForPixel(100, 50)

		if !pointsEqual(rays[0].Origin, center.Origin) || !vectorsEqual(rays[0].Direction, center.Direction) {
			t.Error("the lone sample should go through the pixel center")
		}
	})

	t.Run("samples spread within the pixel", func(t *testing.T) {
		rays := c.RaysForPixel(0, 0, 4)
		for i := 1; i < len(rays); i++ {
			if vectorsEqual(rays[0].Direction, rays[i].Direction) {
				t.Errorf("samples 0 and %d have identical directions", i)
			}
		}
	})
}

func TestSampleOffsetsRejectsUnsupportedCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unsupported sample count")
		}
	}()
	sampleOffsets(3)
}
