package geometry

import (
	"math"
	"testing"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

func TestCylinderIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		want      []float64
	}{
		{"miss from the side", core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0), nil},
		{"miss along the axis", core.Origin(), core.NewVector(0, 1, 0), nil},
		{"miss askew", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), nil},
		{"tangent", core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"through the center", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"at an angle", core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1), []float64{6.80798, 7.08872}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction.Normalize())
			assertTValues(t, Intersect(NewInfiniteCylinder(), ray), tt.want)
		})
	}
}

func TestCylinderNormalAt(t *testing.T) {
	tests := []struct {
		point core.Point
		want  core.Vector
	}{
		{core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{core.NewPoint(0, 5, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, -2, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
	}

	c := NewInfiniteCylinder()
	for _, tt := range tests {
		if n := NormalAt(c, tt.point, Intersection{}); !vectorsEqual(n, tt.want) {
			t.Errorf("normal at %v = %v, want %v", tt.point, n, tt.want)
		}
	}
}

func TestTruncatedCylinderIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		count     int
	}{
		{"diagonal escape", core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{"above", core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{"below", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{"at the upper limit", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{"at the lower limit", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{"through the middle", core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl := NewCylinder(1, 2, false)
			ray := core.NewRay(tt.origin, tt.direction.Normalize())

			if xs := Intersect(cyl, ray); len(xs) != tt.count {
				t.Errorf("got %d intersections, want %d", len(xs), tt.count)
			}
		})
	}
}

func TestClosedCylinderIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		count     int
	}{
		{"down the axis", core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{"through cap and wall above", core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{"exit at lower cap corner", core.NewPoint(0, 4, -2), core.NewVector(0, -1, 1), 2},
		{"through cap and wall below", core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{"exit at upper cap corner", core.NewPoint(0, -1, -2), core.NewVector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl := NewCylinder(1, 2, true)
			ray := core.NewRay(tt.origin, tt.direction.Normalize())

			if xs := Intersect(cyl, ray); len(xs) != tt.count {
				t.Errorf("got %d intersections, want %d", len(xs), tt.count)
			}
		})
	}
}

func TestCylinderCapNormals(t *testing.T) {
	tests := []struct {
		point core.Point
		want  core.Vector
	}{
		{core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
		{core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
		{core.NewPoint(0, 1, 0.5), core.NewVector(0, -1, 0)},
		{core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.5, 2, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0, 2, 0.5), core.NewVector(0, 1, 0)},
	}

	cyl := NewCylinder(1, 2, true)
	for _, tt := range tests {
		if n := NormalAt(cyl, tt.point, Intersection{}); !vectorsEqual(n, tt.want) {
			t.Errorf("normal at %v = %v, want %v", tt.point, n, tt.want)
		}
	}
}

func TestCylinderBounds(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		box := NewCylinder(-2, 2, false).Bounds()
		if !pointsEqual(box.Min, core.NewPoint(-1, -2, -1)) || !pointsEqual(box.Max, core.NewPoint(1, 2, 1)) {
			t.Errorf("bounds = %v..%v", box.Min, box.Max)
		}
	})

	t.Run("infinite", func(t *testing.T) {
		box := NewInfiniteCylinder().Bounds()
		if !math.IsInf(box.Min.Y, -1) || !math.IsInf(box.Max.Y, 1) {
			t.Errorf("bounds should be unbounded in y, got %v..%v", box.Min, box.Max)
		}
	})
}
