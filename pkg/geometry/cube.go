package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1 to 1 on every axis of its local
// space.
type Cube struct {
	shapeBase
}

// NewCube creates a unit cube with the default material and transform.
func NewCube() *Cube {
	bounds := core.NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	return &Cube{shapeBase: newShapeBase(bounds)}
}

func (c *Cube) localIntersect(ray core.Ray) []Intersection {
	// Slab method: intersect the three per-axis [tmin, tmax] intervals.
	xtMin, xtMax := cubeCheckAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := cubeCheckAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := cubeCheckAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c, ray),
		NewIntersection(tMax, c, ray),
	}
}

// cubeCheckAxis returns the ray's [tmin, tmax] interval for one slab of the
// unit cube. A ray with a near-zero direction component stays inside the
// slab for every t or for none; an origin sitting exactly on a face plane
// counts as inside, so a ray grazing along a face hits the surface instead
// of producing a NaN interval.
func cubeCheckAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) < core.Epsilon {
		if tMinNumerator <= 0 && tMaxNumerator >= 0 {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(-1)
	}

	tMin := tMinNumerator / direction
	tMax := tMaxNumerator / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

func (c *Cube) localNormalAt(p core.Point, _ Intersection) core.Vector {
	// The face hit is the one whose coordinate has the largest magnitude.
	maxC := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))

	switch maxC {
	case math.Abs(p.X):
		return core.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return core.NewVector(0, p.Y, 0)
	default:
		return core.NewVector(0, 0, p.Z)
	}
}
