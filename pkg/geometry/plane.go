package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Plane is the xz plane of its local space, infinite in x and z.
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the default material and transform.
func NewPlane() *Plane {
	bounds := core.NewBounds(
		core.NewPoint(math.Inf(-1), 0, math.Inf(-1)),
		core.NewPoint(math.Inf(1), 0, math.Inf(1)),
	)
	return &Plane{shapeBase: newShapeBase(bounds)}
}

func (p *Plane) localIntersect(ray core.Ray) []Intersection {
	// A ray parallel (or coplanar) to the plane never hits.
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p, ray)}
}

func (p *Plane) localNormalAt(_ core.Point, _ Intersection) core.Vector {
	return core.NewVector(0, 1, 0)
}
