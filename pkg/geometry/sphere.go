package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Sphere is the unit sphere centered on the origin of its local space.
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the default material and transform.
func NewSphere() *Sphere {
	bounds := core.NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	return &Sphere{shapeBase: newShapeBase(bounds)}
}

// NewGlassSphere creates a sphere of fully transparent glass
// (transparency 1.0, refractive index 1.5).
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

func (s *Sphere) localIntersect(ray core.Ray) []Intersection {
	// Quadratic from |O + tD|^2 = 1.
	sphereToRay := ray.Origin.Sub(core.Origin())

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s, ray),
		NewIntersection(t2, s, ray),
	}
}

func (s *Sphere) localNormalAt(p core.Point, _ Intersection) core.Vector {
	return p.Sub(core.Origin())
}
