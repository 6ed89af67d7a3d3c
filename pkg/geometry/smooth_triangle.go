package geometry

import "github.com/whitted-dev/go-raytracer/pkg/core"

// SmoothTriangle is a triangle with a normal per vertex; the surface normal
// at a hit is the barycentric blend of the three, giving meshes the
// appearance of curvature.
type SmoothTriangle struct {
	shapeBase
	P1, P2, P3 core.Point
	N1, N2, N3 core.Vector
	e1, e2     core.Vector
}

// NewSmoothTriangle creates a triangle from three vertices and their normals.
func NewSmoothTriangle(p1, p2, p3 core.Point, n1, n2, n3 core.Vector) *SmoothTriangle {
	bounds := core.NewEmptyBounds().Add(p1).Add(p2).Add(p3)
	return &SmoothTriangle{
		shapeBase: newShapeBase(bounds),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		N1:        n1,
		N2:        n2,
		N3:        n3,
		e1:        p2.Sub(p1),
		e2:        p3.Sub(p1),
	}
}

func (t *SmoothTriangle) localIntersect(ray core.Ray) []Intersection {
	tHit, u, v, ok := mollerTrumbore(ray, t.P1, t.e1, t.e2)
	if !ok {
		return nil
	}

	hit := Intersection{T: tHit, Object: t, U: u, V: v}
	hit.LocalPoint = ray.Position(tHit)
	hit.Normal = t.interpolatedNormal(u, v)
	return []Intersection{hit}
}

func (t *SmoothTriangle) localNormalAt(_ core.Point, hit Intersection) core.Vector {
	return t.interpolatedNormal(hit.U, hit.V)
}

func (t *SmoothTriangle) interpolatedNormal(u, v float64) core.Vector {
	return t.N2.Multiply(u).
		Add(t.N3.Multiply(v)).
		Add(t.N1.Multiply(1 - u - v))
}
