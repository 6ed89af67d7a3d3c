package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Triangle is a flat triangle defined by three vertices, with a single
// face normal cached at construction.
type Triangle struct {
	shapeBase
	P1, P2, P3 core.Point
	e1, e2     core.Vector
	normal     core.Vector
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(p1, p2, p3 core.Point) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	bounds := core.NewEmptyBounds().Add(p1).Add(p2).Add(p3)
	return &Triangle{
		shapeBase: newShapeBase(bounds),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		e1:        e1,
		e2:        e2,
		normal:    e2.Cross(e1).Normalize(),
	}
}

func (t *Triangle) localIntersect(ray core.Ray) []Intersection {
	tHit, u, v, ok := mollerTrumbore(ray, t.P1, t.e1, t.e2)
	if !ok {
		return nil
	}

	hit := Intersection{T: tHit, Object: t, U: u, V: v}
	hit.LocalPoint = ray.Position(tHit)
	hit.Normal = t.normal
	return []Intersection{hit}
}

func (t *Triangle) localNormalAt(_ core.Point, _ Intersection) core.Vector {
	return t.normal
}

// mollerTrumbore runs the Moller-Trumbore ray/triangle test. A near-zero
// determinant (ray parallel to the triangle plane) and barycentric
// coordinates outside [0, 1] both report a miss.
func mollerTrumbore(ray core.Ray, p1 core.Point, e1, e2 core.Vector) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Sub(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}
