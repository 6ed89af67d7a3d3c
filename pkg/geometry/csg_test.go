package geometry

import (
	"testing"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/material"
)

func TestNewCSG(t *testing.T) {
	s := NewSphere()
	c := NewCube()
	csg := NewCSG(OpUnion, s, c)

	if csg.Operation() != OpUnion {
		t.Errorf("operation = %v, want union", csg.Operation())
	}
	if csg.Left() != Object(s) || csg.Right() != Object(c) {
		t.Error("children are not the shapes the CSG was built from")
	}
}

func TestIntersectionAllowed(t *testing.T) {
	tests := []struct {
		op    Operation
		lhit  bool
		inl   bool
		inr   bool
		want  bool
	}{
		{OpUnion, true, true, true, false},
		{OpUnion, true, true, false, true},
		{OpUnion, true, false, true, false},
		{OpUnion, true, false, false, true},
		{OpUnion, false, true, true, false},
		{OpUnion, false, true, false, false},
		{OpUnion, false, false, true, true},
		{OpUnion, false, false, false, true},

		{OpIntersection, true, true, true, true},
		{OpIntersection, true, true, false, false},
		{OpIntersection, true, false, true, true},
		{OpIntersection, true, false, false, false},
		{OpIntersection, false, true, true, true},
		{OpIntersection, false, true, false, true},
		{OpIntersection, false, false, true, false},
		{OpIntersection, false, false, false, false},

		{OpDifference, true, true, true, false},
		{OpDifference, true, true, false, true},
		{OpDifference, true, false, true, false},
		{OpDifference, true, false, false, true},
		{OpDifference, false, true, true, true},
		{OpDifference, false, true, false, true},
		{OpDifference, false, false, true, false},
		{OpDifference, false, false, false, false},
	}

	for _, tt := range tests {
		got := IntersectionAllowed(tt.op, tt.lhit, tt.inl, tt.inr)
		if got != tt.want {
			t.Errorf("IntersectionAllowed(%v, %v, %v, %v) = %v, want %v",
				tt.op, tt.lhit, tt.inl, tt.inr, got, tt.want)
		}
	}
}

func TestCSGFilterIntersections(t *testing.T) {
	s1 := NewSphere()
	s2 := NewCube()

	xs := []Intersection{
		{T: 1, Object: s1},
		{T: 2, Object: s2},
		{T: 3, Object: s1},
		{T: 4, Object: s2},
	}

	tests := []struct {
		op    Operation
		want  []float64
	}{
		{OpUnion, []float64{1, 4}},
		{OpIntersection, []float64{2, 3}},
		{OpDifference, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			csg := NewCSG(tt.op, s1, s2)
			assertTValues(t, csg.filterIntersections(xs), tt.want)
		})
	}
}

func TestCSGIntersect(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		csg := NewCSG(OpUnion, NewSphere(), NewCube())
		ray := core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1))

		if xs := Intersect(csg, ray); len(xs) != 0 {
			t.Errorf("got %d intersections, want 0", len(xs))
		}
	})

	t.Run("ray hits", func(t *testing.T) {
		s1 := NewSphere()
		s2 := NewSphere()
		s2.SetTransform(core.Translation(0, 0, 0.5))
		csg := NewCSG(OpUnion, s1, s2)

		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs := Intersect(csg, ray)

		assertTValues(t, xs, []float64{4, 6.5})
		if xs[0].Object != Object(s1) || xs[1].Object != Object(s2) {
			t.Error("hits attributed to the wrong children")
		}
	})
}

// An unbounded operand gives the CSG unbounded bounds; the bounds check must
// not cull the whole solid.
func TestCSGIntersectUnboundedOperand(t *testing.T) {
	csg := NewCSG(OpUnion, NewPlane(), NewSphere())

	ray := core.NewRay(core.NewPoint(0, 5, 0), core.NewVector(0, -1, 0))
	xs := Intersect(csg, ray)

	// The sphere's top surface is the first boundary of the union.
	assertTValues(t, xs, []float64{4})
}

func TestCSGBoundsPruneTraversal(t *testing.T) {
	left := newRecordingShape()
	right := newRecordingShape()
	right.SetTransform(core.Translation(3, 0, 0))
	csg := NewCSG(OpDifference, left, right)

	ray := core.NewRay(core.NewPoint(0, 10, 0), core.NewVector(1, 0, 0))
	Intersect(csg, ray)

	if left.hitCount != 0 || right.hitCount != 0 {
		t.Error("children were tested although the ray misses the CSG bounds")
	}
}

func TestCSGBoundsContainChildren(t *testing.T) {
	left := NewSphere()
	right := NewSphere()
	right.SetTransform(core.Translation(3, 0, 0))
	csg := NewCSG(OpDifference, left, right)
	box := csg.Bounds()

	if !pointsEqual(box.Min, core.NewPoint(-1, -1, -1)) || !pointsEqual(box.Max, core.NewPoint(4, 1, 1)) {
		t.Errorf("bounds = %v..%v, want (-1,-1,-1)..(4,1,1)", box.Min, box.Max)
	}
}

// Hits from shapes nested in groups must still be attributed to the correct
// CSG subtree.
func TestCSGIncludesNestedShapes(t *testing.T) {
	s1 := NewSphere()
	g := NewGroup()
	g.AddChild(s1)

	s2 := NewSphere()
	s2.SetTransform(core.Translation(0, 0, 0.5))
	csg := NewCSG(OpUnion, g, s2)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := Intersect(csg, ray)

	assertTValues(t, xs, []float64{4, 6.5})
	if xs[0].Object != Object(s1) || xs[1].Object != Object(s2) {
		t.Error("hits attributed to the wrong children")
	}
}

func TestCSGSetMaterialPropagates(t *testing.T) {
	left := NewSphere()
	right := NewCube()
	csg := NewCSG(OpUnion, left, right)

	m := material.NewMaterial()
	m.Reflective = 0.75
	csg.SetMaterial(m)

	if left.Material().Reflective != 0.75 || right.Material().Reflective != 0.75 {
		t.Error("material did not propagate to both children")
	}
}

func TestCSGInvalidOperationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown operation")
		}
	}()
	IntersectionAllowed(Operation(42), true, false, false)
}
