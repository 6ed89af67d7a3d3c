package geometry

import (
	"fmt"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/material"
)

// Operation is a CSG boolean combination of two solids.
type Operation int

const (
	// OpUnion keeps the surface enclosing both solids.
	OpUnion Operation = iota
	// OpIntersection keeps the surface where the solids overlap.
	OpIntersection
	// OpDifference keeps the left solid minus the right.
	OpDifference
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// IntersectionAllowed is the CSG filter rule: given which subtree produced a
// hit (lhit) and whether the ray is currently inside each solid, it decides
// whether the hit lies on the combined surface.
func IntersectionAllowed(op Operation, lhit, inLeft, inRight bool) bool {
	switch op {
	case OpUnion:
		return (lhit && !inRight) || (!lhit && !inLeft)
	case OpIntersection:
		return (lhit && inRight) || (!lhit && inLeft)
	case OpDifference:
		return (lhit && !inRight) || (!lhit && inLeft)
	default:
		panic(fmt.Sprintf("unknown CSG operation %d", int(op)))
	}
}

// CSG combines exactly two child solids with a boolean operation. Its bounds
// are the union of both children's parent-space bounds.
type CSG struct {
	shapeBase
	operation Operation
	left      Object
	right     Object
}

// NewCSG creates a CSG combining left and right with the given operation.
func NewCSG(op Operation, left, right Object) *CSG {
	bounds := left.ParentSpaceBounds().Union(right.ParentSpaceBounds())
	return &CSG{
		shapeBase: newShapeBase(bounds),
		operation: op,
		left:      left,
		right:     right,
	}
}

// Operation returns the boolean operation.
func (c *CSG) Operation() Operation {
	return c.operation
}

// Left returns the left child.
func (c *CSG) Left() Object {
	return c.left
}

// Right returns the right child.
func (c *CSG) Right() Object {
	return c.right
}

// SetMaterial assigns the material to the CSG and every descendant.
func (c *CSG) SetMaterial(m material.Material) {
	c.material = m
	c.left.SetMaterial(m)
	c.right.SetMaterial(m)
}

// Divide forwards subdivision to both children.
func (c *CSG) Divide(threshold int) {
	c.left.Divide(threshold)
	c.right.Divide(threshold)
}

func (c *CSG) localIntersect(ray core.Ray) []Intersection {
	if !c.bounds.Intersects(ray) {
		return nil
	}

	xs := Intersect(c.left, ray)
	xs = append(xs, Intersect(c.right, ray)...)
	return c.filterIntersections(Intersections(xs...))
}

// filterIntersections walks the sorted hits, flipping an inside flag for the
// subtree each hit belongs to, and keeps only the hits the operation allows.
func (c *CSG) filterIntersections(xs []Intersection) []Intersection {
	inLeft := false
	inRight := false

	var result []Intersection
	for _, x := range xs {
		lhit := includes(c.left, x.Object)

		if IntersectionAllowed(c.operation, lhit, inLeft, inRight) {
			result = append(result, x)
		}

		if lhit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

func (c *CSG) localNormalAt(core.Point, Intersection) core.Vector {
	panic("csg has no surface of its own; normals come from its children")
}
