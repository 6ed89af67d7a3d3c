package geometry

import (
	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/material"
)

// Group aggregates child shapes under a shared transform. Children keep the
// transform they were built with, expressed relative to the group: rays are
// mapped into group space on the way down and normals lifted back out on the
// way up, so adding a child or re-transforming the group never rewrites
// child state.
type Group struct {
	shapeBase
	children []Object
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{shapeBase: newShapeBase(core.NewEmptyBounds())}
}

// AddChild adds a shape to the group and grows the group's bounds by the
// child's parent-space bounds. Children are expected to be fully configured
// before insertion; scenes are static once a render starts.
func (g *Group) AddChild(children ...Object) {
	for _, child := range children {
		g.bounds = g.bounds.Union(child.ParentSpaceBounds())
		g.children = append(g.children, child)
	}
}

// Children returns the group's direct children.
func (g *Group) Children() []Object {
	return g.children
}

// SetMaterial assigns the material to the group and every descendant.
func (g *Group) SetMaterial(m material.Material) {
	g.material = m
	for _, child := range g.children {
		child.SetMaterial(m)
	}
}

func (g *Group) localIntersect(ray core.Ray) []Intersection {
	// Acceleration: never descend into children when the ray misses the
	// group's bounds.
	if !g.bounds.Intersects(ray) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	return xs
}

func (g *Group) localNormalAt(core.Point, Intersection) core.Vector {
	panic("group has no surface of its own; normals come from its children")
}

// Divide recursively splits groups with at least threshold children. The
// group's bounds are cut at the midpoint of the longest axis; children that
// fit entirely in one half move into a new subgroup for that half, the rest
// stay at this level. Every child is then subdivided with the same
// threshold.
func (g *Group) Divide(threshold int) {
	if threshold <= len(g.children) {
		left, right := g.partitionChildren()
		if len(left) > 0 {
			g.makeSubgroup(left)
		}
		if len(right) > 0 {
			g.makeSubgroup(right)
		}
	}

	for _, child := range g.children {
		child.Divide(threshold)
	}
}

// partitionChildren removes and returns the children fitting entirely in the
// left and right halves of the group's bounds.
func (g *Group) partitionChildren() (left, right []Object) {
	leftBounds, rightBounds := g.bounds.Split()

	var remaining []Object
	for _, child := range g.children {
		childBounds := child.ParentSpaceBounds()
		switch {
		case leftBounds.ContainsBox(childBounds):
			left = append(left, child)
		case rightBounds.ContainsBox(childBounds):
			right = append(right, child)
		default:
			remaining = append(remaining, child)
		}
	}
	g.children = remaining
	return left, right
}

func (g *Group) makeSubgroup(shapes []Object) {
	sub := NewGroup()
	sub.AddChild(shapes...)
	g.AddChild(sub)
}
