// Package geometry provides the shape abstraction, the ray/primitive
// intersection algorithms, composite shapes (groups and CSG) and the per-hit
// computations consumed by shading.
package geometry

import (
	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/material"
)

// Object is the capability set shared by every shape kind: primitives
// (sphere, plane, cube, cylinder, cone, triangle, smooth triangle) and the
// two composites (Group, CSG). The set is closed: the unexported local-space
// methods keep implementations inside this package, and every implementation
// embeds the same shapeBase record.
type Object interface {
	// Transform returns the shape's transform.
	Transform() core.Matrix
	// TransformInverse returns the cached inverse of the transform.
	TransformInverse() core.Matrix
	// SetTransform sets the transform, atomically refreshing the cached
	// inverse and inverse-transpose.
	SetTransform(transform core.Matrix)
	// Material returns the shape's material for reading or mutation.
	Material() *material.Material
	// SetMaterial assigns a material; composites propagate the assignment
	// to every descendant.
	SetMaterial(m material.Material)
	// CastsShadow reports whether the shape blocks shadow rays.
	CastsShadow() bool
	// SetCastsShadow toggles shadow casting.
	SetCastsShadow(casts bool)
	// Bounds returns the shape's bounding box in its own local space.
	Bounds() core.BoundingBox
	// ParentSpaceBounds returns the local bounds mapped by the shape's
	// transform into the space of its parent.
	ParentSpaceBounds() core.BoundingBox
	// Divide recursively subdivides composites with at least threshold
	// children into spatially partitioned subgroups. A no-op on primitives.
	Divide(threshold int)

	localIntersect(ray core.Ray) []Intersection
	localNormalAt(p core.Point, hit Intersection) core.Vector
	transformInverseTranspose() core.Matrix
}

// shapeBase is the state shared by all shape kinds. Setting the transform
// refreshes the cached inverse and inverse-transpose together; a stale
// derived matrix would silently corrupt every intersection.
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	shadow           bool
	bounds           core.BoundingBox
}

func newShapeBase(bounds core.BoundingBox) shapeBase {
	return shapeBase{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.NewMaterial(),
		shadow:           true,
		bounds:           bounds,
	}
}

func (b *shapeBase) Transform() core.Matrix {
	return b.transform
}

func (b *shapeBase) TransformInverse() core.Matrix {
	return b.inverse
}

func (b *shapeBase) SetTransform(transform core.Matrix) {
	inverse := transform.Inverse()
	b.transform = transform
	b.inverse = inverse
	b.inverseTranspose = inverse.Transpose()
}

func (b *shapeBase) Material() *material.Material {
	return &b.material
}

func (b *shapeBase) SetMaterial(m material.Material) {
	b.material = m
}

func (b *shapeBase) CastsShadow() bool {
	return b.shadow
}

func (b *shapeBase) SetCastsShadow(casts bool) {
	b.shadow = casts
}

func (b *shapeBase) Bounds() core.BoundingBox {
	return b.bounds
}

func (b *shapeBase) ParentSpaceBounds() core.BoundingBox {
	return b.bounds.Transform(b.transform)
}

// Divide is a no-op for primitive shapes; composites override it.
func (b *shapeBase) Divide(threshold int) {}

func (b *shapeBase) transformInverseTranspose() core.Matrix {
	return b.inverseTranspose
}

// Intersect tests a ray against a shape. The ray is mapped into the shape's
// local space through the cached inverse, the kind-specific algorithm runs
// there, and the resulting normals are lifted back out through the
// inverse-transpose. Composites recurse, so intersections from arbitrarily
// nested children come back with normals expressed in the caller's space;
// t values need no adjustment because the ray transform preserves them.
func Intersect(o Object, ray core.Ray) []Intersection {
	localRay := ray.Transform(o.TransformInverse())
	xs := o.localIntersect(localRay)

	invTranspose := o.transformInverseTranspose()
	for i := range xs {
		xs[i].Normal = invTranspose.MultiplyVector(xs[i].Normal)
	}
	return xs
}

// NormalAt returns the surface normal at a point expressed in the shape's
// parent space. The hit intersection supplies barycentric coordinates for
// smooth triangles; other kinds ignore it.
func NormalAt(o Object, p core.Point, hit Intersection) core.Vector {
	localPoint := o.TransformInverse().MultiplyPoint(p)
	localNormal := o.localNormalAt(localPoint, hit)
	return o.transformInverseTranspose().MultiplyVector(localNormal).Normalize()
}

// includes reports whether target is o itself or a descendant of o. Used by
// CSG filtering to decide which subtree produced a hit.
func includes(o, target Object) bool {
	switch s := o.(type) {
	case *Group:
		for _, child := range s.children {
			if includes(child, target) {
				return true
			}
		}
		return false
	case *CSG:
		return includes(s.left, target) || includes(s.right, target)
	default:
		return o == target
	}
}
