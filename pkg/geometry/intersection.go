package geometry

import (
	"math"
	"sort"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Intersection is a candidate hit along a ray. Intersections are created and
// consumed within a single intersect/shade call and never stored.
//
// Normal is the surface normal at the hit, recorded in local space by the
// primitive and lifted one level per enclosing shape as the list is returned
// (world space by the time a caller sees it, not yet normalized).
// LocalPoint is the hit point in the primitive's own space, kept for pattern
// evaluation. U and V are barycentric coordinates, set only by triangle hits.
type Intersection struct {
	T          float64
	Object     Object
	Normal     core.Vector
	LocalPoint core.Point
	U, V       float64
}

// NewIntersection creates an intersection of a ray in local space with the
// given shape at parameter t, recording the local hit point and normal.
func NewIntersection(t float64, o Object, localRay core.Ray) Intersection {
	hit := Intersection{T: t, Object: o}
	hit.LocalPoint = localRay.Position(t)
	hit.Normal = o.localNormalAt(hit.LocalPoint, hit)
	return hit
}

// Intersections returns the given intersections sorted by t ascending.
func Intersections(xs ...Intersection) []Intersection {
	sorted := make([]Intersection, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return sorted
}

// Hit returns the first intersection with t >= 0 in a sorted list, the
// nearest one visible from the ray origin.
func Hit(xs []Intersection) (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// ShadowHit is the Hit variant used by shadow rays: it additionally requires
// the hit object to cast shadows.
func ShadowHit(xs []Intersection) (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 && x.Object.CastsShadow() {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations is the derived, ray-specific view of a single intersection
// needed by shading: world point, offset points above and below the surface,
// eye and normal vectors, reflection vector and the refractive indices on
// each side of the boundary.
type Computations struct {
	T           float64
	Object      Object
	Point       core.Point
	OverPoint   core.Point
	UnderPoint  core.Point
	ObjectPoint core.Point
	EyeV        core.Vector
	NormalV     core.Vector
	ReflectV    core.Vector
	Inside      bool
	N1, N2      float64
}

// PrepareComputations derives the shading state for hit. The full sorted
// intersection list xs is replayed to determine n1 and n2: shapes are pushed
// onto a containment stack on entry and removed on exit, and the refractive
// index at the top of the stack is read just before and just after the hit.
func PrepareComputations(hit Intersection, ray core.Ray, xs []Intersection) Computations {
	if len(xs) == 0 {
		xs = []Intersection{hit}
	}

	comps := Computations{
		T:           hit.T,
		Object:      hit.Object,
		Point:       ray.Position(hit.T),
		ObjectPoint: hit.LocalPoint,
		EyeV:        ray.Direction.Negate(),
		NormalV:     hit.Normal.Normalize(),
	}

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.SubVector(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the sorted list tracking which shapes the ray is
// currently inside. n1 is the index of the medium being exited and n2 the
// medium being entered at the hit boundary; empty stack means air (1.0).
func refractiveIndices(hit Intersection, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Object

	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		found := -1
		for i, o := range containers {
			if o == x.Object {
				found = i
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick returns the Fresnel reflectance at the hit via Schlick's
// approximation. Beyond the critical angle (total internal reflection) the
// reflectance is exactly 1.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
