// Package scene assembles shapes and lights into a world and computes the
// color seen along a ray, including shadows, reflection and refraction.
package scene

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/geometry"
	"github.com/whitted-dev/go-raytracer/pkg/lights"
)

// MaxRecursionDepth bounds reflection and refraction bounces. Rays that
// reach the limit contribute black.
const MaxRecursionDepth = 5

// World is a static collection of shapes and point lights. Worlds are built
// up-front and treated as read-only while rendering, so they are safe to
// share across goroutines.
type World struct {
	objects []geometry.Object
	lights  []lights.PointLight
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere reference world used throughout the
// tests: one light, an outer colored sphere and an inner half-size sphere.
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	s1 := geometry.NewSphere()
	s1.Material().Color = core.NewColor(0.8, 1.0, 0.6)
	s1.Material().Diffuse = 0.7
	s1.Material().Specular = 0.2

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddObject(s1, s2)
	return w
}

// AddObject adds top-level shapes to the world.
func (w *World) AddObject(objects ...geometry.Object) {
	w.objects = append(w.objects, objects...)
}

// AddLight adds a point light to the world.
func (w *World) AddLight(lights ...lights.PointLight) {
	w.lights = append(w.lights, lights...)
}

// Objects returns the world's top-level shapes.
func (w *World) Objects() []geometry.Object {
	return w.objects
}

// Lights returns the world's lights.
func (w *World) Lights() []lights.PointLight {
	return w.lights
}

// Intersect tests the ray against every shape and returns all hits sorted by
// distance.
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, o := range w.objects {
		xs = append(xs, geometry.Intersect(o, ray)...)
	}
	return geometry.Intersections(xs...)
}

// ColorAt returns the color seen along the ray, or black when the ray hits
// nothing. Callers start with remaining = MaxRecursionDepth; the counter
// decreases with each reflection or refraction bounce.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black()
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the surface color at an intersection: the Phong
// contribution of every light, plus the reflected and refracted colors. When
// the material is both reflective and transparent the two secondary colors
// are blended by the Fresnel reflectance.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black()
	for _, light := range w.lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(
			light, comps.ObjectPoint, comps.OverPoint, comps.EyeV, comps.NormalV, inShadow,
		))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection bounce at the hit. Non-reflective
// materials and exhausted recursion return black.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray at the hit via Snell's law.
// Opaque materials, exhausted recursion and total internal reflection all
// return black.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Sub(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// IsShadowed reports whether the point is shadowed from the light by any
// shadow-casting shape between the two.
func (w *World) IsShadowed(point core.Point, light lights.PointLight) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Length()

	ray := core.NewRay(point, toLight.Normalize())
	xs := w.Intersect(ray)

	hit, ok := geometry.ShadowHit(xs)
	return ok && hit.T < distance
}
