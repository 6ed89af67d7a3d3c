// Package material provides surface materials, procedural patterns and the
// Phong lighting model.
package material

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/lights"
)

// Material describes how a surface responds to light. It is a value attached
// to a shape; composites propagate an assignment to all descendants.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         *Pattern
}

// NewMaterial creates a material with the default Phong parameters: white,
// ambient 0.1, diffuse 0.9, specular 0.9, shininess 200, opaque and
// non-reflective with the refractive index of air.
func NewMaterial() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting computes the Phong contribution of a single light at a surface
// point. The ambient term always applies; diffuse and specular are zeroed
// when the point is in shadow or the light is behind the surface. The
// objectPoint is the hit point in the shape's local space, used for pattern
// lookup; position is the (world-space) point being shaded.
func (m Material) Lighting(light lights.PointLight, objectPoint core.Point, position core.Point, eyev, normalv core.Vector, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.ColorAtObject(objectPoint)
	}

	effectiveColor := color.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(position).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)

	specular := core.Black()
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
