// Package lights provides the light sources consumed by the shading
// algorithm.
package lights

import "github.com/whitted-dev/go-raytracer/pkg/core"

// PointLight is a light source radiating uniformly from a single position.
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light.
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
