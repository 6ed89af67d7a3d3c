// Package scenes provides the built-in demo scenes the CLI can render.
package scenes

import (
	"fmt"
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/geometry"
	"github.com/whitted-dev/go-raytracer/pkg/lights"
	"github.com/whitted-dev/go-raytracer/pkg/material"
	"github.com/whitted-dev/go-raytracer/pkg/renderer"
	"github.com/whitted-dev/go-raytracer/pkg/scene"
)

// Scene is a named world builder. Build returns the world together with a
// camera already positioned for it and sized for the requested canvas.
type Scene struct {
	Name        string
	Description string
	Build       func(width, height int) (*scene.World, *renderer.Camera)
}

var registry = []Scene{
	{
		Name:        "showcase",
		Description: "Spheres, a cube, a cylinder and a cone on a checkered floor",
		Build:       buildShowcase,
	},
	{
		Name:        "glass",
		Description: "A glass sphere with an air bubble in front of a checkered wall",
		Build:       buildGlass,
	},
	{
		Name:        "hexagon",
		Description: "A hexagon assembled from grouped spheres and cylinders",
		Build:       buildHexagon,
	},
	{
		Name:        "csg",
		Description: "A die carved from a cube and spheres with boolean operations",
		Build:       buildCSG,
	},
}

// All returns every registered scene in registration order.
func All() []Scene {
	return registry
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Scene{}, fmt.Errorf("scenes: unknown scene %q", name)
}

func buildShowcase(width, height int) (*scene.World, *renderer.Camera) {
	w := scene.NewWorld()
	w.AddLight(
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()),
		lights.NewPointLight(core.NewPoint(-5, 10, -6), core.NewColor(0.33, 0.33, 0.33)),
	)

	floor := geometry.NewPlane()
	floor.Material().Pattern = material.NewCheckersPattern(
		core.NewColor(0, 0.5, 0.5), core.NewColor(0.5, 0, 0.5),
	)

	backWall := geometry.NewPlane()
	backWall.SetTransform(
		core.Translation(0, 0, 5).
			Multiply(core.RotationY(-math.Pi / 4)).
			Multiply(core.RotationX(math.Pi / 2)),
	)
	ringPattern := material.NewRingPattern(core.NewColor(0, 0, 1), core.NewColor(0, 1, 1))
	ringPattern.SetTransform(core.Scaling(0.333, 0.333, 0.333))
	backWall.Material().Pattern = ringPattern

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material().Color = core.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Reflective = 0.9

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	checkers := material.NewCheckersPattern(core.NewColor(1, 0, 0), core.NewColor(0, 1, 0))
	right.Material().Pattern = checkers

	left := geometry.NewGlassSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	left.Material().Color = core.NewColor(0.1, 0, 0)
	left.Material().Diffuse = 0.05
	left.Material().Reflective = 0.3
	left.Material().Specular = 1
	left.Material().Shininess = 300

	cube := geometry.NewCube()
	cube.SetTransform(
		core.Translation(0, 0.25, -1).
			Multiply(core.Scaling(0.25, 0.25, 0.25)).
			Multiply(core.RotationY(math.Pi / 4)),
	)

	cylinder := geometry.NewCylinder(0, 1, true)
	cylinder.SetTransform(core.Translation(1, 0, -1.2).Multiply(core.Scaling(0.33, 0.33, 0.33)))

	cone := geometry.NewCone(-1, 0, true)
	cone.SetTransform(core.Translation(-1, 0.33, -1.2).Multiply(core.Scaling(0.33, 0.33, 0.33)))

	w.AddObject(floor, backWall, middle, right, left, cube, cylinder, cone)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return w, camera
}

func buildGlass(width, height int) (*scene.World, *renderer.Camera) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	wall := geometry.NewPlane()
	wall.SetTransform(core.Translation(0, 0, 10).Multiply(core.RotationX(math.Pi / 2)))
	wall.Material().Pattern = material.NewCheckersPattern(
		core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.8, 0.8, 0.8),
	)
	wall.Material().Ambient = 0.8
	wall.Material().Diffuse = 0.2
	wall.Material().Specular = 0

	ball := geometry.NewSphere()
	ball.Material().Color = core.White()
	ball.Material().Ambient = 0
	ball.Material().Diffuse = 0
	ball.Material().Specular = 0.9
	ball.Material().Shininess = 300
	ball.Material().Reflective = 0.9
	ball.Material().Transparency = 0.9
	ball.Material().RefractiveIndex = 1.5

	// A hollow center of near-vacuum makes the outer sphere read as a
	// thin glass shell.
	bubble := geometry.NewSphere()
	bubble.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	bubble.Material().Color = core.White()
	bubble.Material().Ambient = 0
	bubble.Material().Diffuse = 0
	bubble.Material().Specular = 0.9
	bubble.Material().Shininess = 300
	bubble.Material().Reflective = 0.9
	bubble.Material().Transparency = 0.9
	bubble.Material().RefractiveIndex = 1.0000034

	w.AddObject(wall, ball, bubble)

	camera := renderer.NewCamera(width, height, 0.45)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.Origin(),
		core.NewVector(0, 1, 0),
	))
	return w, camera
}

func buildHexagon(width, height int) (*scene.World, *renderer.Camera) {
	w := scene.NewWorld()
	w.AddLight(
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()),
		lights.NewPointLight(core.NewPoint(-5, 10, -6), core.NewColor(0.33, 0.33, 0.33)),
	)

	hex := hexagon()
	m := material.NewMaterial()
	m.Pattern = material.NewCheckersPattern(
		core.NewColor(0.2, 0.9, 0.2), core.NewColor(0.9, 0.2, 0.9),
	)
	hex.SetMaterial(m)
	w.AddObject(hex)

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -0.5, 0))
	floor.Material().Reflective = 0.2
	w.AddObject(floor)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -5),
		core.Origin(),
		core.NewVector(0, 1, 0),
	))
	return w, camera
}

func hexagonCorner() geometry.Object {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Translation(0, 0, -1).Multiply(core.Scaling(0.25, 0.25, 0.25)))
	return corner
}

func hexagonEdge() geometry.Object {
	edge := geometry.NewCylinder(0, 1, false)
	edge.SetTransform(
		core.Translation(0, 0, -1).
			Multiply(core.RotationY(-math.Pi / 6)).
			Multiply(core.RotationZ(-math.Pi / 2)).
			Multiply(core.Scaling(0.25, 1, 0.25)),
	)
	return edge
}

func hexagonSide() *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner(), hexagonEdge())
	return side
}

func hexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func buildCSG(width, height int) (*scene.World, *renderer.Camera) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -1, 0))
	floor.Material().Pattern = material.NewCheckersPattern(
		core.NewColor(0.6, 0.6, 0.6), core.NewColor(0.3, 0.3, 0.3),
	)

	cube := geometry.NewCube()
	cube.Material().Color = core.NewColor(0.9, 0.1, 0.1)
	cube.Material().Reflective = 0.1

	bite := geometry.NewSphere()
	bite.SetTransform(core.Translation(0.8, 0.8, -0.8).Multiply(core.Scaling(0.8, 0.8, 0.8)))
	bite.Material().Color = core.NewColor(0.1, 0.1, 0.9)

	carved := geometry.NewCSG(geometry.OpDifference, cube, bite)
	carved.SetTransform(core.RotationY(math.Pi / 6))

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(1.2, 1.2, 1.2))
	inner.Material().Color = core.NewColor(0.1, 0.9, 0.1)

	rounded := geometry.NewCSG(geometry.OpIntersection, carved, inner)

	w.AddObject(floor, rounded)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.Origin(),
		core.NewVector(0, 1, 0),
	))
	return w, camera
}
