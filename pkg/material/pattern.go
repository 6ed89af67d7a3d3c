package material

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Pattern is a procedural color source with its own transform, evaluated in
// pattern space: object-local points are mapped through the pattern's cached
// inverse before the kind-specific rule runs.
type Pattern struct {
	transform core.Matrix
	inverse   core.Matrix
	kind      patternKind
}

// patternKind is the closed set of procedural pattern rules.
type patternKind interface {
	colorAt(p core.Point) core.Color
}

func newPattern(kind patternKind) *Pattern {
	return &Pattern{
		transform: core.Identity(),
		inverse:   core.Identity(),
		kind:      kind,
	}
}

// SetTransform sets the pattern transform, updating the cached inverse.
func (p *Pattern) SetTransform(transform core.Matrix) {
	p.transform = transform
	p.inverse = transform.Inverse()
}

// Transform returns the pattern transform.
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// ColorAtObject returns the pattern color for a point already expressed in
// the owning object's local space.
func (p *Pattern) ColorAtObject(objectPoint core.Point) core.Color {
	return p.kind.colorAt(p.inverse.MultiplyPoint(objectPoint))
}

// NewStripePattern creates a pattern alternating between two colors along x.
func NewStripePattern(a, b core.Color) *Pattern {
	return newPattern(stripe{a: a, b: b})
}

// NewGradientPattern creates a pattern blending linearly from a to b along x.
func NewGradientPattern(a, b core.Color) *Pattern {
	return newPattern(gradient{a: a, b: b})
}

// NewRingPattern creates a pattern of concentric rings in the xz plane.
func NewRingPattern(a, b core.Color) *Pattern {
	return newPattern(ring{a: a, b: b})
}

// NewCheckersPattern creates a 3D checkerboard pattern.
func NewCheckersPattern(a, b core.Color) *Pattern {
	return newPattern(checkers{a: a, b: b})
}

type stripe struct {
	a, b core.Color
}

func (s stripe) colorAt(p core.Point) core.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.a
	}
	return s.b
}

type gradient struct {
	a, b core.Color
}

func (g gradient) colorAt(p core.Point) core.Color {
	distance := g.b.Sub(g.a)
	fraction := p.X - math.Floor(p.X)
	return g.a.Add(distance.Multiply(fraction))
}

type ring struct {
	a, b core.Color
}

func (r ring) colorAt(p core.Point) core.Color {
	distance := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if int(math.Floor(distance))%2 == 0 {
		return r.a
	}
	return r.b
}

type checkers struct {
	a, b core.Color
}

func (c checkers) colorAt(p core.Point) core.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.a
	}
	return c.b
}
