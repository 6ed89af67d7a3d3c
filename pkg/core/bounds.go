package core

import "math"

// BoundingBox is an axis-aligned bounding box described by two corners. The
// zero value from NewEmptyBounds is "empty": min at +infinity and max at
// -infinity, so adding any point produces a valid box.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewEmptyBounds returns an empty bounding box.
func NewEmptyBounds() BoundingBox {
	return BoundingBox{
		Min: NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewBounds returns a bounding box with the given corners.
func NewBounds(min, max Point) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Add extends the box to include the given point. The comparisons reject NaN
// components, which transforming an unbounded box can produce, so they never
// replace a corner.
func (b BoundingBox) Add(p Point) BoundingBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}

	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Union returns a box containing both this box and another.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return b.Add(other.Min).Add(other.Max)
}

// Contains reports whether the point lies inside the box (inclusive).
func (b BoundingBox) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether the other box lies entirely inside this box.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Transform returns the axis-aligned box containing all eight transformed
// corners of this box. Unbounded boxes (planes, infinite cylinders and cones)
// have infinite corner components; transformCorner maps them without the NaN
// a plain matrix multiply would produce, so the result keeps its infinite
// extents instead of collapsing to an always-miss box.
func (b BoundingBox) Transform(m Matrix) BoundingBox {
	corners := [8]Point{
		b.Min,
		NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}

	result := NewEmptyBounds()
	for _, corner := range corners {
		result = result.Add(transformCorner(m, corner))
	}
	return result
}

// transformCorner maps one corner through m, skipping zero coefficients so a
// zero times an infinite component contributes nothing rather than NaN. Sums
// of opposing infinities still come out NaN; Add ignores those components,
// and the sibling corner with aligned signs supplies the infinite extent.
func transformCorner(m Matrix, p Point) Point {
	in := [3]float64{p.X, p.Y, p.Z}
	var out [3]float64
	for row := 0; row < 3; row++ {
		sum := m[row][3]
		for col := 0; col < 3; col++ {
			if m[row][col] != 0 {
				sum += m[row][col] * in[col]
			}
		}
		out[row] = sum
	}
	return NewPoint(out[0], out[1], out[2])
}

// Size returns the extent of the box along each axis.
func (b BoundingBox) Size() Vector {
	return b.Max.Sub(b.Min)
}

// Split cuts the box in two at the midpoint of its longest axis.
func (b BoundingBox) Split() (BoundingBox, BoundingBox) {
	size := b.Size()
	greatest := math.Max(size.X, math.Max(size.Y, size.Z))

	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	switch greatest {
	case size.X:
		x0 = x0 + size.X/2
		x1 = x0
	case size.Y:
		y0 = y0 + size.Y/2
		y1 = y0
	default:
		z0 = z0 + size.Z/2
		z1 = z0
	}

	midMin := NewPoint(x0, y0, z0)
	midMax := NewPoint(x1, y1, z1)

	return NewBounds(b.Min, midMax), NewBounds(midMin, b.Max)
}

// Intersects tests the ray against the box using the slab method, the same
// per-axis interval logic the cube primitive uses.
func (b BoundingBox) Intersects(ray Ray) bool {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	return tMin <= tMax
}

// checkAxis returns the ray's [tmin, tmax] interval for one slab. A ray with
// a direction component below Epsilon stays inside the slab for every t or
// for none; an origin sitting exactly on a slab plane counts as inside, so a
// grazing ray never produces a NaN interval.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tMinNumerator := min - origin
	tMaxNumerator := max - origin

	if math.Abs(direction) < Epsilon {
		if tMinNumerator <= 0 && tMaxNumerator >= 0 {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(-1)
	}

	tMin := tMinNumerator / direction
	tMax := tMaxNumerator / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}
