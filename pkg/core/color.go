package core

// Color represents an RGB color with float channels. During shading channels
// may exceed [0, 1]; they are clamped only on export.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the color (0, 0, 0).
func Black() Color {
	return Color{}
}

// White returns the color (1, 1, 1).
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the difference of two colors.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the channel-wise product of two colors.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors are equal within Epsilon per channel.
func (c Color) Equal(other Color) bool {
	return Equal(c.R, other.R) && Equal(c.G, other.G) && Equal(c.B, other.B)
}

// AverageColors returns the mean of the given colors. Used to combine
// supersampled per-pixel rays; an empty slice averages to black.
func AverageColors(colors []Color) Color {
	if len(colors) == 0 {
		return Black()
	}
	sum := Black()
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Multiply(1.0 / float64(len(colors)))
}
