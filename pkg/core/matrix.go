package core

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 matrix in row-major order.
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyPoint applies the matrix to a point (w = 1).
func (m Matrix) MultiplyPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MultiplyVector applies the matrix to a vector (w = 0), ignoring translation.
func (m Matrix) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix left after removing the given row and column.
func (m Matrix) submatrix(row, col int) [3][3]float64 {
	var result [3][3]float64
	dstRow := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		dstCol := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[dstRow][dstCol] = m[r][c]
			dstCol++
		}
		dstRow++
	}
	return result
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor returns the signed minor for the given row and column.
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant of the matrix.
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the matrix has a nonzero determinant.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of the matrix. It panics if the matrix is not
// invertible: shape and camera transforms are required to be invertible, so a
// singular matrix here is a programmer error.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		panic(fmt.Sprintf("matrix is not invertible: %v", m))
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transpose while assembling by swapping row/col indices.
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result
}

// Equal reports whether two matrices are equal within Epsilon per element.
func (m Matrix) Equal(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}
