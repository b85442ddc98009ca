// Package lincomb evaluates linear combinations of secp256k1 points.
//
// Matrices are row-major: an n by m matrix is a slice of n*m points in which
// the entry in row i and column j is at index i*m+j. Any point, including the
// point at infinity, may appear in a matrix or as a generator.
package lincomb

import "github.com/renproject/secp256k1"

// Combine returns the sum of coeffs[j]*points[j]. The slices must have the
// same length. The point at infinity is returned for empty slices.
func Combine(points []secp256k1.Point, coeffs []secp256k1.Fn) secp256k1.Point {
	if len(points) != len(coeffs) {
		panic("lincomb: length mismatch")
	}
	if len(points) == 0 {
		return secp256k1.NewPointInfinity()
	}

	var acc secp256k1.Point
	acc.ScaleExt(&points[0], &coeffs[0])
	for j := 1; j < len(points); j++ {
		AddScaled(&acc, &points[j], &coeffs[j])
	}
	return acc
}

// AddScaled sets acc to acc + s*p.
func AddScaled(acc, p *secp256k1.Point, s *secp256k1.Fn) {
	var term secp256k1.Point
	term.ScaleExt(p, s)
	acc.Add(acc, &term)
}

// Row returns row i of the matrix with m columns.
func Row(matrix []secp256k1.Point, m, i int) []secp256k1.Point {
	return matrix[i*m : (i+1)*m]
}

// Apply multiplies the matrix by the column vector coeffs. The matrix must
// have len(coeffs) columns, and len(coeffs) must be non-zero.
func Apply(matrix []secp256k1.Point, coeffs []secp256k1.Fn) []secp256k1.Point {
	m := len(coeffs)
	if m == 0 || len(matrix)%m != 0 {
		panic("lincomb: matrix is not a multiple of the column count")
	}
	n := len(matrix) / m

	out := make([]secp256k1.Point, n)
	for i := range out {
		out[i] = Combine(Row(matrix, m, i), coeffs)
	}
	return out
}

// Broadcast returns s*generators[i] for every generator.
func Broadcast(generators []secp256k1.Point, s *secp256k1.Fn) []secp256k1.Point {
	out := make([]secp256k1.Point, len(generators))
	for i := range generators {
		out[i].ScaleExt(&generators[i], s)
	}
	return out
}

// Eq returns true when the two slices hold the same points in the same order.
func Eq(a, b []secp256k1.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(&b[i]) {
			return false
		}
	}
	return true
}
