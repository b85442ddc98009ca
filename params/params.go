// Package params checks the public Pedersen parameter.
package params

import "github.com/renproject/secp256k1"

// ValidPedersenParameter reports whether h may serve as the second column of
// the opening matrix [G, H]. With h at infinity or equal to G the matrix
// collapses to one generator and an opening no longer binds the value. Any
// other h is accepted; its discrete log relative to G is assumed unknown.
func ValidPedersenParameter(h secp256k1.Point) bool {
	g := BasePoint()
	return !h.IsInfinity() && !h.Eq(&g)
}

// BasePoint returns the canonical secp256k1 base point G.
func BasePoint() secp256k1.Point {
	var g secp256k1.Point
	one := secp256k1.NewFnFromU16(1)
	g.BaseExp(&one)
	return g
}
