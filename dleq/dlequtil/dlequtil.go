// Package dlequtil holds fixtures for testing the DLEQ protocol.
package dlequtil

import (
	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/okamoto/sigma/sigmautil"
	"github.com/renproject/secp256k1"
)

// RandomRelation returns n random generators, a random witness, and the
// statement it satisfies.
func RandomRelation(n int) ([]secp256k1.Point, secp256k1.Fn, []secp256k1.Point) {
	generators := sigmautil.RandomPoints(n)
	witness := secp256k1.RandomFn()
	return generators, witness, lincomb.Broadcast(generators, &witness)
}

// ScaledGenerators returns multiples[i]*G for each multiple.
func ScaledGenerators(multiples ...uint64) []secp256k1.Point {
	generators := make([]secp256k1.Point, len(multiples))
	for i, v := range multiples {
		generators[i] = sigmautil.ScaledBase(v)
	}
	return generators
}
