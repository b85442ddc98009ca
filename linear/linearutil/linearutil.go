// Package linearutil holds fixtures for testing the linear relation protocol.
package linearutil

import (
	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/okamoto/sigma/sigmautil"
	"github.com/renproject/secp256k1"
)

// RandomRelation returns a random n by m matrix together with a random
// witness and the statement it satisfies.
func RandomRelation(n, m int) ([]secp256k1.Point, []secp256k1.Fn, []secp256k1.Point) {
	matrix := sigmautil.RandomPoints(n * m)
	witness := sigmautil.RandomFns(m)
	return matrix, witness, lincomb.Apply(matrix, witness)
}

// RandomFalseRelation is like RandomRelation, except that one entry of the
// statement is replaced by a random point so that the witness does not
// satisfy it.
func RandomFalseRelation(n, m int) ([]secp256k1.Point, []secp256k1.Fn, []secp256k1.Point) {
	matrix, witness, statement := RandomRelation(n, m)
	statement[n-1] = secp256k1.RandomPoint()
	return matrix, witness, statement
}
