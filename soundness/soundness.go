// Package soundness decides whether a prover checks that its witness really
// satisfies the relation before producing a proof.
//
// The check never changes what a correct prover outputs. A prover that skips
// it can still be asked to prove a false statement; the resulting proof just
// fails verification. Checking catches such caller bugs at the source, at the
// cost of one extra evaluation of the relation.
//
// The default is chosen at build time. Building with the checksoundness tag
// enables the check:
//
//	go test -tags checksoundness ./...
package soundness

import (
	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/secp256k1"
)

// A Checker reports whether a witness satisfies a relation. The prover only
// calls a Checker once the dimensions have been validated.
type Checker interface {
	// Linear reports whether statement[i] = sum_j matrix[i*m+j]*witness[j]
	// for every row i, where m = len(witness).
	Linear(matrix []secp256k1.Point, witness []secp256k1.Fn, statement []secp256k1.Point) bool

	// DLEQ reports whether statement[i] = witness*generators[i] for every i.
	DLEQ(generators []secp256k1.Point, witness *secp256k1.Fn, statement []secp256k1.Point) bool
}

// Default returns Recompute when the package was built with the
// checksoundness tag, and Skip otherwise.
func Default() Checker {
	if Enabled {
		return Recompute{}
	}
	return Skip{}
}

// Skip accepts every witness.
type Skip struct{}

// Linear implements the Checker interface.
func (Skip) Linear([]secp256k1.Point, []secp256k1.Fn, []secp256k1.Point) bool { return true }

// DLEQ implements the Checker interface.
func (Skip) DLEQ([]secp256k1.Point, *secp256k1.Fn, []secp256k1.Point) bool { return true }

// Recompute evaluates the relation on the witness and compares the result
// with the statement.
type Recompute struct{}

// Linear implements the Checker interface.
func (Recompute) Linear(matrix []secp256k1.Point, witness []secp256k1.Fn, statement []secp256k1.Point) bool {
	return lincomb.Eq(lincomb.Apply(matrix, witness), statement)
}

// DLEQ implements the Checker interface.
func (Recompute) DLEQ(generators []secp256k1.Point, witness *secp256k1.Fn, statement []secp256k1.Point) bool {
	return lincomb.Eq(lincomb.Broadcast(generators, witness), statement)
}
