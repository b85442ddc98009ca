// Package sigma holds the types shared by the Fiat-Shamir sigma protocols:
// the proof representation, the errors they return, and the options used to
// configure a prover.
package sigma

import (
	"github.com/renproject/secp256k1"
	"github.com/renproject/surge"
)

// A Proof is the challenge followed by one response per witness dimension.
type Proof []secp256k1.Fn

// NewProof returns the proof with the given challenge and responses.
func NewProof(challenge secp256k1.Fn, responses ...secp256k1.Fn) Proof {
	p := make(Proof, 1, 1+len(responses))
	p[0] = challenge
	return append(p, responses...)
}

// Len returns the number of scalars in the proof.
func (p Proof) Len() int { return len(p) }

// Challenge returns the challenge. It panics if the proof is empty.
func (p Proof) Challenge() secp256k1.Fn { return p[0] }

// Responses returns the responses, one for each witness dimension. It panics
// if the proof is empty.
func (p Proof) Responses() []secp256k1.Fn { return p[1:] }

// Eq returns true if the two proofs are equal.
func (p Proof) Eq(other Proof) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Eq(&other[i]) {
			return false
		}
	}
	return true
}

// SizeHint implements the surge.SizeHinter interface.
func (p Proof) SizeHint() int { return surge.SizeHint([]secp256k1.Fn(p)) }

// Marshal implements the surge.Marshaler interface.
func (p Proof) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return surge.Marshal([]secp256k1.Fn(p), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (p *Proof) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return surge.Unmarshal((*[]secp256k1.Fn)(p), buf, rem)
}
