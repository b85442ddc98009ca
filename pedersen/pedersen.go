// Package pedersen proves statements about Pedersen commitments with the
// linear relation protocol.
//
// A Pedersen commitment C = v*G + d*H to a value v with decommitment d is the
// n = 1, m = 2 relation with matrix [G, H], witness [v, d] and statement [C].
// Verifiable shares produced by the shamir package are openings of the
// commitment polynomial evaluated at the share index, so a holder can prove
// that it has a valid share without revealing it.
package pedersen

import (
	"github.com/renproject/okamoto/linear"
	"github.com/renproject/okamoto/params"
	"github.com/renproject/okamoto/sigma"
	"github.com/renproject/secp256k1"
	"github.com/renproject/shamir"
)

// Commit returns value*G + decommitment*H.
func Commit(value, decommitment *secp256k1.Fn, h *secp256k1.Point) secp256k1.Point {
	var commitment, hPow secp256k1.Point
	commitment.BaseExp(value)
	hPow.ScaleExt(h, decommitment)
	commitment.Add(&commitment, &hPow)
	return commitment
}

// Matrix returns the one row matrix [G, H].
func Matrix(h secp256k1.Point) []secp256k1.Point {
	return []secp256k1.Point{params.BasePoint(), h}
}

// EvalCommitment evaluates the commitment polynomial at the given index.
func EvalCommitment(commitment shamir.Commitment, index secp256k1.Fn) secp256k1.Point {
	if len(commitment) == 0 {
		return secp256k1.NewPointInfinity()
	}
	acc := commitment[len(commitment)-1]
	for l := len(commitment) - 2; l >= 0; l-- {
		acc.ScaleExt(&acc, &index)
		acc.Add(&acc, &commitment[l])
	}
	return acc
}

// ProveOpening proves knowledge of the value and decommitment that open the
// commitment.
func ProveOpening(
	h, commitment secp256k1.Point,
	value, decommitment secp256k1.Fn,
	opts sigma.Options,
) (sigma.Proof, error) {
	if !params.ValidPedersenParameter(h) {
		return nil, ErrInvalidParameter
	}
	witness := []secp256k1.Fn{value, decommitment}
	defer sigma.Zeroise(witness)
	return linear.ProveWithOptions(Matrix(h), witness, []secp256k1.Point{commitment}, opts)
}

// VerifyOpening checks a proof created by ProveOpening.
func VerifyOpening(h, commitment secp256k1.Point, proof sigma.Proof) error {
	if !params.ValidPedersenParameter(h) {
		return ErrInvalidParameter
	}
	return linear.Verify(Matrix(h), []secp256k1.Point{commitment}, proof)
}

// ProveShare proves knowledge of a verifiable share that is valid against the
// commitment, without revealing the share. The share index is public.
func ProveShare(
	h secp256k1.Point,
	commitment shamir.Commitment,
	share shamir.VerifiableShare,
	opts sigma.Options,
) (sigma.Proof, error) {
	return ProveOpening(
		h, EvalCommitment(commitment, share.Share.Index),
		share.Share.Value, share.Decommitment,
		opts,
	)
}

// VerifyShare checks a proof created by ProveShare for the share with the
// given index.
func VerifyShare(
	h secp256k1.Point,
	commitment shamir.Commitment,
	index secp256k1.Fn,
	proof sigma.Proof,
) error {
	return VerifyOpening(h, EvalCommitment(commitment, index), proof)
}
