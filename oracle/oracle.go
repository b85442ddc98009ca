// Package oracle implements the Fiat-Shamir challenge derivation shared by the
// linear relation and DLEQ proofs.
package oracle

import (
	"math/big"

	"github.com/renproject/secp256k1"
	"golang.org/x/crypto/sha3"
)

// N is the order of the secp256k1 group.
var N, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// Challenge derives the challenge scalar for the transcript formed by the
// public matrix (or generators), the statement and the commitments. Every
// point is encoded into a single buffer, in that order, which is then hashed
// with SHA3-512 and reduced modulo N.
func Challenge(matrix, statement, commitments []secp256k1.Point) (secp256k1.Fn, error) {
	transcript := [][]secp256k1.Point{matrix, statement, commitments}

	l := 0
	for _, points := range transcript {
		l += sizeHint(points)
	}
	buf := make([]byte, l)

	tail, rem := buf, l
	var err error
	for _, points := range transcript {
		tail, rem, err = putPoints(points, tail, rem)
		if err != nil {
			return secp256k1.Fn{}, err
		}
	}

	hash := sha3.Sum512(buf)
	return FnFromWide(hash[:]), nil
}

// FnFromWide interprets b as a big endian integer and reduces it modulo N.
// Inputs of at least 64 bytes give a scalar that is statistically close to
// uniform.
func FnFromWide(b []byte) secp256k1.Fn {
	x := new(big.Int).SetBytes(b)
	x.Mod(x, N)

	var buf [32]byte
	x.FillBytes(buf[:])

	var fn secp256k1.Fn
	_ = fn.SetB32(buf[:])
	return fn
}

func sizeHint(points []secp256k1.Point) int {
	l := 0
	for i := range points {
		l += points[i].SizeHint()
	}
	return l
}

// putPoints writes the canonical encoding of each point. The point at infinity
// is written as all zero bytes, which no compressed point can be.
func putPoints(points []secp256k1.Point, buf []byte, rem int) ([]byte, int, error) {
	var err error
	for i := range points {
		if points[i].IsInfinity() {
			l := points[i].SizeHint()
			buf, rem = buf[l:], rem-l
			continue
		}
		buf, rem, err = points[i].Marshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}
