package sigma

import (
	"fmt"
	"io"

	"github.com/renproject/okamoto/oracle"
	"github.com/renproject/secp256k1"
)

// wideSize is the number of random bytes reduced into each scalar.
const wideSize = 64

// RandomFn samples a scalar from r. Sampling 512 bits and reducing them
// modulo the group order keeps the bias below 2^-256.
func RandomFn(r io.Reader) (secp256k1.Fn, error) {
	var buf [wideSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return secp256k1.Fn{}, fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	fn := oracle.FnFromWide(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	return fn, nil
}

// RandomFns samples n scalars from r.
func RandomFns(r io.Reader, n int) ([]secp256k1.Fn, error) {
	fns := make([]secp256k1.Fn, n)
	for i := range fns {
		fn, err := RandomFn(r)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}
	return fns, nil
}

// Zeroise overwrites the scalars with zero. Provers call it on their
// trapdoors once the responses have been computed.
func Zeroise(fns []secp256k1.Fn) {
	for i := range fns {
		fns[i] = secp256k1.Fn{}
	}
}
