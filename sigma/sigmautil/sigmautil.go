// Package sigmautil holds fixtures for testing the sigma protocols.
package sigmautil

import (
	"encoding/binary"
	"errors"
	"io"
	"math/rand"

	"github.com/renproject/secp256k1"
)

// ErrEntropy is returned by FailingReader.
var ErrEntropy = errors.New("entropy exhausted")

// FnFromU64 returns the scalar equal to v.
func FnFromU64(v uint64) secp256k1.Fn {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], v)
	var fn secp256k1.Fn
	_ = fn.SetB32(buf[:])
	return fn
}

// ScaledBase returns v*G.
func ScaledBase(v uint64) secp256k1.Point {
	var p secp256k1.Point
	fn := FnFromU64(v)
	p.BaseExp(&fn)
	return p
}

// RandomPoints returns n random points.
func RandomPoints(n int) []secp256k1.Point {
	points := make([]secp256k1.Point, n)
	for i := range points {
		points[i] = secp256k1.RandomPoint()
	}
	return points
}

// RandomFns returns n random scalars.
func RandomFns(n int) []secp256k1.Fn {
	fns := make([]secp256k1.Fn, n)
	for i := range fns {
		fns[i] = secp256k1.RandomFn()
	}
	return fns
}

// Perturb adds one to the scalar.
func Perturb(fn *secp256k1.Fn) {
	one := secp256k1.NewFnFromU16(1)
	fn.Add(fn, &one)
}

// SeededReader returns a deterministic reader. It must only be used in tests.
func SeededReader(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}

// FailingReader returns a reader that fails after n bytes have been read.
func FailingReader(n int) io.Reader {
	return &failingReader{r: SeededReader(0), left: n}
}

type failingReader struct {
	r    io.Reader
	left int
}

func (fr *failingReader) Read(p []byte) (int, error) {
	if fr.left <= 0 {
		return 0, ErrEntropy
	}
	if len(p) > fr.left {
		p = p[:fr.left]
	}
	n, err := fr.r.Read(p)
	fr.left -= n
	return n, err
}
