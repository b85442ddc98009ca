package dleq_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/okamoto/dleq"

	"github.com/renproject/okamoto/dleq/dlequtil"
	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/okamoto/linear"
	"github.com/renproject/okamoto/sigma"
	"github.com/renproject/okamoto/sigma/sigmautil"
	"github.com/renproject/okamoto/soundness"
	"github.com/renproject/secp256k1"
)

var _ = Describe("DLEQ proofs", func() {
	trials := 20
	checked := sigma.DefaultOptions().WithChecker(soundness.Recompute{})

	Context("completeness", func() {
		It("should verify honest proofs", func() {
			for i := 0; i < trials; i++ {
				generators, witness, statement := dlequtil.RandomRelation(1 + i%5)

				proof, err := ProveWithOptions(generators, witness, statement, checked)
				Expect(err).ToNot(HaveOccurred())
				Expect(proof.Len()).To(Equal(ProofLen))
				Expect(Verify(generators, statement, proof)).To(Succeed())
			}
		})

		It("should agree with the one column linear relation", func() {
			for i := 0; i < trials; i++ {
				generators, witness, statement := dlequtil.RandomRelation(3)

				proof, err := Prove(generators, witness, statement)
				Expect(err).ToNot(HaveOccurred())
				Expect(linear.Verify(generators, statement, proof)).To(Succeed())

				proof, err = linear.Prove(generators, []secp256k1.Fn{witness}, statement)
				Expect(err).ToNot(HaveOccurred())
				Expect(Verify(generators, statement, proof)).To(Succeed())
			}
		})
	})

	Context("two generators", func() {
		generators := dlequtil.ScaledGenerators(1, 42)
		witness := secp256k1.NewFnFromU16(10)
		statement := dlequtil.ScaledGenerators(10, 420)

		It("should reject a proof whose challenge is replaced by the response", func() {
			proof, err := ProveWithOptions(generators, witness, statement, checked)
			Expect(err).ToNot(HaveOccurred())
			Expect(Verify(generators, statement, proof)).To(Succeed())

			proof[0] = proof[1]
			Expect(Verify(generators, statement, proof)).To(MatchError(sigma.ErrInvalid))
		})

		It("should refuse a false statement when checking soundness", func() {
			wrong := []secp256k1.Point{statement[0], generators[0]}
			_, err := ProveWithOptions(generators, witness, wrong, checked)
			Expect(err).To(MatchError(sigma.ErrUnsound))
		})
	})

	Context("three generators", func() {
		generators := dlequtil.ScaledGenerators(1, 42, 3)
		witness := secp256k1.NewFnFromU16(10)
		statement := dlequtil.ScaledGenerators(10, 420, 30)

		It("should round trip", func() {
			proof, err := ProveWithOptions(generators, witness, statement, checked)
			Expect(err).ToNot(HaveOccurred())
			Expect(Verify(generators, statement, proof)).To(Succeed())
		})

		It("should reject a response incremented by one", func() {
			proof, err := Prove(generators, witness, statement)
			Expect(err).ToNot(HaveOccurred())

			sigmautil.Perturb(&proof[1])
			Expect(Verify(generators, statement, proof)).To(MatchError(sigma.ErrInvalid))
		})

		It("should refuse a doubled statement when checking soundness", func() {
			doubled := dlequtil.ScaledGenerators(20, 840, 60)
			_, err := ProveWithOptions(generators, witness, doubled, checked)
			Expect(err).To(MatchError(sigma.ErrUnsound))
		})
	})

	for _, checker := range []soundness.Checker{soundness.Skip{}, soundness.Recompute{}} {
		checker := checker
		opts := sigma.DefaultOptions().WithChecker(checker)

		Context(fmt.Sprintf("relations involving the point at infinity with %T", checker), func() {
			inf := secp256k1.NewPointInfinity()

			ProveAndVerify := func(generators []secp256k1.Point, witness secp256k1.Fn, statement []secp256k1.Point) {
				proof, err := ProveWithOptions(generators, witness, statement, opts)
				Expect(err).ToNot(HaveOccurred())
				Expect(Verify(generators, statement, proof)).To(Succeed())

				sigmautil.Perturb(&proof[0])
				Expect(Verify(generators, statement, proof)).To(MatchError(sigma.ErrInvalid))
			}

			It("should verify a zero witness with an infinite statement", func() {
				ProveAndVerify(
					dlequtil.ScaledGenerators(1, 3),
					secp256k1.NewFnFromU16(0),
					[]secp256k1.Point{inf, inf},
				)
			})

			It("should verify an infinite generator", func() {
				for i := 0; i < trials; i++ {
					generators := sigmautil.RandomPoints(3)
					generators[i%3] = inf
					witness := secp256k1.RandomFn()

					ProveAndVerify(generators, witness, lincomb.Broadcast(generators, &witness))
				}
			})
		})
	}

	Context("soundness under tampering", func() {
		It("should reject a proof with either scalar perturbed", func() {
			for i := 0; i < trials; i++ {
				generators, witness, statement := dlequtil.RandomRelation(4)
				proof, err := Prove(generators, witness, statement)
				Expect(err).ToNot(HaveOccurred())

				sigmautil.Perturb(&proof[i%ProofLen])
				Expect(Verify(generators, statement, proof)).To(MatchError(sigma.ErrInvalid))
			}
		})

		It("should reject a proof for a statement with a different logarithm", func() {
			for i := 0; i < trials; i++ {
				generators, witness, statement := dlequtil.RandomRelation(2)
				other := secp256k1.RandomFn()
				statement[1].Scale(&generators[1], &other)

				proof, err := ProveWithOptions(generators, witness, statement,
					sigma.DefaultOptions().WithChecker(soundness.Skip{}))
				Expect(err).ToNot(HaveOccurred())
				Expect(Verify(generators, statement, proof)).To(MatchError(sigma.ErrInvalid))
			}
		})
	})

	Context("dimensions", func() {
		It("should refuse to prove with mismatched lengths", func() {
			generators, witness, statement := dlequtil.RandomRelation(3)

			_, err := Prove(generators[:2], witness, statement)
			Expect(err).To(MatchError(sigma.ErrInvalidDimensions))

			_, err = Prove(generators, witness, statement[:2])
			Expect(err).To(MatchError(sigma.ErrInvalidDimensions))

			_, err = Prove(nil, witness, nil)
			Expect(err).To(MatchError(sigma.ErrInvalidDimensions))
		})

		It("should report malformed proofs without panicking", func() {
			generators, witness, statement := dlequtil.RandomRelation(3)
			proof, err := Prove(generators, witness, statement)
			Expect(err).ToNot(HaveOccurred())

			Expect(Verify(generators[:2], statement, proof)).To(MatchError(sigma.ErrMalformed))
			Expect(Verify(generators, statement, proof[:1])).To(MatchError(sigma.ErrMalformed))
			Expect(Verify(generators, statement, append(proof, secp256k1.RandomFn()))).To(MatchError(sigma.ErrMalformed))
			Expect(Verify(generators, statement, nil)).To(MatchError(sigma.ErrMalformed))
			Expect(Verify(nil, nil, proof)).To(MatchError(sigma.ErrMalformed))
		})
	})

	Context("randomness", func() {
		It("should be deterministic for a fixed seed", func() {
			generators, witness, statement := dlequtil.RandomRelation(2)
			opts := sigma.DefaultOptions()

			p1, err := ProveWithOptions(generators, witness, statement, opts.WithRand(sigmautil.SeededReader(1)))
			Expect(err).ToNot(HaveOccurred())
			p2, err := ProveWithOptions(generators, witness, statement, opts.WithRand(sigmautil.SeededReader(1)))
			Expect(err).ToNot(HaveOccurred())
			Expect(p1.Eq(p2)).To(BeTrue())
		})

		It("should fail when the randomness source fails", func() {
			generators, witness, statement := dlequtil.RandomRelation(2)
			opts := sigma.DefaultOptions().WithRand(sigmautil.FailingReader(0))

			_, err := ProveWithOptions(generators, witness, statement, opts)
			Expect(errors.Is(err, sigma.ErrRandomness)).To(BeTrue())
		})
	})
})
