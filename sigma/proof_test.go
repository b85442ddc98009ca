package sigma_test

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/okamoto/sigma"

	"github.com/renproject/okamoto/sigma/sigmautil"
	"github.com/renproject/secp256k1"
	"github.com/renproject/surge"
	"github.com/renproject/surge/surgeutil"
)

var _ = Describe("Proof", func() {
	trials := 20

	RandomProof := func(m int) Proof {
		return NewProof(secp256k1.RandomFn(), sigmautil.RandomFns(m)...)
	}

	Context("accessors", func() {
		It("should put the challenge first and the responses after it", func() {
			c := secp256k1.RandomFn()
			responses := sigmautil.RandomFns(3)
			proof := NewProof(c, responses...)

			Expect(proof.Len()).To(Equal(4))
			challenge := proof.Challenge()
			Expect(challenge.Eq(&c)).To(BeTrue())
			Expect(proof.Responses()).To(HaveLen(3))
			for j, s := range proof.Responses() {
				Expect(s.Eq(&responses[j])).To(BeTrue())
			}
		})

		It("should compare proofs element by element", func() {
			proof := RandomProof(2)
			other := append(Proof{}, proof...)
			Expect(proof.Eq(other)).To(BeTrue())

			sigmautil.Perturb(&other[2])
			Expect(proof.Eq(other)).To(BeFalse())
			Expect(proof.Eq(proof[:2])).To(BeFalse())
		})
	})

	Context("surge marshalling", func() {
		It("should be the same after marshalling and unmarshalling", func() {
			for i := 0; i < trials; i++ {
				proof := RandomProof(1 + i%5)

				buf := make([]byte, proof.SizeHint())
				_, _, err := proof.Marshal(buf, proof.SizeHint())
				Expect(err).ToNot(HaveOccurred())

				var decoded Proof
				_, _, err = decoded.Unmarshal(buf, surge.MaxBytes)
				Expect(err).ToNot(HaveOccurred())
				Expect(decoded.Eq(proof)).To(BeTrue())
			}
		})

		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				proof := RandomProof(1 + i%5)
				buf := make([]byte, proof.SizeHint()-1)
				_, _, err := proof.Marshal(buf, proof.SizeHint())
				Expect(err).To(HaveOccurred())
			}
		})

		It("should return an error when the memory quota is too small", func() {
			for i := 0; i < trials; i++ {
				proof := RandomProof(1 + i%5)
				buf := make([]byte, proof.SizeHint())
				_, _, err := proof.Marshal(buf, proof.SizeHint()-1)
				Expect(err).To(HaveOccurred())
			}
		})

		It("should return an error when unmarshalling a truncated buffer", func() {
			for i := 0; i < trials; i++ {
				proof := RandomProof(1 + i%5)
				buf := make([]byte, proof.SizeHint())
				_, _, err := proof.Marshal(buf, proof.SizeHint())
				Expect(err).ToNot(HaveOccurred())

				var decoded Proof
				_, _, err = decoded.Unmarshal(buf[:len(buf)-1], surge.MaxBytes)
				Expect(err).To(HaveOccurred())
			}
		})

		It("should not panic when fuzzing", func() {
			for i := 0; i < trials; i++ {
				Expect(func() { surgeutil.Fuzz(reflect.TypeOf(Proof{})) }).ToNot(Panic())
			}
		})
	})
})
