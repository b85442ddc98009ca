// Package linear implements non-interactive proofs of knowledge of a witness
// vector w for a linear relation over secp256k1,
//
//	statement[i] = sum_j matrix[i*m+j] * w[j]    for every row i,
//
// where the public matrix has n = len(statement) rows and m = len(w) columns.
// This is Okamoto's generalisation of the Schnorr protocol, made
// non-interactive with the Fiat-Shamir transform. A proof is the challenge
// followed by the m responses.
package linear

import (
	"fmt"
	"log/slog"

	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/okamoto/logging"
	"github.com/renproject/okamoto/oracle"
	"github.com/renproject/okamoto/sigma"
	"github.com/renproject/secp256k1"
)

// Prove creates a proof of knowledge of the witness using the default
// options.
func Prove(matrix []secp256k1.Point, witness []secp256k1.Fn, statement []secp256k1.Point) (sigma.Proof, error) {
	return ProveWithOptions(matrix, witness, statement, sigma.DefaultOptions())
}

// ProveWithOptions creates a proof of knowledge of the witness. The matrix
// must have exactly len(witness)*len(statement) entries and neither the
// witness nor the statement may be empty.
func ProveWithOptions(
	matrix []secp256k1.Point,
	witness []secp256k1.Fn,
	statement []secp256k1.Point,
	opts sigma.Options,
) (sigma.Proof, error) {
	opts = opts.Normalise()
	n, m := len(statement), len(witness)

	if n == 0 || m == 0 || len(matrix) != n*m {
		opts.Logger.Debug("linear: rejecting relation",
			logging.Dimensions(n, m), slog.Int("matrix", len(matrix)))
		return nil, sigma.ErrInvalidDimensions
	}

	// Don't prove false statements.
	if !opts.Checker.Linear(matrix, witness, statement) {
		opts.Logger.Debug("linear: witness does not satisfy relation",
			logging.Dimensions(n, m), logging.Redacted("witness"))
		return nil, sigma.ErrUnsound
	}

	trapdoors, err := sigma.RandomFns(opts.Rand, m)
	if err != nil {
		return nil, err
	}
	defer sigma.Zeroise(trapdoors)

	// R_i = sum_j r_j M_{i,j}
	commitments := lincomb.Apply(matrix, trapdoors)

	challenge, err := oracle.Challenge(matrix, statement, commitments)
	if err != nil {
		return nil, fmt.Errorf("computing challenge: %w", err)
	}

	// s_j = r_j + c w_j
	responses := make([]secp256k1.Fn, m)
	for j := range responses {
		responses[j].Mul(&challenge, &witness[j])
		responses[j].Add(&responses[j], &trapdoors[j])
	}

	return sigma.NewProof(challenge, responses...), nil
}

// Verify checks the proof against the public matrix and statement. It returns
// nil if the proof is valid.
func Verify(matrix []secp256k1.Point, statement []secp256k1.Point, proof sigma.Proof) error {
	return VerifyWithOptions(matrix, statement, proof, sigma.Options{})
}

// VerifyWithOptions is Verify with a logger taken from opts. The witness
// dimension is implied by the length of the proof.
func VerifyWithOptions(
	matrix []secp256k1.Point,
	statement []secp256k1.Point,
	proof sigma.Proof,
	opts sigma.Options,
) error {
	logger := logging.OrDiscard(opts.Logger)
	n := len(statement)

	if proof.Len() < 2 || n == 0 || len(matrix) != n*(proof.Len()-1) {
		logger.Debug("linear: malformed proof",
			slog.Int("n", n), slog.Int("proof", proof.Len()), slog.Int("matrix", len(matrix)))
		return sigma.ErrMalformed
	}
	m := proof.Len() - 1

	challenge := proof.Challenge()
	responses := proof.Responses()

	var negChallenge secp256k1.Fn
	negChallenge.Negate(&challenge)

	// R_i = sum_j s_j M_{i,j} - c X_i
	commitments := make([]secp256k1.Point, n)
	for i := range commitments {
		commitments[i] = lincomb.Combine(lincomb.Row(matrix, m, i), responses)
		lincomb.AddScaled(&commitments[i], &statement[i], &negChallenge)
	}

	recomputed, err := oracle.Challenge(matrix, statement, commitments)
	if err != nil {
		logger.Debug("linear: cannot compute challenge", slog.String("err", err.Error()))
		return sigma.ErrInvalid
	}
	if !recomputed.Eq(&challenge) {
		logger.Debug("linear: challenge mismatch", logging.Dimensions(n, m))
		return sigma.ErrInvalid
	}
	return nil
}
