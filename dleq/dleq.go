// Package dleq implements non-interactive proofs of discrete logarithm
// equality: knowledge of a single scalar w such that
//
//	statement[i] = w * generators[i]    for every i.
//
// It is the one column case of package linear, with the witness broadcast
// across the generators instead of stored in a matrix. A proof is the
// challenge followed by one response.
package dleq

import (
	"fmt"
	"log/slog"

	"github.com/renproject/okamoto/lincomb"
	"github.com/renproject/okamoto/logging"
	"github.com/renproject/okamoto/oracle"
	"github.com/renproject/okamoto/sigma"
	"github.com/renproject/secp256k1"
)

// ProofLen is the number of scalars in a DLEQ proof.
const ProofLen = 2

// Prove creates a proof that the same witness relates every generator to the
// corresponding statement point, using the default options.
func Prove(generators []secp256k1.Point, witness secp256k1.Fn, statement []secp256k1.Point) (sigma.Proof, error) {
	return ProveWithOptions(generators, witness, statement, sigma.DefaultOptions())
}

// ProveWithOptions is Prove with the given options.
func ProveWithOptions(
	generators []secp256k1.Point,
	witness secp256k1.Fn,
	statement []secp256k1.Point,
	opts sigma.Options,
) (sigma.Proof, error) {
	opts = opts.Normalise()
	n := len(statement)

	if n == 0 || len(generators) != n {
		opts.Logger.Debug("dleq: rejecting relation",
			slog.Int("n", n), slog.Int("generators", len(generators)))
		return nil, sigma.ErrInvalidDimensions
	}

	if !opts.Checker.DLEQ(generators, &witness, statement) {
		opts.Logger.Debug("dleq: witness does not satisfy relation",
			logging.Dimensions(n, 1), logging.Redacted("witness"))
		return nil, sigma.ErrUnsound
	}

	trapdoors, err := sigma.RandomFns(opts.Rand, 1)
	if err != nil {
		return nil, err
	}
	defer sigma.Zeroise(trapdoors)
	trapdoor := &trapdoors[0]

	commitments := lincomb.Broadcast(generators, trapdoor)

	challenge, err := oracle.Challenge(generators, statement, commitments)
	if err != nil {
		return nil, fmt.Errorf("computing challenge: %w", err)
	}

	var response secp256k1.Fn
	response.Mul(&challenge, &witness)
	response.Add(&response, trapdoor)

	return sigma.NewProof(challenge, response), nil
}

// Verify checks the proof against the generators and statement. It returns
// nil if the proof is valid.
func Verify(generators []secp256k1.Point, statement []secp256k1.Point, proof sigma.Proof) error {
	return VerifyWithOptions(generators, statement, proof, sigma.Options{})
}

// VerifyWithOptions is Verify with a logger taken from opts.
func VerifyWithOptions(
	generators []secp256k1.Point,
	statement []secp256k1.Point,
	proof sigma.Proof,
	opts sigma.Options,
) error {
	logger := logging.OrDiscard(opts.Logger)
	n := len(statement)

	if proof.Len() != ProofLen || n == 0 || len(generators) != n {
		logger.Debug("dleq: malformed proof",
			slog.Int("n", n), slog.Int("proof", proof.Len()), slog.Int("generators", len(generators)))
		return sigma.ErrMalformed
	}

	challenge := proof[0]
	response := proof[1]

	var negChallenge secp256k1.Fn
	negChallenge.Negate(&challenge)

	// R_i = s g_i - c X_i
	commitments := lincomb.Broadcast(generators, &response)
	for i := range commitments {
		lincomb.AddScaled(&commitments[i], &statement[i], &negChallenge)
	}

	recomputed, err := oracle.Challenge(generators, statement, commitments)
	if err != nil {
		logger.Debug("dleq: cannot compute challenge", slog.String("err", err.Error()))
		return sigma.ErrInvalid
	}
	if !recomputed.Eq(&challenge) {
		logger.Debug("dleq: challenge mismatch", logging.Dimensions(n, 1))
		return sigma.ErrInvalid
	}
	return nil
}
