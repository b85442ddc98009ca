package sigma

import "errors"

var (
	// ErrInvalidDimensions is returned by a prover when the length of the
	// matrix (or generators) is inconsistent with the lengths of the witness
	// and the statement, or when either of those is empty.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUnsound is returned by a prover with soundness checking enabled when
	// the witness does not satisfy the relation.
	ErrUnsound = errors.New("unsound statement")

	// ErrMalformed is returned by a verifier when the proof cannot be
	// interpreted against the given matrix (or generators) and statement.
	ErrMalformed = errors.New("malformed proof")

	// ErrInvalid is returned by a verifier when the recomputed challenge does
	// not match the challenge in the proof.
	ErrInvalid = errors.New("invalid proof")

	// ErrRandomness is returned by a prover when the source of randomness
	// fails. The proof cannot be generated without fresh randomness.
	ErrRandomness = errors.New("randomness unavailable")
)
