package sigma

import (
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/renproject/okamoto/logging"
	"github.com/renproject/okamoto/soundness"
)

// Options configure a prover. Verifiers only read the Logger.
type Options struct {
	// Rand is the source of the commitment trapdoors. It must be safe for
	// concurrent use if the Options are shared between goroutines.
	Rand io.Reader

	// Checker decides whether the witness is checked against the statement
	// before proving.
	Checker soundness.Checker

	// Logger receives debug records about rejected inputs. Secret values are
	// never logged.
	Logger *slog.Logger
}

// DefaultOptions returns options that read randomness from the operating
// system, check soundness only when built with the checksoundness tag, and
// discard all logs.
func DefaultOptions() Options {
	return Options{
		Rand:    rand.Reader,
		Checker: soundness.Default(),
		Logger:  logging.Discard(),
	}
}

// WithRand returns a copy of the options that samples trapdoors from r.
func (opts Options) WithRand(r io.Reader) Options {
	opts.Rand = r
	return opts
}

// WithChecker returns a copy of the options that uses the given soundness
// checker.
func (opts Options) WithChecker(checker soundness.Checker) Options {
	opts.Checker = checker
	return opts
}

// WithLogger returns a copy of the options that logs to logger.
func (opts Options) WithLogger(logger *slog.Logger) Options {
	opts.Logger = logger
	return opts
}

// Normalise returns a copy of the options in which every unset field has its
// default value.
func (opts Options) Normalise() Options {
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	if opts.Checker == nil {
		opts.Checker = soundness.Default()
	}
	opts.Logger = logging.OrDiscard(opts.Logger)
	return opts
}
