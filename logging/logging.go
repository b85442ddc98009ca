// Package logging holds the slog helpers used by provers and verifiers.
// Secret values are never logged; call sites log the Redacted attribute in
// their place.
package logging

import (
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return discard }

// OrDiscard returns logger, or the discarding logger when logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discard
	}
	return logger
}

// Redacted returns an attribute marking that the value for key was
// intentionally left out.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the string logged in place of a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

// Dimensions returns the attributes describing the shape of a relation.
func Dimensions(n, m int) slog.Attr {
	return slog.Group("dims", slog.Int("n", n), slog.Int("m", m))
}
