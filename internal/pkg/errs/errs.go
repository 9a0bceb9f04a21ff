// Package errs narrows the cockroachdb/errors surface to the three
// operations this codebase needs: create, wrap with context, and mark
// with a sentinel so errors.Is matches across layer boundaries.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap passes nil through so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err, keeping the original cause chain. A
// nil err degenerates to the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
