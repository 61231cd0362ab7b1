// Package errs wraps cockroachdb/errors so call sites stay small: Wrap for
// annotating, Mark for attaching a sentinel that errors.Is can match while the
// cause and its stack trace are preserved.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
