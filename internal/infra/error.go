// Package infra holds the store-facing error vocabulary. Kinds classify the
// outcome of a store operation without tying callers to the in-memory
// implementation.
package infra

import (
	"errors"
)

type RepositoryErrorKind string

const (
	KindNotFound RepositoryErrorKind = "NOT_FOUND"
	KindConflict RepositoryErrorKind = "CONFLICT"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
}

func (e RepositoryError) Error() string {
	return string(e.Kind) + ": " + e.msg
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
