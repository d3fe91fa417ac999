// Package errkind defines the cross-cutting error taxonomy shared by bsgs,
// archgraph, and mapping. Individual packages still expose their own
// sentinel errors for errors.Is comparisons; errkind lets callers that span
// package boundaries branch on the failure CATEGORY instead of the package
// that raised it.
package errkind

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidArgument marks a caller-supplied value that violates a
	// documented precondition (wrong degree, index out of range, ...).
	InvalidArgument Kind = iota
	// InvariantViolation marks an internal consistency check that failed
	// (e.g. an oracle result that mentions a vertex outside the graph).
	InvariantViolation
	// NotImplemented marks an operation a concrete type deliberately
	// leaves unimplemented.
	NotImplemented
	// OracleFailure marks a failure reported by an external isomorphism
	// oracle (its call returned an error). An oracle result that is
	// inconsistent with the graph is an InvariantViolation instead.
	OracleFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case InvariantViolation:
		return "invariant_violation"
	case NotImplemented:
		return "not_implemented"
	case OracleFailure:
		return "oracle_failure"
	default:
		return "unknown"
	}
}

// Error wraps an underlying package sentinel with a Kind and the operation
// that produced it, so a single errors.Is/As chain exposes both.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error tagging err with kind and the operation name op.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether the first *Error found in err's chain carries the
// given Kind; kinds of *Error values nested further inside it are not
// consulted.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
