// Package ledgererr classifies the failures of the securities and merge
// services so callers can tell bad input from ledger state from a merge
// that simply does not match.
package ledgererr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidArgument          Kind = "INVALID_ARGUMENT"
	KindInvalidState             Kind = "INVALID_STATE"
	KindMergePlausibilityFailure Kind = "MERGE_PLAUSIBILITY_FAILURE"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidState      = errors.New("invalid state")
	ErrMergePlausibility = errors.New("merge plausibility check failed")
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrInvalidState:
		return e.Kind == KindInvalidState
	case ErrMergePlausibility:
		return e.Kind == KindMergePlausibilityFailure
	}
	return false
}

func InvalidArgument(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Op: op, Message: fmt.Sprintf(format, args...)}
}

func MergePlausibility(op, format string, args ...any) *Error {
	return &Error{Kind: KindMergePlausibilityFailure, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
