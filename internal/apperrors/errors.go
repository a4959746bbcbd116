package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindIO         Kind = "io"
	KindCancelled  Kind = "cancelled"
	KindValidation Kind = "validation"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindIO:
		return "The file could not be read or written."
	case KindCancelled:
		return "Operation cancelled."
	case KindValidation:
		return "The request is not valid."
	default:
		return "Operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func IO(safeMessage string, err error) error {
	return New(KindIO, safeMessage, err)
}

// Cancelled reports a user decision (or shutdown) that aborted an operation.
// It is a normal outcome rather than a failure.
func Cancelled(cause error) error {
	return New(KindCancelled, "", cause)
}

func Validation(safeMessage string) error {
	return New(KindValidation, safeMessage, nil)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func IsCancelled(err error) bool {
	return Is(err, KindCancelled)
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
