package httperr

import (
	"context"
	"errors"
)

// Kind classifies an error for the request boundary.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindUnauthorized Kind = "unauthorized"
	KindStorage      Kind = "storage"
	KindTimeout      Kind = "timeout"
	KindNotification Kind = "notification"
	KindUpstream     Kind = "upstream"
)

type BusinessError struct {
	Kind Kind
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

// ErrBusiness reports a rule violation on an existing record.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidState, Code: code}
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

// Storage wraps a backend failure. Deadline expiry is reported as a timeout.
func Storage(code string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return BusinessError{Kind: KindTimeout, Code: "timeout", Err: err}
	}
	return BusinessError{Kind: KindStorage, Code: code, Err: err}
}

// AsStorage keeps business errors as they are and wraps anything else
// with Storage.
func AsStorage(code string, err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return Storage(code, err)
}

func Notification(code string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return BusinessError{Kind: KindTimeout, Code: "timeout", Err: err}
	}
	return BusinessError{Kind: KindNotification, Code: code, Err: err}
}

func Upstream(code string, err error) error {
	return BusinessError{Kind: KindUpstream, Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of err. Unclassified errors count as storage
// failures.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindStorage
}

func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "internal_error"
}
