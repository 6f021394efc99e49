package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors. Adapters wrap them so callers can branch with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuotaExceeded indicates no remote calls remain in the current window.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrQuotaCheck indicates the quota itself could not be read.
	ErrQuotaCheck = errors.New("quota check failed")

	// ErrFetch indicates a remote call failed.
	ErrFetch = errors.New("fetch failed")

	// ErrWrite indicates the output document could not be written.
	ErrWrite = errors.New("write failed")
)

// QuotaExceededError is returned instead of issuing a call that is known to be rejected.
type QuotaExceededError struct {
	Limit   int
	ResetAt time.Time
}

func (e *QuotaExceededError) Error() string {
	if e.ResetAt.IsZero() {
		return "quota exceeded"
	}
	return fmt.Sprintf("quota exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Is reports whether target is ErrQuotaExceeded.
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// QuotaCheckError wraps a failure of the quota introspection call.
type QuotaCheckError struct {
	Err error
}

func (e *QuotaCheckError) Error() string {
	return fmt.Sprintf("quota check failed: %v", e.Err)
}

func (e *QuotaCheckError) Unwrap() error { return e.Err }

// Is reports whether target is ErrQuotaCheck.
func (e *QuotaCheckError) Is(target error) bool {
	return target == ErrQuotaCheck
}

// FetchError wraps a failed remote call.
type FetchError struct {
	// Operation names the call, e.g. "get languages".
	Operation string

	// Resource is the repository or subject the call was about.
	Resource string

	Err error
}

func (e *FetchError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
