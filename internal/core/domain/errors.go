package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error. Adapters map kinds onto transport status
// codes; callers match them with errors.Is against the Err* sentinels.
type Kind string

const (
	KindValidation             Kind = "VALIDATION"
	KindNotFound               Kind = "NOT_FOUND"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindNotModerable           Kind = "NOT_MODERABLE"
	KindOverBudget             Kind = "OVER_BUDGET"
	KindDuplicateBooking       Kind = "DUPLICATE_BOOKING"
	KindUnauthorized           Kind = "UNAUTHORIZED"
	KindImmutableState         Kind = "IMMUTABLE_STATE"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindUnsupportedFilter      Kind = "UNSUPPORTED_FILTER"
	KindStorageUnavailable     Kind = "STORAGE_UNAVAILABLE"
)

// Sentinels for errors.Is. They carry no code, so they match every error of
// their kind.
var (
	ErrValidation             = &Error{Kind: KindValidation}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrInvalidTransition      = &Error{Kind: KindInvalidTransition}
	ErrNotModerable           = &Error{Kind: KindNotModerable}
	ErrOverBudget             = &Error{Kind: KindOverBudget}
	ErrDuplicateBooking       = &Error{Kind: KindDuplicateBooking}
	ErrUnauthorized           = &Error{Kind: KindUnauthorized}
	ErrImmutableState         = &Error{Kind: KindImmutableState}
	ErrConcurrentModification = &Error{Kind: KindConcurrentModification}
	ErrUnsupportedFilter      = &Error{Kind: KindUnsupportedFilter}
	ErrStorageUnavailable     = &Error{Kind: KindStorageUnavailable}
)

// Error is the typed error returned by every core operation. Code is a
// machine-readable refinement of Kind (e.g. CAMPAIGN_DATES_INVALID).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind and, when target carries a
// code, the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsRetryable reports whether a caller may retry the same command unchanged
// after re-reading. Only optimistic-lock losses and storage outages qualify.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindConcurrentModification, KindStorageUnavailable:
		return true
	default:
		return false
	}
}

// Validation returns a validation error with a code.
func Validation(code, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found error for the given entity.
func NotFound(entity EntityKind, id fmt.Stringer) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    string(entity) + "_NOT_FOUND",
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// InvalidTransition returns the error produced by a state machine rejecting from→to.
func InvalidTransition(entity EntityKind, from, to string) *Error {
	return &Error{
		Kind:    KindInvalidTransition,
		Code:    "INVALID_TRANSITION",
		Message: fmt.Sprintf("%s cannot transition from %q to %q", entity, from, to),
	}
}

// NotModerable returns the error for moderating an entity outside a moderatable state.
func NotModerable(entity EntityKind, status string) *Error {
	return &Error{
		Kind:    KindNotModerable,
		Code:    "NOT_MODERABLE",
		Message: fmt.Sprintf("%s in status %q cannot be moderated", entity, status),
	}
}

// OverBudget returns the error for a spend that would exceed the budget.
func OverBudget(remaining, amount fmt.Stringer) *Error {
	return &Error{
		Kind:    KindOverBudget,
		Code:    "OVER_BUDGET",
		Message: fmt.Sprintf("spend %s exceeds remaining budget %s", amount, remaining),
	}
}

// DuplicateBooking returns the error for a second placement on the same inventory window.
func DuplicateBooking(cause error) *Error {
	return &Error{
		Kind:    KindDuplicateBooking,
		Code:    "DUPLICATE_BOOKING",
		Message: "placement already exists for this campaign, platform and date range",
		Cause:   cause,
	}
}

// Unauthorized returns an access-control failure.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Code: "UNAUTHORIZED", Message: fmt.Sprintf(format, args...)}
}

// ImmutableState returns the error for editing an entity whose state forbids it.
func ImmutableState(format string, args ...any) *Error {
	return &Error{Kind: KindImmutableState, Code: "IMMUTABLE_STATE", Message: fmt.Sprintf(format, args...)}
}

// ConcurrentModification returns the optimistic-lock failure for an entity.
func ConcurrentModification(entity EntityKind, id fmt.Stringer, cause error) *Error {
	return &Error{
		Kind:    KindConcurrentModification,
		Code:    "CONCURRENT_MODIFICATION",
		Message: fmt.Sprintf("%s %s was modified concurrently", entity, id),
		Cause:   cause,
	}
}

// UnsupportedFilter returns a query-filter safety rejection.
func UnsupportedFilter(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedFilter, Code: "UNSUPPORTED_FILTER", Message: fmt.Sprintf(format, args...)}
}

// StorageUnavailable wraps a transaction-level failure.
func StorageUnavailable(cause error) *Error {
	return &Error{Kind: KindStorageUnavailable, Code: "STORAGE_UNAVAILABLE", Message: "storage unavailable", Cause: cause}
}
