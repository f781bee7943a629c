package ledger

import "fmt"

// Reason is a stable machine-readable failure code carried on every error
// response.
type Reason string

const (
	ReasonValidation         Reason = "validation_error"
	ReasonNoOpenForm         Reason = "no_open_form"
	ReasonAmbiguousOpenForm  Reason = "ambiguous_open_form"
	ReasonDuplicateKey       Reason = "duplicate_key"
	ReasonConflict           Reason = "conflict"
	ReasonFormChanged        Reason = "open_form_changed"
	ReasonItemOrFormNotFound Reason = "item_or_form_not_found"
	ReasonInsertUnknownState Reason = "insert_unknown_state"
	ReasonStoreUnavailable   Reason = "store_unavailable"
)

// Error pairs a reason code with a human-readable message. Errors with the
// same reason match under errors.Is, so the sentinels below can be used as
// targets regardless of message.
type Error struct {
	Reason  Reason
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.err)
	}

	if e.Message == "" {
		return string(e.Reason)
	}

	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

// NewError builds a reason-coded error.
func NewError(reason Reason, message string) *Error {
	return &Error{Reason: reason, Message: message}
}

// Errorf builds a reason-coded error with a formatted message.
func Errorf(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a store round-trip failure.
func Unavailable(err error) *Error {
	return &Error{Reason: ReasonStoreUnavailable, Message: "document store unavailable", err: err}
}

var (
	ErrNoOpenForm         = NewError(ReasonNoOpenForm, "no open form")
	ErrAmbiguousOpenForm  = NewError(ReasonAmbiguousOpenForm, "more than one open form")
	ErrDuplicateKey       = NewError(ReasonDuplicateKey, "business key already exists in the open form")
	ErrConflict           = NewError(ReasonConflict, "append retries exhausted")
	ErrFormChanged        = NewError(ReasonFormChanged, "open form is no longer available")
	ErrItemOrFormNotFound = NewError(ReasonItemOrFormNotFound, "open form or item not found")
	ErrInsertUnknownState = NewError(ReasonInsertUnknownState, "appended item not found on document")
	ErrStoreUnavailable   = NewError(ReasonStoreUnavailable, "document store unavailable")
)
