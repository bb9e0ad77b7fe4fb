package pageio

import "fmt"

// Error represents a pageio error with an error code
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pageio: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("pageio: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports code equality so callers can match the sentinel errors below
// with errors.Is after intermediate wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ErrorCode classifies pageio errors
type ErrorCode int

const (
	// CodeItemEncode indicates row serialization into an item slot failed.
	// The page must be treated as potentially inconsistent by the caller.
	CodeItemEncode ErrorCode = iota + 1

	// CodeItemDecode indicates an item slot did not decode into a row
	CodeItemDecode

	// CodeUnknownIO indicates no I/O instance is registered for a page's
	// (type, version) combination
	CodeUnknownIO

	// CodeDuplicateIO indicates an I/O instance was registered twice for
	// the same (type, version) combination
	CodeDuplicateIO
)

// Sentinel errors for errors.Is matching
var (
	ErrItemEncode  = &Error{Code: CodeItemEncode, Message: "item encode failed"}
	ErrItemDecode  = &Error{Code: CodeItemDecode, Message: "item decode failed"}
	ErrUnknownIO   = &Error{Code: CodeUnknownIO, Message: "no page I/O registered"}
	ErrDuplicateIO = &Error{Code: CodeDuplicateIO, Message: "page I/O already registered"}
)

func encodeErr(err error) *Error {
	return &Error{Code: CodeItemEncode, Message: "item encode failed", Err: err}
}

func decodeErr(err error) *Error {
	return &Error{Code: CodeItemDecode, Message: "item decode failed", Err: err}
}
