package lists

import "fmt"

// ErrorCode classifies the recoverable failure outcomes of list operations.
type ErrorCode int

const (
	Unknown ErrorCode = iota
	// Empty: pop or peek on a list with no elements.
	Empty
	// IndexOutOfBounds: an index based operation addressed a slot beyond the valid range.
	IndexOutOfBounds
	// InvalidPosition: a held position no longer belongs to the list it is used against,
	// e.g. its element was removed or the list was cleared.
	InvalidPosition
)

// String returns the name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case Empty:
		return "Empty"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case InvalidPosition:
		return "InvalidPosition"
	}
	return "Unknown"
}

// Error is the lists custom error. All recoverable outcomes are reported as an
// Error value carrying one of the ErrorCode constants; none are escalated to a
// panic under normal use.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e Error) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

// Unwrap returns the wrapped cause, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is matches another Error by code, so errors.Is(err, lists.Error{Code: lists.Empty})
// works regardless of the wrapped cause.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// IsCode reports whether err is a lists Error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(Error); ok {
			return e.Code == code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
