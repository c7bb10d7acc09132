package calendar

import "fmt"

type ErrorKind int

const (
	// rejected input: bad action tag, malformed id, unparseable date
	KindValidation ErrorKind = iota + 1
	// no event behind the given id
	KindNotFound
	// the backing store failed
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error carries the failure kind so callers can tell "show empty state"
// apart from "show error" without parsing messages.
type Error struct {
	Kind ErrorKind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

func newValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func newNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func newStorageError(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: msg, err: err}
}
