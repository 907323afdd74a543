package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds. Match them with errors.Is.
var (
	ErrInvalidData      = errors.New("invalid data")
	ErrResourceNotFound = errors.New("resource not found")
	ErrResourceConflict = errors.New("resource conflict")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrTechnical        = errors.New("technical failure")
)

var kindStatus = map[error]int{
	ErrInvalidData:      http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	ErrResourceConflict: http.StatusConflict,
	ErrInvalidOperation: http.StatusUnprocessableEntity,
	ErrTechnical:        http.StatusInternalServerError,
}

// Error is a classified failure surfaced to callers of the buyer services.
type Error struct {
	kind   error
	Msg    string
	Status int
	Cause  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.kind, e.Cause}
	}
	return []error{e.kind}
}

func (e *Error) HTTPStatus() int { return e.Status }

func newError(kind error, format string, args ...any) *Error {
	return &Error{
		kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Status: kindStatus[kind],
	}
}

func InvalidData(format string, args ...any) error {
	return newError(ErrInvalidData, format, args...)
}

func NotFound(format string, args ...any) error {
	return newError(ErrResourceNotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return newError(ErrResourceConflict, format, args...)
}

func InvalidOperation(format string, args ...any) error {
	return newError(ErrInvalidOperation, format, args...)
}

// Technical wraps an unexpected infrastructure or integration failure. The
// status is forwarded from the cause when it carries one.
func Technical(cause error) error {
	status := http.StatusInternalServerError
	var hs interface{ HTTPStatus() int }
	if errors.As(cause, &hs) && hs.HTTPStatus() > 0 {
		status = hs.HTTPStatus()
	}
	return &Error{
		kind:   ErrTechnical,
		Status: status,
		Cause:  cause,
	}
}

// IsBusiness reports whether err is one of the rule violations, as opposed to
// an unclassified or technical failure.
func IsBusiness(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind != ErrTechnical
}

// Guard returns business errors unchanged and wraps anything else as Technical.
func Guard(err error) error {
	if err == nil || IsBusiness(err) {
		return err
	}
	var e *Error
	if errors.As(err, &e) && e.kind == ErrTechnical {
		return err
	}
	return Technical(err)
}

// StatusOf maps err to the HTTP status the transport layer should answer with.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status > 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
