// Package errs provides the error type every HTTP handler returns. An Error
// is both an error and a web.Encoder.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value string
}

// The set of error codes.
var (
	InvalidArgument  = ErrCode{"invalid_argument"}
	NotFound         = ErrCode{"not_found"}
	MethodNotAllowed = ErrCode{"method_not_allowed"}
	Unprocessable    = ErrCode{"unprocessable"}
	Internal         = ErrCode{"internal"}
	InternalOnlyLog  = ErrCode{"internal_only_log"}
	Unavailable      = ErrCode{"unavailable"}
)

var httpStatus = map[ErrCode]int{
	InvalidArgument:  http.StatusBadRequest,
	NotFound:         http.StatusNotFound,
	MethodNotAllowed: http.StatusMethodNotAllowed,
	Unprocessable:    http.StatusUnprocessableEntity,
	Internal:         http.StatusInternalServerError,
	InternalOnlyLog:  http.StatusInternalServerError,
	Unavailable:      http.StatusServiceUnavailable,
}

// String returns the wire name of the code.
func (ec ErrCode) String() string {
	return ec.value
}

// MarshalText implements encoding.TextMarshaler.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.value), nil
}

// FieldError is a single violated field constraint.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// Error represents an error in the system.
type Error struct {
	Code     ErrCode      `json:"code"`
	Message  string       `json:"message"`
	Fields   []FieldError `json:"fields,omitempty"`
	FuncName string       `json:"-"`
	FileName string       `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// NewFieldErrors constructs an Unprocessable error listing every field.
func NewFieldErrors(message string, fields []FieldError) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     Unprocessable,
		Message:  message,
		Fields:   fields,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web.Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web.HTTPStatus interface.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Equal compares the code and message of two errors.
func (e *Error) Equal(e2 *Error) bool {
	return e.Code == e2.Code && e.Message == e2.Message
}

// IsError checks if an error of type Error exists in the chain.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError returns a copy of the Error pointer.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return nil
	}
	return er
}
