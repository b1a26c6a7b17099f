package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Backend errors
	ErrBackendUnknown ErrorCode = "BACKEND_UNKNOWN"
	ErrBackendInit    ErrorCode = "BACKEND_INIT"
	ErrBackendOpen    ErrorCode = "BACKEND_OPEN"
	ErrBackendEmit    ErrorCode = "BACKEND_EMIT"
	ErrBackendClose   ErrorCode = "BACKEND_CLOSE"

	// Execution errors
	ErrCancelled       ErrorCode = "CANCELLED"
	ErrAlreadyExecuted ErrorCode = "ALREADY_EXECUTED"

	// Receipt document errors
	ErrDocumentParse   ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentInvalid ErrorCode = "DOCUMENT_INVALID"
)

// Category groups codes by the stage of a print job that raised them.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryConfiguration Category = "configuration"
	CategoryBackend       Category = "backend"
	CategoryExecution     Category = "execution"
	CategoryDocument      Category = "document"
)

// Category returns the group the code belongs to.
func (c ErrorCode) Category() Category {
	switch c {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return CategoryConfiguration
	case ErrBackendInit, ErrBackendOpen, ErrBackendEmit, ErrBackendClose:
		return CategoryBackend
	case ErrCancelled, ErrAlreadyExecuted:
		return CategoryExecution
	case ErrDocumentParse, ErrDocumentInvalid:
		return CategoryDocument
	}
	return CategoryGeneral
}

// Detail keys with a meaning of their own.
const (
	// DetailIndex is the queue position of the action that failed
	DetailIndex = "index"
	// DetailKind is the kind of the action that failed
	DetailKind = "kind"
	// DetailParameter names the builder parameter that was rejected
	DetailParameter = "parameter"
)

// PrinterError is a coded error. Details carry machine readable context;
// the failing action's position, when recorded, is part of the message.
type PrinterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *PrinterError) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	b.WriteString(e.Message)

	if index, ok := e.Details[DetailIndex]; ok {
		fmt.Fprintf(&b, " at action #%v", index)
		if kind, ok := e.Details[DetailKind]; ok {
			fmt.Fprintf(&b, " (%v)", kind)
		}
	}
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

func (e *PrinterError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PrinterError carrying the same code.
func (e *PrinterError) Is(target error) bool {
	t, ok := asPrinterError(target)
	return ok && t.Code == e.Code
}

// Category reports the stage that raised the error.
func (e *PrinterError) Category() Category {
	return e.Code.Category()
}

// New creates a PrinterError with an empty detail set.
func New(code ErrorCode, message string) *PrinterError {
	return &PrinterError{Code: code, Message: message, Details: map[string]interface{}{}}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *PrinterError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *PrinterError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PrinterError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// InvalidParameter builds the configuration error raised by builder calls.
// The offending parameter name is put both in the message and in Details.
func InvalidParameter(param string, format string, args ...interface{}) *PrinterError {
	return Newf(ErrConfigValid, "invalid %s: %s", param, fmt.Sprintf(format, args...)).
		WithDetail(DetailParameter, param)
}

// WithDetail adds a detail to the error
func (e *PrinterError) WithDetail(key string, value interface{}) *PrinterError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PrinterError) WithDetails(details map[string]interface{}) *PrinterError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// AtAction records which queued action failed.
func (e *PrinterError) AtAction(index int, kind string) *PrinterError {
	return e.WithDetail(DetailIndex, index).WithDetail(DetailKind, kind)
}

func asPrinterError(err error) (*PrinterError, bool) {
	var pe *PrinterError
	ok := errors.As(err, &pe)
	return pe, ok
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	pe, ok := asPrinterError(err)
	return ok && pe.Code == code
}

// IsBackendError reports whether err came out of the output backend.
func IsBackendError(err error) bool {
	return GetErrorCode(err).Category() == CategoryBackend
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PrinterError
func GetErrorCode(err error) ErrorCode {
	if pe, ok := asPrinterError(err); ok {
		return pe.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PrinterError
func GetErrorDetails(err error) map[string]interface{} {
	if pe, ok := asPrinterError(err); ok {
		return pe.Details
	}
	return nil
}

// AddDetail sets a detail on the first PrinterError in err's chain.
// It reports false when the chain holds none.
func AddDetail(err error, key string, value interface{}) bool {
	pe, ok := asPrinterError(err)
	if ok {
		pe.WithDetail(key, value)
	}
	return ok
}
