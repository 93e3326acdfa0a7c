package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryDirectory  Category = "directory"
	CategoryFilesystem Category = "filesystem"
	CategoryGenerate   Category = "generate"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// GenError is a structured error with the offending path, a suggestion and
// documentation.
type GenError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type (directory, filesystem, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the file or directory the error is about, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GenError) Unwrap() error {
	return e.Wrapped
}

// WithPath records the file or directory the error refers to.
func (e *GenError) WithPath(path string) *GenError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GenError) WithSuggestion(s string) *GenError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *GenError) WithDetail(d string) *GenError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *GenError) Wrap(err error) *GenError {
	e.Wrapped = err
	return e
}

// New creates a GenError from a registered error code.
func New(code string) *GenError {
	template, ok := registry[code]
	if !ok {
		return &GenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// FromError wraps a standard error in a GenError.
// Errors that already carry a GenError in their chain are returned unchanged.
func FromError(err error, code string) *GenError {
	if err == nil {
		return nil
	}
	var ge *GenError
	if stderrors.As(err, &ge) {
		return ge
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first GenError in err's chain, or "".
func Code(err error) string {
	var ge *GenError
	if stderrors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// HasCode reports whether err's chain contains a GenError with the code.
func HasCode(err error, code string) bool {
	for err != nil {
		if ge, ok := err.(*GenError); ok && ge.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsInvalidDirectory reports whether err is an invalid-directory failure.
func IsInvalidDirectory(err error) bool {
	var ge *GenError
	return stderrors.As(err, &ge) && ge.Category == CategoryDirectory
}

// IsFilesystem reports whether err is a filesystem read or write failure.
func IsFilesystem(err error) bool {
	var ge *GenError
	return stderrors.As(err, &ge) && ge.Category == CategoryFilesystem
}
