package sqlfmt

import (
	"fmt"
	"strings"
)

// ErrorKind distinguishes input problems from formatter defects.
type ErrorKind int

const (
	// SyntaxError means the input could not be parsed.
	SyntaxError ErrorKind = iota + 1
	// InternalError means the formatter failed on input that did parse.
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case InternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type (
	// Error is a user-facing formatting error. Line and Column are 1-based;
	// both are 0 for internal errors.
	Error struct {
		Message string
		Line    int
		Column  int
		Kind    ErrorKind
	}

	// Warning is a non-fatal note about a successful format, such as comments
	// that were dropped. Line is 0 when the warning is not tied to a line.
	Warning struct {
		Message string
		Line    int
	}

	// Errors is a list of formatting errors usable as a Go error.
	Errors []Error

	// Result is the outcome of one format call.
	//
	// On success Formatted holds the formatted text (nil only for nil input).
	// On failure Formatted holds the original text unchanged and Errors is
	// non-empty.
	Result struct {
		Formatted *string
		Success   bool
		Errors    []Error
		Warnings  []Warning
	}
)

func (e Error) String() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("Line %d, Column %d: %s", e.Line, e.Column, e.Message)
	}

	return e.Message
}

func (e Error) Error() string {
	return e.String()
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("Line %d: %s", w.Line, w.Message)
	}

	return w.Message
}

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.String()
	}

	return strings.Join(messages, "\n")
}

// Text returns the formatted text, or the empty string when there is none.
func (r *Result) Text() string {
	if r.Formatted == nil {
		return ""
	}

	return *r.Formatted
}

func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ErrorMessage joins the error strings with newlines. It is empty on success.
func (r *Result) ErrorMessage() string {
	if !r.HasErrors() {
		return ""
	}

	return Errors(r.Errors).Error()
}

// Err returns nil on success and an Errors value otherwise.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}

	return Errors(r.Errors)
}

func succeeded(text *string, warnings ...Warning) *Result {
	return &Result{Formatted: text, Success: true, Warnings: warnings}
}

func failed(original string, errs ...Error) *Result {
	return &Result{Formatted: &original, Success: false, Errors: errs}
}
