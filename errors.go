package ignorefile

import (
	"fmt"
)

// Category distinguishes the two ways rule set construction can fail.
type Category int

const (
	// CategoryIO covers failures reading the pattern file.
	CategoryIO Category = iota
	// CategoryCompile covers patterns whose derived wildcard
	// expression is invalid, and combined-matcher build failures.
	CategoryCompile
)

// String returns the category name for logging and error messages.
func (c Category) String() string {
	switch c {
	case CategoryIO:
		return "io"
	case CategoryCompile:
		return "compile"
	default:
		return "unknown"
	}
}

// Error is the structured error type for rule set construction. Either
// category aborts construction entirely: no partial RuleSet is ever
// returned. Matching-time queries have no error path.
type Error struct {
	// Category is the failure class (io or compile).
	Category Category

	// Pattern is the offending original pattern line, when known.
	Pattern string

	// Line is the 1-based source line of the offending pattern, or 0
	// when construction did not start from line input.
	Line int

	// Path is the pattern file involved, when construction started
	// from a file.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Category {
	case CategoryCompile:
		if e.Line > 0 {
			return fmt.Sprintf("ignorefile: compile pattern %q (line %d): %v", e.Pattern, e.Line, e.Cause)
		}
		return fmt.Sprintf("ignorefile: compile pattern %q: %v", e.Pattern, e.Cause)
	case CategoryIO:
		return fmt.Sprintf("ignorefile: read %s: %v", e.Path, e.Cause)
	default:
		return fmt.Sprintf("ignorefile: %v", e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same category, so callers can test
// errors.Is(err, &Error{Category: CategoryCompile}) without caring
// about the context fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Category == t.Category
}

// newCompileError wraps an invalid pattern with its source position.
func newCompileError(pattern string, line int, cause error) *Error {
	return &Error{
		Category: CategoryCompile,
		Pattern:  pattern,
		Line:     line,
		Cause:    cause,
	}
}

// newIOError wraps a pattern file read failure.
func newIOError(path string, cause error) *Error {
	return &Error{
		Category: CategoryIO,
		Path:     path,
		Cause:    cause,
	}
}
