// Package errors defines error codes, "did you mean" suggestions and the
// diagnostic formatter shared by the lexer and the parser.
//
// The parsing packages never print. They return values implementing
// FormattableError, and callers decide whether to render them.
package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Render formats err with a Formatter when it supports it, and falls back to
// the plain error message otherwise.
func Render(err error, useColor bool) string {
	if err == nil {
		return ""
	}
	f := NewFormatter(useColor)
	if fe, ok := err.(FormattableError); ok {
		return f.Format(fe.ToFormatted())
	}
	if multi, ok := err.(*multierror.Error); ok {
		var formatted []*FormattedError
		for _, e := range multi.Errors {
			if fe, ok := e.(FormattableError); ok {
				formatted = append(formatted, fe.ToFormatted())
			} else {
				formatted = append(formatted, &FormattedError{Kind: "error", Message: e.Error()})
			}
		}
		return f.FormatMultiple(formatted)
	}
	return f.Format(&FormattedError{Kind: "error", Message: err.Error()})
}
