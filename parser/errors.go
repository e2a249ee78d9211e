package parser

import (
	stderrors "errors"
	"fmt"
	"unicode/utf8"

	"github.com/starlang/star/errors"
	"github.com/starlang/star/token"
)

// Sentinel errors wrapped by *Error. Use errors.Is to test for them.
var (
	ErrUnexpectedToken      = stderrors.New("unexpected token")
	ErrUnexpectedEOF        = stderrors.New("unexpected end of input")
	ErrUndefinedDirective   = stderrors.New("undefined directive")
	ErrNoDefaultConstructor = stderrors.New("no default constructor")
	ErrNoDefaultIndexer     = stderrors.New("no default indexer")
	ErrUnregisteredOperator = stderrors.New("operator has no definition")
	ErrInvalidDirective     = stderrors.New("invalid directive")
	ErrMaxDepth             = stderrors.New("maximum nesting depth exceeded")
)

// ErrorOpts holds the data used to build an *Error. Cause should be one of
// the sentinel errors of this package.
type ErrorOpts struct {
	Code        errors.ErrorCode
	Cause       error
	Message     string
	Token       token.Extended
	Suggestions []errors.Suggestion
	SourceLine  string
	File        string
}

// NewError returns an *Error populated from opts.
func NewError(opts ErrorOpts) *Error {
	return &Error{
		Code:        opts.Code,
		Cause:       opts.Cause,
		Message:     opts.Message,
		Token:       opts.Token,
		Suggestions: opts.Suggestions,
		SourceLine:  opts.SourceLine,
		File:        opts.File,
	}
}

// Error is a fatal parse error. It carries everything needed to render a
// diagnostic: the offending token, the source line it sits on and ranked
// suggestions where they apply.
type Error struct {
	Code        errors.ErrorCode
	Cause       error
	Message     string
	Token       token.Extended
	Suggestions []errors.Suggestion
	// Relevant line of source code text
	SourceLine string
	File       string
}

func (e *Error) Error() string {
	loc := e.Location()
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	return fmt.Sprintf("%s: %s", loc, msg)
}

// Unwrap returns the sentinel error describing the failure.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Location returns the 1-indexed location of the offending token.
func (e *Error) Location() errors.SourceLocation {
	return errors.SourceLocation{
		Filename: e.File,
		Line:     e.Token.Position.LineNumber(),
		Column:   e.Token.Position.ColumnNumber(),
		Source:   e.SourceLine,
	}
}

// FriendlyErrorMessage returns the error rendered without colors.
func (e *Error) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *Error) ToFormatted() *errors.FormattedError {
	pos := e.Token.Position
	endColumn := pos.ColumnNumber()
	if width := utf8.RuneCountInString(e.Token.Text); width > 1 && !e.Token.HasNewline() {
		endColumn += width - 1
	}
	message := e.Message
	if message == "" && e.Cause != nil {
		message = e.Cause.Error()
	}
	formatted := &errors.FormattedError{
		Code:      e.Code,
		Kind:      "parse error",
		Message:   message,
		Filename:  e.File,
		Line:      pos.LineNumber(),
		Column:    pos.ColumnNumber(),
		EndColumn: endColumn,
		Hint:      errors.FormatSuggestions(e.Suggestions),
	}
	formatted.SourceLines = []errors.SourceLineEntry{
		{Number: pos.LineNumber(), Text: e.SourceLine, IsMain: true},
	}
	return formatted
}
