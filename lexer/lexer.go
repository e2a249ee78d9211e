// Package lexer converts star source text into a flat token stream.
//
// Every byte of the input belongs to exactly one token, so concatenating the
// Text of all tokens reproduces the input. Lexical problems never stop the
// scan; they are collected and returned next to the (possibly degraded) token
// list.
package lexer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/edwingeng/deque"
	"github.com/hashicorp/go-multierror"

	"github.com/starlang/star/errors"
	"github.com/starlang/star/token"
)

// Error describes a non-fatal lexical problem.
type Error struct {
	Code     errors.ErrorCode
	Message  string
	Offset   int // byte offset in the input
	Position token.Position
	// Relevant line of source code text
	SourceLine string
	File       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location(), e.Message)
}

// Location returns the 1-indexed location of the problem.
func (e *Error) Location() errors.SourceLocation {
	return errors.SourceLocation{
		Filename: e.File,
		Line:     e.Position.LineNumber(),
		Column:   e.Position.ColumnNumber(),
		Source:   e.SourceLine,
	}
}

// ToFormatted converts the lexical error to a FormattedError for display.
func (e *Error) ToFormatted() *errors.FormattedError {
	line := e.Position.LineNumber()
	return &errors.FormattedError{
		Code:      e.Code,
		Kind:      "syntax error",
		Message:   e.Message,
		Filename:  e.File,
		Line:      line,
		Column:    e.Position.ColumnNumber(),
		EndColumn: e.Position.ColumnNumber(),
		SourceLines: []errors.SourceLineEntry{
			{Number: line, Text: e.SourceLine, IsMain: true},
		},
	}
}

// Combine folds lexical errors into a single error value, or nil when there
// are none.
func Combine(errs []*Error) error {
	var result *multierror.Error
	for _, err := range errs {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// openBracket is an entry on the bracket stack.
type openBracket struct {
	kind   token.Kind
	offset int
}

// Lexer tokenizes star source code. A Lexer resets itself on every call to
// Tokenize, so it may be reused sequentially but not concurrently.
type Lexer struct {
	input    string
	pos      int
	tokens   []token.Token
	errs     []*Error
	brackets deque.Deque
}

// New returns a Lexer ready for use.
func New() *Lexer {
	return &Lexer{}
}

// Tokenize is a convenience wrapper around New().Tokenize(input).
func Tokenize(input string) ([]token.Token, []*Error) {
	return New().Tokenize(input)
}

// Tokenize scans input and returns all tokens together with every lexical
// error encountered along the way.
func (l *Lexer) Tokenize(input string) ([]token.Token, []*Error) {
	l.input = input
	l.pos = 0
	l.tokens = nil
	l.errs = nil
	l.brackets = deque.NewDeque()

	for l.pos < len(l.input) {
		l.next()
	}

	// Report unclosed brackets, innermost first
	for !l.brackets.Empty() {
		open := l.brackets.PopBack().(openBracket)
		l.errorf(errors.E0005, open.offset, "missing closing %q for %q", open.kind.Closer(), open.kind)
	}
	l.locateErrors()
	return l.tokens, l.errs
}

func (l *Lexer) next() {
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == ',':
		l.emitByte(token.COMMA)
	case ch == ';':
		l.emitByte(token.SEMICOLON)
	case ch == '(' || ch == '[' || ch == '{':
		kind := token.Kind(string(ch))
		l.brackets.PushBack(openBracket{kind: kind, offset: start})
		l.emitByte(kind)
	case ch == ')' || ch == ']' || ch == '}':
		kind := token.Kind(string(ch))
		l.closeBracket(kind, start)
		l.emitByte(kind)
	case ch == '\'':
		l.readString()
	case ch == '#':
		l.readDirective()
	case isSpace(ch):
		l.readSpace()
	case isDigit(ch):
		end := l.scan(start, isDigit)
		l.emit(token.NUMBER, start, end, "", 0)
	case isOperatorChar(ch, true):
		end := l.scan(start+1, func(c byte) bool { return isOperatorChar(c, false) })
		l.emit(token.IDENT, start, end, "", token.OperatorSet)
	case isWordChar(ch, true):
		end := l.scan(start+1, func(c byte) bool { return isWordChar(c, false) })
		l.emit(token.IDENT, start, end, "", 0)
	default:
		_, size := utf8.DecodeRuneInString(l.input[start:])
		l.emit(token.INVALID, start, start+size, "", 0)
		l.errorf(errors.E0001, start, "unexpected character %q", l.input[start:start+size])
	}
}

func (l *Lexer) closeBracket(kind token.Kind, offset int) {
	if l.brackets.Empty() {
		l.errorf(errors.E0003, offset, "unexpected %q, no matching %q found before", kind, kind.Opener())
		return
	}
	top := l.brackets.Back().(openBracket)
	if top.kind != kind.Opener() {
		l.errorf(errors.E0004, offset, "unexpected %q, expected %q to close %q opened at offset %d",
			kind, top.kind.Closer(), top.kind, top.offset)
		return
	}
	l.brackets.PopBack()
}

func (l *Lexer) readString() {
	start := l.pos
	for i := start + 1; i < len(l.input); i++ {
		if l.input[i] == '\'' {
			l.emit(token.STRING, start, i+1, l.input[start+1:i], 0)
			return
		}
	}
	l.errorf(errors.E0002, start, "unterminated string starting at offset %d", start)
	l.emit(token.STRING, start, len(l.input), l.input[start+1:], 0)
}

func (l *Lexer) readDirective() {
	start := l.pos
	end := l.scan(start+1, isDirectiveChar)
	l.emit(token.DIRECTIVE, start, end, l.input[start+1:end], 0)
}

func (l *Lexer) readSpace() {
	start := l.pos
	end := l.scan(start, isSpace)
	var flags token.Flags
	for i := start; i < end; i++ {
		if l.input[i] == '\n' {
			flags |= token.ContainsNewline
			break
		}
	}
	l.emit(token.SPACE, start, end, "", flags)
}

// scan returns the end of the run of bytes satisfying accept, starting at
// from.
func (l *Lexer) scan(from int, accept func(byte) bool) int {
	end := from
	for end < len(l.input) && accept(l.input[end]) {
		end++
	}
	return end
}

func (l *Lexer) emitByte(kind token.Kind) {
	l.emit(kind, l.pos, l.pos+1, "", 0)
}

func (l *Lexer) emit(kind token.Kind, start, end int, content string, flags token.Flags) {
	l.tokens = append(l.tokens, token.Token{
		Kind:    kind,
		Text:    l.input[start:end],
		Offset:  start,
		Content: content,
		Flags:   flags,
	})
	l.pos = end
}

func (l *Lexer) errorf(code errors.ErrorCode, offset int, format string, args ...interface{}) {
	l.errs = append(l.errs, &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	})
}

// locateErrors fills in the position and source line of every error in a
// single pass over the input.
func (l *Lexer) locateErrors() {
	if len(l.errs) == 0 {
		return
	}
	sorted := slices.Clone(l.errs)
	slices.SortStableFunc(sorted, func(a, b *Error) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	pos := token.Position{}
	lineStart, lineEnd := 0, -1
	for _, err := range sorted {
		seg := l.input[pos.Char:err.Offset]
		if i := strings.LastIndexByte(seg, '\n'); i >= 0 {
			lineStart = pos.Char + i + 1
		}
		pos = pos.AdvanceText(seg)
		if err.Offset > lineEnd {
			lineEnd = strings.IndexByte(l.input[err.Offset:], '\n')
			if lineEnd < 0 {
				lineEnd = len(l.input)
			} else {
				lineEnd += err.Offset
			}
		}
		err.Position = pos
		err.SourceLine = strings.TrimSuffix(l.input[lineStart:lineEnd], "\r")
	}
}
