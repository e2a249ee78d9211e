// Package token defines the tokens produced when lexing star source code and
// the extended tokens produced by scope resolution.
package token

import (
	"fmt"
	"strings"
)

// Kind describes the kind of a token as a string.
type Kind string

// Token kinds
const (
	INVALID   Kind = "INVALID"
	SPACE     Kind = "SPACE"
	IDENT     Kind = "IDENT"
	STRING    Kind = "STRING"
	NUMBER    Kind = "NUMBER"
	DIRECTIVE Kind = "DIRECTIVE"
	LPAREN    Kind = "("
	RPAREN    Kind = ")"
	LBRACKET  Kind = "["
	RBRACKET  Kind = "]"
	LBRACE    Kind = "{"
	RBRACE    Kind = "}"
	COMMA     Kind = ","
	SEMICOLON Kind = ";"

	// EOF is never produced by the lexer. The parser uses it to describe the
	// end of the token stream in errors.
	EOF Kind = "EOF"
)

// IsOpener returns true for "(", "[" and "{".
func (k Kind) IsOpener() bool {
	return k == LPAREN || k == LBRACKET || k == LBRACE
}

// IsCloser returns true for ")", "]" and "}".
func (k Kind) IsCloser() bool {
	return k == RPAREN || k == RBRACKET || k == RBRACE
}

// Closer returns the closing kind matching an opener, or "" when k is not an
// opener.
func (k Kind) Closer() Kind {
	switch k {
	case LPAREN:
		return RPAREN
	case LBRACKET:
		return RBRACKET
	case LBRACE:
		return RBRACE
	}
	return ""
}

// Opener returns the opening kind matching a closer, or "" when k is not a
// closer.
func (k Kind) Opener() Kind {
	switch k {
	case RPAREN:
		return LPAREN
	case RBRACKET:
		return LBRACKET
	case RBRACE:
		return LBRACE
	}
	return ""
}

// Flags holds lexical properties of a token.
type Flags uint8

const (
	// ContainsNewline marks a whitespace token that spans a line break.
	ContainsNewline Flags = 1 << iota
	// OperatorSet marks an identifier built from the operator alphabet.
	OperatorSet
)

// Has returns true if all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Token represents one token lexed from the input source code.
type Token struct {
	Kind    Kind
	Text    string
	Offset  int    // byte offset of the first character
	Content string // decoded content (string body, directive name)
	Flags   Flags
}

// HasNewline returns true for whitespace tokens spanning a line break.
func (t Token) HasNewline() bool {
	return t.Flags.Has(ContainsNewline)
}

// IsOperatorSet returns true for identifiers made of operator characters.
func (t Token) IsOperatorSet() bool {
	return t.Kind == IDENT && t.Flags.Has(OperatorSet)
}

// End returns the byte offset immediately after the token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("[%s %q @%d]", t.Kind, strings.ReplaceAll(t.Text, "\n", "⏎"), t.Offset)
}
