package token

import "fmt"

// Position points to a particular location in an input string.
type Position struct {
	Char   int // byte offset within the input
	Line   int // 0-indexed line number
	Column int // 0-indexed column number
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// AdvanceText returns the position immediately after text, which starts at p.
// Columns count runes and restart after each line feed.
func (p Position) AdvanceText(text string) Position {
	p.Char += len(text)
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 0
			continue
		}
		p.Column++
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position.
var NoPos = Position{}

// Roles holds the scope-resolution flags of an extended token. A token may
// carry zero or more roles.
type Roles uint8

const (
	// Irrelevant marks whitespace the parser skips, including line breaks
	// that would otherwise end a statement.
	Irrelevant Roles = 1 << iota
	// Operator marks an identifier declared as an operator in scope.
	Operator
	// Command marks an identifier declared as a command in scope.
	Command
)

// Has returns true if all bits of r are set.
func (rs Roles) Has(r Roles) bool {
	return rs&r == r
}

// Extended is a token enriched with its source position and scope roles.
// It is the unit the parser consumes.
type Extended struct {
	Token
	// Skipped is true when whitespace immediately precedes the token.
	Skipped  bool
	Position Position
	Roles    Roles
}

// IsIrrelevant returns true if the parser should skip this token entirely.
// Whitespace without a line break is always irrelevant.
func (t Extended) IsIrrelevant() bool {
	if t.Kind == SPACE && !t.HasNewline() {
		return true
	}
	return t.Roles.Has(Irrelevant)
}

// IsOperator returns true for identifiers resolved as operators.
func (t Extended) IsOperator() bool {
	return t.Kind == IDENT && t.Roles.Has(Operator)
}

// IsCommand returns true for identifiers resolved as commands.
func (t Extended) IsCommand() bool {
	return t.Kind == IDENT && t.Roles.Has(Command)
}

// IsSeparator returns true for tokens that end a statement: a semicolon or a
// relevant line break.
func (t Extended) IsSeparator() bool {
	if t.Kind == SEMICOLON {
		return true
	}
	return t.Kind == SPACE && t.HasNewline() && !t.Roles.Has(Irrelevant)
}

// Describe returns a short human readable description used in messages.
func (t Extended) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case SPACE:
		if t.HasNewline() {
			return "newline"
		}
		return "whitespace"
	case IDENT:
		if t.IsOperator() {
			return fmt.Sprintf("operator %q", t.Text)
		}
		return fmt.Sprintf("identifier %q", t.Text)
	case DIRECTIVE:
		return fmt.Sprintf("directive %q", t.Text)
	case STRING, NUMBER:
		return fmt.Sprintf("%s %s", kindDescription(t.Kind), t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

func kindDescription(k Kind) string {
	switch k {
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	default:
		return string(k)
	}
}
