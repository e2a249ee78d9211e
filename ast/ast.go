// Package ast defines the expression tree produced by the star parser.
//
// Star has no statements: a program is a Block of expressions. The set of
// node types is closed. Grammar extensions that need a shape of their own
// build an Opaque node.
package ast

import "github.com/starlang/star/token"

// Expr represents a node in the syntax tree.
type Expr interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// String returns a human friendly representation of the node. This is
	// similar to the source code, with every operation parenthesized.
	String() string

	exprNode()
}

// Ident is an expression node that refers to a name.
type Ident struct {
	NamePos token.Position // position of the name
	Name    string
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }

func (x *Ident) String() string { return x.Name }

// LiteralKind distinguishes literal values.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota + 1
	StringLiteral
	BooleanLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "Number"
	case StringLiteral:
		return "String"
	case BooleanLiteral:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Literal is an expression node that holds a literal value. Value holds the
// digits of a number, the body of a string without quotes, or "true" and
// "false" for booleans.
type Literal struct {
	ValuePos token.Position
	Kind     LiteralKind
	Value    string
}

// NewBool returns a boolean literal.
func NewBool(pos token.Position, value bool) *Literal {
	v := "false"
	if value {
		v = "true"
	}
	return &Literal{ValuePos: pos, Kind: BooleanLiteral, Value: v}
}

func (x *Literal) exprNode() {}

func (x *Literal) Pos() token.Position { return x.ValuePos }

// Bool returns the value of a boolean literal. It returns false for every
// other kind.
func (x *Literal) Bool() bool {
	return x.Kind == BooleanLiteral && x.Value == "true"
}

func (x *Literal) String() string {
	if x.Kind == StringLiteral {
		return "'" + x.Value + "'"
	}
	return x.Value
}
