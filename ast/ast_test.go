package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starlang/star/token"
)

func ident(name string, col int) *Ident {
	return &Ident{NamePos: token.Position{Char: col, Column: col}, Name: name}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"ident", ident("x", 0), "x"},
		{"number", &Literal{Kind: NumberLiteral, Value: "42"}, "42"},
		{"string", &Literal{Kind: StringLiteral, Value: "hi"}, "'hi'"},
		{"bool", NewBool(token.NoPos, false), "false"},
		{"block", &Block{Exprs: []Expr{ident("a", 1), ident("b", 4)}}, "{a; b}"},
		{"group", &Group{Exprs: []Expr{ident("a", 0), ident("b", 3)}}, "a, b"},
		{
			"index of call",
			&Index{
				Target: &Call{Callee: ident("f", 0), Args: []Expr{ident("x", 2)}},
				Items:  []Expr{ident("y", 5)},
			},
			"f(x)[y]",
		},
		{"member", &Member{Parent: ident("a", 0), Member: ident("b", 2)}, "a.b"},
		{"leading member", &Member{Member: ident("b", 1)}, ".b"},
		{
			"build",
			&Build{Target: ident("point", 0), Body: &Block{Exprs: []Expr{ident("x", 6)}}},
			"point{x}",
		},
		{"directive", &Directive{Name: "define", Args: []Expr{ident("a", 8), ident("b", 10)}}, "#define(a, b)"},
		{"bare directive", &Directive{Name: "="}, "#="},
		{"binding power", &BindingPower{Value: 17}, "#BindingPower 17"},
		{"max binding power", &BindingPower{Max: true}, "#MAX_BINDING_POWER"},
		{"define", &Define{Location: ident("x", 0), Value: &Literal{Kind: NumberLiteral, Value: "1"}}, "(x := 1)"},
		{"set", &Set{Location: ident("x", 0), Value: ident("y", 4)}, "(x = y)"},
		{"constant", &Constant{Location: ident("x", 0), Value: ident("y", 5)}, "(x :: y)"},
		{"declare", &Declare{What: ident("x", 0), Type: ident("int", 4)}, "(x : int)"},
		{"extends", &Extends{Left: ident("A", 0), Right: ident("B", 5)}, "(A <: B)"},
		{"not", &Unary{Op: LogicNot, X: ident("a", 1)}, "(!a)"},
		{
			"right nested and",
			&Binary{X: ident("a", 0), Op: LogicAnd, Y: &Binary{X: ident("b", 5), Op: LogicAnd, Y: ident("c", 10)}},
			"(a && (b && c))",
		},
		{
			"opaque",
			&Opaque{Tag: "Range", Fields: map[string]Expr{"to": ident("b", 3), "from": ident("a", 0)}},
			"Range{from: a, to: b}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestPositions(t *testing.T) {
	x := ident("x", 3)
	open := token.Position{Char: 7, Column: 7}

	assert.Equal(t, x.Pos(), (&Binary{X: x, Op: Equals, Y: ident("y", 8)}).Pos())
	assert.Equal(t, x.Pos(), (&Call{Callee: x, OpenPos: open}).Pos())
	assert.Equal(t, open, (&Call{Callee: x, OpenPos: open, Implicit: true}).Pos())
	assert.Equal(t, open, (&Index{Target: x, Lbrack: open, Implicit: true}).Pos())
	assert.Equal(t, open, (&Member{Period: open, Member: x}).Pos())
	assert.Equal(t, token.NoPos, (&Group{}).Pos())
}

func TestLiteralBool(t *testing.T) {
	assert.True(t, NewBool(token.NoPos, true).Bool())
	assert.False(t, NewBool(token.NoPos, false).Bool())
	assert.False(t, (&Literal{Kind: StringLiteral, Value: "true"}).Bool())
	assert.Equal(t, "Boolean", BooleanLiteral.String())
}
