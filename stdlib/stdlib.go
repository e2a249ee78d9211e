// Package stdlib provides the reference grammar of star: the default
// archetypes and operators loaded into a root register before user code is
// parsed, and the matching scope descriptor.
package stdlib

import (
	"github.com/starlang/star/ast"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/scope"
	"github.com/starlang/star/token"
)

// Binding powers of the standard operators. Higher values bind tighter.
const (
	AssignPower     = 4
	DeclarePower    = 6
	ExtendsPower    = 8
	PipePower       = 10
	NotPower        = 14
	LogicOrPower    = 22
	LogicXorPower   = 23
	LogicAndPower   = 24
	ComparePower    = 26
	BitwiseOrPower  = 28
	BitwiseXorPower = 29
	BitwiseAndPower = 30
	ShiftPower      = 31
	BitwiseNotPower = 32
	MemberPower     = 40
)

// Default archetypes used for bare "(...)" and "[...]".
const (
	ConstructorName = "tuple"
	IndexerName     = "list"
)

// NewRegister returns a root register with the standard grammar loaded.
func NewRegister() *meta.Register {
	reg := meta.New(nil)
	Load(reg)
	return reg
}

// Load writes the standard archetypes and operators into reg.
func Load(reg *meta.Register) {
	reg.SetConstructor(&ast.Ident{Name: ConstructorName})
	reg.SetIndexer(&ast.Ident{Name: IndexerName})

	not := unary(NotPower, ast.LogicNot)
	reg.SetPrefix("!", not)
	reg.SetPrefix("not", not)
	reg.SetPrefix("~", unary(BitwiseNotPower, ast.BitwiseNot))
	reg.SetPrefix(".", &meta.UnaryOperator{
		Power: meta.Power(MemberPower),
		Build: func(pos token.Position, x ast.Expr) ast.Expr {
			return &ast.Member{Period: pos, Member: x}
		},
	})

	binaries := []struct {
		name       string
		power      int
		rightAssoc bool
		op         ast.BinaryOp
	}{
		{"&&", LogicAndPower, true, ast.LogicAnd},
		{"||", LogicOrPower, true, ast.LogicOr},
		{"^^", LogicXorPower, true, ast.LogicXor},
		{"==", ComparePower, false, ast.Equals},
		{"<=>", ComparePower, false, ast.Compare},
		{"&", BitwiseAndPower, false, ast.BitwiseAnd},
		{"|", BitwiseOrPower, false, ast.BitwiseOr},
		{"^", BitwiseXorPower, false, ast.BitwiseXor},
		{"<<", ShiftPower, false, ast.ShiftLeft},
		{">>", ShiftPower, false, ast.ShiftRightArithmetic},
		{">>>", ShiftPower, false, ast.ShiftRightLogical},
		{"<<|", ShiftPower, false, ast.RotateLeft},
		{"|>>", ShiftPower, false, ast.RotateRight},
	}
	for _, b := range binaries {
		reg.SetInfix(b.name, binary(b.power, b.rightAssoc, b.op))
	}

	reg.SetInfix(".", infix(MemberPower, false, func(pos token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Member{Parent: l, Period: pos, Member: r}
	}))
	reg.SetInfix(":=", infix(AssignPower, true, func(_ token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Define{Location: l, Value: r}
	}))
	reg.SetInfix("::", infix(AssignPower, true, func(_ token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Constant{Location: l, Value: r}
	}))
	reg.SetInfix("=", infix(AssignPower, true, func(_ token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Set{Location: l, Value: r}
	}))
	reg.SetInfix(":", infix(DeclarePower, false, func(_ token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Declare{What: l, Type: r}
	}))
	reg.SetInfix("<:", infix(ExtendsPower, false, func(_ token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Extends{Left: l, Right: r}
	}))
	// a |> f is f(a)
	reg.SetInfix("|>", infix(PipePower, false, func(pos token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Call{Callee: r, OpenPos: l.Pos(), Args: []ast.Expr{l}, Implicit: true}
	}))
}

// Scope returns the scope descriptor matching the standard grammar. Member
// access and pipes may start or end a line; other binary operators continue
// onto the next line only when they end one.
func Scope() scope.Scope {
	s := scope.Scope{
		"|>":  scope.Operator(true, true),
		".":   scope.Operator(true, true),
		"use": scope.Command(),
		"ret": scope.Command(),
	}
	for _, name := range []string{":=", "::", "=", ":", "<:", "&&", "||", "^^", "==", "<=>"} {
		s[name] = scope.Operator(false, true)
	}
	return s
}

func unary(power int, op ast.UnaryOp) *meta.UnaryOperator {
	return &meta.UnaryOperator{
		Power: meta.Power(power),
		Build: func(pos token.Position, x ast.Expr) ast.Expr {
			return &ast.Unary{OpPos: pos, Op: op, X: x}
		},
	}
}

func binary(power int, rightAssoc bool, op ast.BinaryOp) *meta.BinaryOperator {
	return infix(power, rightAssoc, func(pos token.Position, l, r ast.Expr) ast.Expr {
		return &ast.Binary{X: l, OpPos: pos, Op: op, Y: r}
	})
}

func infix(power int, rightAssoc bool, build func(token.Position, ast.Expr, ast.Expr) ast.Expr) *meta.BinaryOperator {
	return &meta.BinaryOperator{Power: meta.Power(power), RightAssoc: rightAssoc, Build: build}
}
