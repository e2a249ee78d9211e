package ast

import "github.com/starlang/star/token"

// Define is an expression node that defines a new name, as in "x := 1".
type Define struct {
	Location Expr
	Value    Expr
}

func (x *Define) exprNode() {}

func (x *Define) Pos() token.Position { return x.Location.Pos() }

func (x *Define) String() string {
	return "(" + x.Location.String() + " := " + x.Value.String() + ")"
}

// Set is an expression node that assigns to an existing location.
type Set struct {
	Location Expr
	Value    Expr
}

func (x *Set) exprNode() {}

func (x *Set) Pos() token.Position { return x.Location.Pos() }

func (x *Set) String() string {
	return "(" + x.Location.String() + " = " + x.Value.String() + ")"
}

// Constant is an expression node that defines an immutable name.
type Constant struct {
	Location Expr
	Value    Expr
}

func (x *Constant) exprNode() {}

func (x *Constant) Pos() token.Position { return x.Location.Pos() }

func (x *Constant) String() string {
	return "(" + x.Location.String() + " :: " + x.Value.String() + ")"
}

// Declare is an expression node that declares the type of an expression.
type Declare struct {
	What Expr
	Type Expr
}

func (x *Declare) exprNode() {}

func (x *Declare) Pos() token.Position { return x.What.Pos() }

func (x *Declare) String() string {
	return "(" + x.What.String() + " : " + x.Type.String() + ")"
}

// Extends is an expression node stating that Left extends Right.
type Extends struct {
	Left  Expr
	Right Expr
}

func (x *Extends) exprNode() {}

func (x *Extends) Pos() token.Position { return x.Left.Pos() }

func (x *Extends) String() string {
	return "(" + x.Left.String() + " <: " + x.Right.String() + ")"
}

// UnaryOp identifies a single operand operation.
type UnaryOp string

const (
	LogicNot   UnaryOp = "!"
	BitwiseNot UnaryOp = "~"
)

// Unary is an expression node for a single operand operation.
type Unary struct {
	OpPos token.Position
	Op    UnaryOp
	X     Expr
}

func (x *Unary) exprNode() {}

func (x *Unary) Pos() token.Position { return x.OpPos }

func (x *Unary) String() string {
	return "(" + string(x.Op) + x.X.String() + ")"
}

// BinaryOp identifies a two operand operation.
type BinaryOp string

const (
	Equals               BinaryOp = "=="
	Compare              BinaryOp = "<=>"
	LogicAnd             BinaryOp = "&&"
	LogicOr              BinaryOp = "||"
	LogicXor             BinaryOp = "^^"
	BitwiseAnd           BinaryOp = "&"
	BitwiseOr            BinaryOp = "|"
	BitwiseXor           BinaryOp = "^"
	ShiftLeft            BinaryOp = "<<"
	ShiftRightArithmetic BinaryOp = ">>"
	ShiftRightLogical    BinaryOp = ">>>"
	RotateLeft           BinaryOp = "<<|"
	RotateRight          BinaryOp = "|>>"
)

// Binary is an expression node for a two operand operation.
type Binary struct {
	X     Expr
	OpPos token.Position
	Op    BinaryOp
	Y     Expr
}

func (x *Binary) exprNode() {}

func (x *Binary) Pos() token.Position { return x.X.Pos() }

func (x *Binary) String() string {
	return "(" + x.X.String() + " " + string(x.Op) + " " + x.Y.String() + ")"
}
