package ast

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/starlang/star/token"
)

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}

// Block is an expression node holding a sequence of expressions, such as the
// body of a program or the contents of braces.
type Block struct {
	Lbrace token.Position // position of "{", or of the first expression of a program
	Exprs  []Expr
}

func (x *Block) exprNode() {}

func (x *Block) Pos() token.Position { return x.Lbrace }

func (x *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(joinExprs(x.Exprs, "; "))
	out.WriteString("}")
	return out.String()
}

// Group is an expression node holding comma separated expressions. Groups
// are always flat: a Group never directly contains another Group.
type Group struct {
	Exprs []Expr
}

func (x *Group) exprNode() {}

func (x *Group) Pos() token.Position {
	if len(x.Exprs) == 0 {
		return token.NoPos
	}
	return x.Exprs[0].Pos()
}

func (x *Group) String() string { return joinExprs(x.Exprs, ", ") }

// Call is an expression node that applies a callee to arguments.
//
// Implicit is true when the callee does not appear in the source: the
// default constructor of a bare "(...)" or the creator of an operator
// declared with a directive.
type Call struct {
	Callee   Expr
	OpenPos  token.Position // position of "(" or of the first operand
	Args     []Expr
	Implicit bool
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position {
	if x.Implicit {
		return x.OpenPos
	}
	return x.Callee.Pos()
}

func (x *Call) String() string {
	var out bytes.Buffer
	out.WriteString(x.Callee.String())
	out.WriteString("(")
	out.WriteString(joinExprs(x.Args, ", "))
	out.WriteString(")")
	return out.String()
}

// Member is an expression node that accesses a member of a parent
// expression. Parent is nil for a leading member access such as ".x".
type Member struct {
	Parent Expr
	Period token.Position
	Member Expr
}

func (x *Member) exprNode() {}

func (x *Member) Pos() token.Position {
	if x.Parent == nil {
		return x.Period
	}
	return x.Parent.Pos()
}

func (x *Member) String() string {
	if x.Parent == nil {
		return "." + x.Member.String()
	}
	return x.Parent.String() + "." + x.Member.String()
}

// Index is an expression node that indexes a target with a list of items.
// Implicit is true when the target is the default indexer of a bare "[...]".
type Index struct {
	Target   Expr
	Lbrack   token.Position
	Items    []Expr
	Implicit bool
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position {
	if x.Implicit {
		return x.Lbrack
	}
	return x.Target.Pos()
}

func (x *Index) String() string {
	var out bytes.Buffer
	out.WriteString(x.Target.String())
	out.WriteString("[")
	out.WriteString(joinExprs(x.Items, ", "))
	out.WriteString("]")
	return out.String()
}

// Build is an expression node for a target immediately followed by a braced
// body, as in "point{x := 1}".
type Build struct {
	Target Expr
	Body   *Block
}

func (x *Build) exprNode() {}

func (x *Build) Pos() token.Position { return x.Target.Pos() }

func (x *Build) String() string { return x.Target.String() + x.Body.String() }

// Directive is the result of a parse-time directive that has no dedicated
// node type.
type Directive struct {
	HashPos token.Position // position of "#"
	Name    string
	Args    []Expr
}

func (x *Directive) exprNode() {}

func (x *Directive) Pos() token.Position { return x.HashPos }

func (x *Directive) String() string {
	if len(x.Args) == 0 {
		return "#" + x.Name
	}
	return fmt.Sprintf("#%s(%s)", x.Name, joinExprs(x.Args, ", "))
}

// BindingPower is an expression node describing a binding power, produced by
// the #BindingPower and #MAX_BINDING_POWER directives.
type BindingPower struct {
	HashPos token.Position
	Value   int
	Max     bool
}

func (x *BindingPower) exprNode() {}

func (x *BindingPower) Pos() token.Position { return x.HashPos }

func (x *BindingPower) String() string {
	if x.Max {
		return "#MAX_BINDING_POWER"
	}
	return fmt.Sprintf("#BindingPower %d", x.Value)
}

// Opaque is an expression node for shapes the closed node set does not
// cover. Tag names the shape and Fields holds its operands.
type Opaque struct {
	From   token.Position
	Tag    string
	Fields map[string]Expr
}

func (x *Opaque) exprNode() {}

func (x *Opaque) Pos() token.Position { return x.From }

// FieldNames returns the field names in sorted order.
func (x *Opaque) FieldNames() []string {
	names := make([]string, 0, len(x.Fields))
	for name := range x.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (x *Opaque) String() string {
	var out bytes.Buffer
	out.WriteString(x.Tag)
	out.WriteString("{")
	for i, name := range x.FieldNames() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name)
		out.WriteString(": ")
		out.WriteString(x.Fields[name].String())
	}
	out.WriteString("}")
	return out.String()
}
