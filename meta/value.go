package meta

import (
	"strconv"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/token"
)

// BindingPower orders operators during precedence climbing. Besides finite
// values there is MaxPower, which outranks every finite value and equals
// only itself. The zero value is Power(0).
type BindingPower struct {
	value int
	max   bool
}

// MaxPower is the binding power of juxtaposition: calls, indexing and
// builds.
var MaxPower = BindingPower{max: true}

// Power returns a finite binding power.
func Power(n int) BindingPower {
	return BindingPower{value: n}
}

// IsMax returns true for MaxPower.
func (b BindingPower) IsMax() bool { return b.max }

// Value returns the finite value. It is meaningless for MaxPower.
func (b BindingPower) Value() int { return b.value }

// Greater reports whether b binds strictly tighter than other.
func (b BindingPower) Greater(other BindingPower) bool {
	if b.max {
		return !other.max
	}
	if other.max {
		return false
	}
	return b.value > other.value
}

// Equal reports whether b and other are the same binding power.
func (b BindingPower) Equal(other BindingPower) bool {
	if b.max || other.max {
		return b.max == other.max
	}
	return b.value == other.value
}

func (b BindingPower) String() string {
	if b.max {
		return "MAX"
	}
	return strconv.Itoa(b.value)
}

// Value is an entry stored in a Register.
type Value interface {
	metaValue()
}

// UnaryOperator is a prefix or postfix operator entry.
type UnaryOperator struct {
	Power BindingPower
	// Build returns the node for the operator applied at pos to x.
	Build func(pos token.Position, x ast.Expr) ast.Expr
}

func (*UnaryOperator) metaValue() {}

// BinaryOperator is an infix operator entry. A right associative operator
// groups "a op b op c" as "a op (b op c)".
type BinaryOperator struct {
	Power      BindingPower
	RightAssoc bool
	// Build returns the node for the operator at pos applied to left and
	// right.
	Build func(pos token.Position, left, right ast.Expr) ast.Expr
}

func (*BinaryOperator) metaValue() {}

// Archetype is a default constructor or indexer expression.
type Archetype struct {
	Expr ast.Expr
}

func (Archetype) metaValue() {}

// ShapeValue is a named value in the Shape collection.
type ShapeValue struct {
	Expr ast.Expr
}

func (ShapeValue) metaValue() {}

// accepts reports whether v may be stored in group g.
func accepts(g Group, v Value) bool {
	if v == nil {
		return true
	}
	switch g {
	case PrefixOperator, PostfixOperator:
		_, ok := v.(*UnaryOperator)
		return ok
	case InfixOperator:
		_, ok := v.(*BinaryOperator)
		return ok
	case DefaultConstructorArchetype, DefaultIndexerArchetype:
		_, ok := v.(Archetype)
		return ok
	case Shape:
		_, ok := v.(ShapeValue)
		return ok
	}
	return false
}
