package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/token"
)

func notOperator(power int) *UnaryOperator {
	return &UnaryOperator{
		Power: Power(power),
		Build: func(pos token.Position, x ast.Expr) ast.Expr {
			return &ast.Unary{OpPos: pos, Op: ast.LogicNot, X: x}
		},
	}
}

func andOperator() *BinaryOperator {
	return &BinaryOperator{
		Power:      Power(24),
		RightAssoc: true,
		Build: func(pos token.Position, l, r ast.Expr) ast.Expr {
			return &ast.Binary{X: l, OpPos: pos, Op: ast.LogicAnd, Y: r}
		},
	}
}

func TestBindingPower(t *testing.T) {
	assert.True(t, Power(17).Greater(Power(2)))
	assert.False(t, Power(2).Greater(Power(17)))
	assert.False(t, Power(2).Greater(Power(2)))
	assert.True(t, Power(2).Equal(Power(2)))

	assert.True(t, MaxPower.Greater(Power(1<<30)))
	assert.False(t, Power(1<<30).Greater(MaxPower))
	assert.False(t, MaxPower.Greater(MaxPower))
	assert.True(t, MaxPower.Equal(MaxPower))
	assert.False(t, MaxPower.Equal(Power(0)))
	assert.False(t, Power(0).Equal(MaxPower))

	assert.True(t, BindingPower{}.Equal(Power(0)))
	assert.Equal(t, "MAX", MaxPower.String())
	assert.Equal(t, "24", Power(24).String())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, DefaultConstructorArchetype, Key(DefaultConstructorArchetype).Group())
	assert.Equal(t, "!", CollectionKey(PrefixOperator, "!").Name())
	assert.Equal(t, `prefixOperator["!"]`, CollectionKey(PrefixOperator, "!").String())
	assert.Equal(t, "defaultIndexerArchetype", Key(DefaultIndexerArchetype).String())

	assert.Panics(t, func() { Key(InfixOperator) })
	assert.Panics(t, func() { CollectionKey(DefaultIndexerArchetype, "x") })
}

func TestSingletonFallback(t *testing.T) {
	root := New(nil)
	child := New(root)

	_, ok := child.Constructor()
	assert.False(t, ok)

	root.SetConstructor(&ast.Ident{Name: "tuple"})
	expr, ok := child.Constructor()
	require.True(t, ok)
	assert.Equal(t, "tuple", expr.String())

	// Writes stay local
	child.SetConstructor(&ast.Ident{Name: "record"})
	expr, _ = child.Constructor()
	assert.Equal(t, "record", expr.String())
	expr, _ = root.Constructor()
	assert.Equal(t, "tuple", expr.String())

	// An explicit nil shadows the parent
	child.WriteElement(Key(DefaultConstructorArchetype), nil)
	_, ok = child.Constructor()
	assert.False(t, ok)
}

func TestCollectionFallback(t *testing.T) {
	root := New(nil)
	root.SetPrefix("!", notOperator(14))
	root.SetPrefix("not", notOperator(14))

	child := New(root)
	grandchild := New(child)

	op, ok := grandchild.Prefix("!")
	require.True(t, ok)
	assert.True(t, op.Power.Equal(Power(14)))

	// Creating a local collection hides the parent's members
	child.SetPrefix("~", notOperator(15))
	_, ok = child.Prefix("!")
	assert.False(t, ok)
	_, ok = grandchild.Prefix("!")
	assert.False(t, ok)
	_, ok = grandchild.Prefix("~")
	assert.True(t, ok)

	// The parent is untouched
	_, ok = root.Prefix("~")
	assert.False(t, ok)
	_, ok = root.Prefix("!")
	assert.True(t, ok)

	// Other groups still fall back
	root.SetInfix("&&", andOperator())
	_, ok = grandchild.Infix("&&")
	assert.True(t, ok)
}

func TestReadCollection(t *testing.T) {
	root := New(nil)
	_, ok := root.ReadCollection(Shape)
	assert.False(t, ok)

	root.SetShape("creator", &ast.Ident{Name: "pipe"})
	child := New(root)

	c, ok := child.ReadCollection(Shape)
	require.True(t, ok)
	assert.Equal(t, []string{"creator"}, c.Names())

	_, ok = child.LocalCollection(Shape)
	assert.False(t, ok)

	child.SetShape("binding_power", &ast.BindingPower{Value: 2})
	local, ok := child.LocalCollection(Shape)
	require.True(t, ok)
	assert.Equal(t, []string{"binding_power"}, local.Names())

	expr, ok := child.ShapeValue("binding_power")
	require.True(t, ok)
	assert.Equal(t, "#BindingPower 2", expr.String())
}

func TestNames(t *testing.T) {
	r := New(nil)
	assert.Nil(t, r.Names(InfixOperator))
	r.SetInfix("||", andOperator())
	r.SetInfix("&&", andOperator())
	r.WriteElement(CollectionKey(InfixOperator, "^^"), nil)
	assert.Equal(t, []string{"&&", "||"}, New(r).Names(InfixOperator))
}

func TestWriteWrongType(t *testing.T) {
	r := New(nil)
	assert.Panics(t, func() {
		r.WriteElement(CollectionKey(InfixOperator, "!"), notOperator(1))
	})
	assert.Panics(t, func() {
		r.WriteElement(Key(DefaultIndexerArchetype), ShapeValue{})
	})
}

func TestIdentity(t *testing.T) {
	a := New(nil)
	b := New(a)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, a, b.Parent())
	assert.Nil(t, a.Parent())
	assert.True(t, strings.HasPrefix(a.String(), "Scope#"))
	assert.Len(t, a.String(), len("Scope#")+36)
}

func TestOperatorBuild(t *testing.T) {
	r := New(nil)
	r.SetInfix("&&", andOperator())
	op, ok := r.Infix("&&")
	require.True(t, ok)
	assert.True(t, op.RightAssoc)
	node := op.Build(token.NoPos, &ast.Ident{Name: "a"}, &ast.Ident{Name: "b"})
	assert.Equal(t, "(a && b)", node.String())
}
