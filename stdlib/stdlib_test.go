package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/scope"
	"github.com/starlang/star/token"
)

func TestLoadArchetypes(t *testing.T) {
	reg := NewRegister()
	ctor, ok := reg.Constructor()
	require.True(t, ok)
	assert.Equal(t, ConstructorName, ctor.String())

	indexer, ok := reg.Indexer()
	require.True(t, ok)
	assert.Equal(t, IndexerName, indexer.String())
}

func TestLoadOperators(t *testing.T) {
	reg := NewRegister()
	for _, name := range []string{"!", "not", "~", "."} {
		_, ok := reg.Prefix(name)
		assert.True(t, ok, "prefix %q", name)
	}
	infixes := []string{
		"&&", "||", "^^", "==", "<=>", "&", "|", "^",
		"<<", ">>", ">>>", "<<|", "|>>",
		".", ":=", "::", "=", ":", "<:", "|>",
	}
	assert.ElementsMatch(t, infixes, reg.Names(meta.InfixOperator))

	and, _ := reg.Infix("&&")
	assert.True(t, and.RightAssoc)
	assert.Equal(t, LogicAndPower, and.Power.Value())

	not, _ := reg.Prefix("not")
	bang, _ := reg.Prefix("!")
	assert.Same(t, not, bang)
	assert.Equal(t, NotPower, not.Power.Value())
}

func TestLoadLeavesParentUntouched(t *testing.T) {
	root := meta.New(nil)
	child := meta.New(root)
	Load(child)

	_, ok := root.Infix("&&")
	assert.False(t, ok)
	_, ok = child.Infix("&&")
	assert.True(t, ok)
}

func TestBuilders(t *testing.T) {
	reg := NewRegister()
	a := &ast.Ident{Name: "a"}
	b := &ast.Ident{Name: "b"}
	pos := token.Position{Column: 2}

	tests := []struct {
		name     string
		expected string
	}{
		{"&&", "(a && b)"},
		{"<=>", "(a <=> b)"},
		{">>>", "(a >>> b)"},
		{".", "a.b"},
		{":=", "(a := b)"},
		{"::", "(a :: b)"},
		{"=", "(a = b)"},
		{":", "(a : b)"},
		{"<:", "(a <: b)"},
		{"|>", "b(a)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := reg.Infix(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, op.Build(pos, a, b).String())
		})
	}

	not, _ := reg.Prefix("!")
	unary := not.Build(pos, a).(*ast.Unary)
	assert.Equal(t, ast.LogicNot, unary.Op)
	assert.Equal(t, pos, unary.OpPos)

	member, _ := reg.Prefix(".")
	assert.Equal(t, ".a", member.Build(pos, a).String())
}

func TestScope(t *testing.T) {
	s := Scope()
	pipe, ok := s["|>"]
	require.True(t, ok)
	assert.Equal(t, scope.OperatorElement, pipe.Kind)
	assert.True(t, pipe.IgnoresLineBefore)

	define := s[":="]
	assert.False(t, define.IgnoresLineBefore)
	assert.True(t, define.IgnoresLineAfter)

	assert.Equal(t, scope.CommandElement, s["use"].Kind)

	// Every operator in the scope has a definition in the register.
	reg := NewRegister()
	for name, e := range s {
		if e.Kind != scope.OperatorElement {
			continue
		}
		_, ok := reg.Infix(name)
		assert.True(t, ok, "operator %q", name)
	}
}
