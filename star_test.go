package star

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/lexer"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/parser"
	"github.com/starlang/star/scope"
	"github.com/starlang/star/stdlib"
	"github.com/starlang/star/token"
)

func TestParse(t *testing.T) {
	block, err := Parse("x := a && b\ny := (1, 2)\nx |> print")
	require.NoError(t, err)
	assert.Equal(t, "{(x := (a && b)); (y := tuple(1, 2)); print(x)}", block.String())
}

func TestParseLineContinuation(t *testing.T) {
	block, err := Parse("items\n  |> sort\n  |> print")
	require.NoError(t, err)
	assert.Equal(t, "{print(sort(items))}", block.String())

	block, err = Parse("a |>\n b", WithScope(scope.Scope{"|>": scope.Operator(true, false)}))
	require.NoError(t, err)
	assert.Equal(t, "{b(a)}", block.String())
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("a && b")
	require.NoError(t, err)
	assert.Len(t, tokens, 5)

	tokens, err = Tokenize("a ` b", WithFilename("main.star"))
	require.Error(t, err)
	assert.Len(t, tokens, 5)

	var multi *multierror.Error
	require.True(t, errors.As(err, &multi))
	require.Len(t, multi.Errors, 1)
	var lexErr *lexer.Error
	require.True(t, errors.As(multi.Errors[0], &lexErr))
	assert.Equal(t, "main.star", lexErr.File)
}

func TestResolve(t *testing.T) {
	tokens, err := Resolve("a\n|> f")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.True(t, tokens[1].IsIrrelevant())
	assert.True(t, tokens[2].IsOperator())

	tokens, err = Resolve("a\n|> f", WithoutStdlib())
	require.NoError(t, err)
	assert.False(t, tokens[1].IsIrrelevant())
	assert.False(t, tokens[2].IsOperator())
}

func TestParseLexicalErrors(t *testing.T) {
	block, err := Parse("(a ` b")
	require.Error(t, err)
	assert.Nil(t, block)

	var multi *multierror.Error
	require.True(t, errors.As(err, &multi))
	assert.Len(t, multi.Errors, 2)
}

func TestParseError(t *testing.T) {
	_, err := Parse("a b", WithFilename("main.star"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedToken))
	assert.Contains(t, err.Error(), "main.star:1:3")
}

func TestWithoutStdlib(t *testing.T) {
	_, err := Parse("(x)", WithoutStdlib())
	assert.True(t, errors.Is(err, parser.ErrNoDefaultConstructor))

	block, err := Parse("a, b", WithoutStdlib())
	require.NoError(t, err)
	assert.Equal(t, "{a, b}", block.String())
}

func TestWithRegister(t *testing.T) {
	reg := meta.New(nil)
	reg.SetConstructor(&ast.Ident{Name: "vec"})

	block, err := Parse(`#InfixOperator ** { #= binding_power 3; #= creator pow }
(1, 2) ** 3`, WithRegister(reg))
	require.NoError(t, err)
	assert.Equal(t, "pow(vec(1, 2), 3)", block.Exprs[1].String())

	// Declarations never leak into the supplied register.
	_, ok := reg.Infix("**")
	assert.False(t, ok)
}

func TestWithScope(t *testing.T) {
	reg := stdlib.NewRegister()
	reg.SetInfix("then", &meta.BinaryOperator{
		Power: meta.Power(2),
		Build: func(pos token.Position, l, r ast.Expr) ast.Expr {
			return &ast.Call{Callee: &ast.Ident{Name: "then"}, OpenPos: pos, Args: []ast.Expr{l, r}}
		},
	})
	src := "load\nthen run"

	_, err := Parse(src, WithRegister(reg))
	require.Error(t, err)

	block, err := Parse(src, WithRegister(reg), WithScope(scope.Scope{"then": scope.Operator(true, false)}))
	require.NoError(t, err)
	assert.Equal(t, "{then(load, run)}", block.String())
}

func TestGrammarAndDirectives(t *testing.T) {
	_, ok := Grammar().Infix("&&")
	assert.True(t, ok)
	_, ok = Grammar(WithoutStdlib()).Infix("&&")
	assert.False(t, ok)

	reg := meta.New(nil)
	assert.Same(t, reg, Grammar(WithRegister(reg)))

	noop := func(p *parser.Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
		return nil, nil
	}
	assert.NotContains(t, Directives(), "noop")
	names := Directives(WithDirective("noop", noop))
	assert.Contains(t, names, "noop")
	assert.Contains(t, names, "InfixOperator")
}

func TestWithMaxDepth(t *testing.T) {
	_, err := Parse("((((((x))))))", WithMaxDepth(3))
	assert.True(t, errors.Is(err, parser.ErrMaxDepth))
}

func TestWithDirective(t *testing.T) {
	version := WithDirective("version", func(p *parser.Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
		return &ast.Literal{ValuePos: at.Position, Kind: ast.StringLiteral, Value: "1.0"}, nil
	})
	block, err := Parse("v := #version", version)
	require.NoError(t, err)
	assert.Equal(t, "{(v := '1.0')}", block.String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := Parse("#TRUE", WithLogger(logger), WithFilename("main.star"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"parsed"`)
	assert.Contains(t, buf.String(), `"file":"main.star"`)
	assert.Contains(t, buf.String(), "executing directive")
}
