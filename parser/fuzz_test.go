package parser

import (
	"testing"
	"unicode/utf8"

	"github.com/starlang/star/lexer"
	"github.com/starlang/star/scope"
	"github.com/starlang/star/stdlib"
)

// FuzzParse tests that the parser doesn't panic on arbitrary input. It
// should either return a block or an error, never crash.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"x",
		"a && b || c",
		"!a; not b",
		"f(a, b)[c]{d}",
		"(1, 2)",
		"[1, 2, 3]",
		"a |> f |> g",
		"x : int := 5",
		"a\n|> f",
		"{\n  a\n  b\n}",
		"#TRUE",
		"#= answer 42",
		powDecl + "a ** b",
		"#InfixOperator ** { #= creator pow }",
		"#BindingPower",
		"#nope",
		"a b",
		"{ a",
		"f(a,",
		"((((((((((x))))))))))",
		"a, b, c, d",
		",",
		";;",
		"'unterminated",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}
		tokens, _ := lexer.Tokenize(input)
		block, err := Parse(scope.Resolve(tokens, stdlib.Scope()), stdlib.NewRegister(), WithMaxDepth(100))
		if err == nil && block == nil {
			t.Fatalf("nil block without error for %q", input)
		}
		if err != nil && block != nil {
			t.Fatalf("block and error both returned for %q", input)
		}
		if block != nil {
			_ = block.String()
		}
	})
}
