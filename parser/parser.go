// Package parser builds the expression tree of a star program from scope
// resolved tokens.
//
// The grammar is not fixed. Operators and default archetypes are read from a
// meta.Register, and directives met along the way may declare new operators
// that apply to the rest of the enclosing scope. Parsing stops at the first
// error; there is no recovery.
package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/errors"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/token"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// DirectiveFunc handles a "#name" directive. The cursor is positioned right
// after the directive token at. The handler may consume further tokens and
// write into reg. A nil expression is replaced by an ast.Directive node.
type DirectiveFunc func(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error)

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger used to trace directive execution.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithDirective adds a directive handler, replacing any handler already
// registered under name.
func WithDirective(name string, fn DirectiveFunc) Option {
	return func(p *Parser) {
		p.directives[name] = fn
	}
}

// Parser turns extended tokens into an AST. A Parser resets its cursor on
// every call to Parse; it may be reused sequentially but not concurrently.
type Parser struct {
	tokens []token.Extended

	// index of the current token
	pos int

	// synthetic token describing the end of input
	eof token.Extended

	// source text, rebuilt from the tokens when an error needs it
	source []string

	directives map[string]DirectiveFunc

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	logger   zerolog.Logger
	filename string
}

// New returns a Parser with the built-in directives installed.
func New(options ...Option) *Parser {
	p := &Parser{
		directives: builtinDirectives(),
		maxDepth:   DefaultMaxDepth,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse is shorthand for New(options...).Parse(tokens, root).
func Parse(tokens []token.Extended, root *meta.Register, options ...Option) (*ast.Block, error) {
	return New(options...).Parse(tokens, root)
}

// Parse parses the whole token stream into a Block. Grammar entries are read
// from root, which directives may extend. A nil root is treated as an empty
// register.
func (p *Parser) Parse(tokens []token.Extended, root *meta.Register) (*ast.Block, error) {
	if root == nil {
		root = meta.New(nil)
	}
	p.tokens = tokens
	p.pos = 0
	p.depth = 0
	p.source = nil
	p.eof = endOfInput(tokens)

	start := p.Peek().Position
	exprs, err := p.parseInner(root, token.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Lbrace: start, Exprs: exprs}, nil
}

func endOfInput(tokens []token.Extended) token.Extended {
	eof := token.Extended{Token: token.Token{Kind: token.EOF}}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Offset = last.End()
		eof.Position = last.Position.AdvanceText(last.Text)
	}
	return eof
}

// Directives returns the names of the registered directives, sorted.
func (p *Parser) Directives() []string {
	names := make([]string, 0, len(p.directives))
	for name := range p.directives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Peek returns the current token, skipping irrelevant tokens. At the end of
// the stream it returns a token of kind EOF.
func (p *Parser) Peek() token.Extended {
	for p.pos < len(p.tokens) && p.tokens[p.pos].IsIrrelevant() {
		p.pos++
	}
	if p.pos >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.pos]
}

// Next consumes the current token and returns it.
func (p *Parser) Next() token.Extended {
	tok := p.Peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// Errorf builds a parse error located at tok. The cause should be one of the
// sentinel errors of this package.
func (p *Parser) Errorf(tok token.Extended, cause error, code errors.ErrorCode, format string, args ...interface{}) *Error {
	return NewError(ErrorOpts{
		Code:       code,
		Cause:      cause,
		Message:    fmt.Sprintf(format, args...),
		Token:      tok,
		SourceLine: p.sourceLine(tok.Position.Line),
		File:       p.filename,
	})
}

func (p *Parser) sourceLine(line int) string {
	if p.source == nil {
		var b strings.Builder
		for _, tok := range p.tokens {
			b.WriteString(tok.Text)
		}
		p.source = strings.Split(b.String(), "\n")
	}
	if line < 0 || line >= len(p.source) {
		return ""
	}
	return strings.TrimSuffix(p.source[line], "\r")
}

func (p *Parser) unexpected(tok token.Extended, expected string) *Error {
	if tok.Kind == token.EOF {
		return p.Errorf(tok, ErrUnexpectedEOF, errors.E1002, "unexpected end of input, expected %s", expected)
	}
	return p.Errorf(tok, ErrUnexpectedToken, errors.E1001, "unexpected %s, expected %s", tok.Describe(), expected)
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.Errorf(p.Peek(), ErrMaxDepth, errors.E1009,
			"maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseInner parses statements until the terminator, which is left for the
// caller. Use token.EOF to parse up to the end of input.
func (p *Parser) parseInner(reg *meta.Register, terminator token.Kind) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		tok := p.Peek()
		if tok.IsSeparator() {
			p.Next()
			continue
		}
		if tok.Kind == terminator {
			return exprs, nil
		}
		expr, err := p.ParseExpression(reg, meta.Power(0))
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		tok = p.Peek()
		switch {
		case tok.IsSeparator():
			p.Next()
		case tok.Kind == terminator:
			return exprs, nil
		default:
			return nil, p.unexpected(tok, "a line break, \";\" or "+describeKind(terminator))
		}
	}
}

func describeKind(k token.Kind) string {
	if k == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(k))
}

// ParseBlock parses a braced block starting at the current "{". Unless
// transparent is set, the block gets its own child register.
func (p *Parser) ParseBlock(reg *meta.Register, transparent bool) (*ast.Block, error) {
	open := p.Peek()
	if open.Kind != token.LBRACE {
		return nil, p.unexpected(open, `"{"`)
	}
	p.Next()
	inner := reg
	if !transparent {
		inner = meta.New(reg)
	}
	exprs, err := p.parseInner(inner, token.RBRACE)
	if err != nil {
		return nil, err
	}
	p.Next()
	return &ast.Block{Lbrace: open.Position, Exprs: exprs}, nil
}

// parseList parses the contents of "(...)" or "[...]" in a child register.
// Comma groups are spread so that "f(a, b)" has two arguments.
func (p *Parser) parseList(reg *meta.Register, closer token.Kind) ([]ast.Expr, error) {
	p.Next()
	exprs, err := p.parseInner(meta.New(reg), closer)
	if err != nil {
		return nil, err
	}
	p.Next()
	items := make([]ast.Expr, 0, len(exprs))
	for _, e := range exprs {
		if g, ok := e.(*ast.Group); ok {
			items = append(items, g.Exprs...)
			continue
		}
		items = append(items, e)
	}
	return items, nil
}
