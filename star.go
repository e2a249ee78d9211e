// Package star is the front end of the star language. It runs the three
// stages of the pipeline: Tokenize turns source text into tokens, Resolve
// classifies them against a scope descriptor, and Parse builds the
// expression tree with a grammar read from a meta register.
//
// By default the standard grammar of the stdlib package is used:
//
//	block, err := star.Parse("x := a && b")
package star

import (
	"github.com/rs/zerolog"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/lexer"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/parser"
	"github.com/starlang/star/scope"
	"github.com/starlang/star/stdlib"
	"github.com/starlang/star/token"
)

// Option configures the pipeline.
type Option func(*options)

type options struct {
	filename      string
	logger        zerolog.Logger
	maxDepth      int
	scope         scope.Scope
	register      *meta.Register
	withoutStdlib bool
	directives    map[string]parser.DirectiveFunc
}

func collectOptions(opts ...Option) *options {
	o := &options{
		logger:     zerolog.Nop(),
		scope:      scope.Scope{},
		directives: map[string]parser.DirectiveFunc{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	opts := []parser.Option{parser.WithLogger(o.logger)}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	for name, fn := range o.directives {
		opts = append(opts, parser.WithDirective(name, fn))
	}
	return opts
}

// rootScope returns the scope descriptor seeding the scoper.
func (o *options) rootScope() scope.Scope {
	if o.withoutStdlib {
		return o.scope
	}
	return stdlib.Scope().Merge(o.scope)
}

func (o *options) grammar() *meta.Register {
	if o.register != nil {
		return o.register
	}
	reg := meta.New(nil)
	if !o.withoutStdlib {
		stdlib.Load(reg)
	}
	return reg
}

// rootRegister returns a fresh register for one parse. Directives write into
// it, never into the register supplied with WithRegister.
func (o *options) rootRegister() *meta.Register {
	return meta.New(o.grammar())
}

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithLogger sets the logger used by the pipeline. Directive execution is
// traced at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDepth sets the maximum nesting depth of the parser.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithScope adds entries to the scope descriptor. This option is additive;
// entries supplied later win.
func WithScope(s scope.Scope) Option {
	return func(o *options) {
		for name, e := range s {
			o.scope[name] = e
		}
	}
}

// WithRegister sets the register the grammar is read from. The register is
// used as a parent and is never written to. The standard grammar is not
// loaded on top of it.
func WithRegister(reg *meta.Register) Option {
	return func(o *options) {
		o.register = reg
	}
}

// WithoutStdlib opts out of the standard grammar and scope descriptor.
func WithoutStdlib() Option {
	return func(o *options) {
		o.withoutStdlib = true
	}
}

// WithDirective registers a directive handler in addition to the built-in
// ones.
func WithDirective(name string, fn parser.DirectiveFunc) Option {
	return func(o *options) {
		o.directives[name] = fn
	}
}

// Grammar returns the register Parse reads its grammar from under opts: the
// register given with WithRegister, or a new register holding the standard
// grammar unless WithoutStdlib is set.
func Grammar(opts ...Option) *meta.Register {
	return collectOptions(opts...).grammar()
}

// Directives returns the names of the directives Parse accepts under opts,
// sorted.
func Directives(opts ...Option) []string {
	return parser.New(collectOptions(opts...).parserOpts()...).Directives()
}

// Tokenize splits source into tokens. Lexical errors do not stop the scan:
// the tokens are always returned, along with all lexical errors combined
// into one.
func Tokenize(source string, opts ...Option) ([]token.Token, error) {
	o := collectOptions(opts...)
	tokens, errs := lexer.Tokenize(source)
	for _, err := range errs {
		err.File = o.filename
	}
	return tokens, lexer.Combine(errs)
}

// Resolve tokenizes source and extends every token with its position and
// scope roles.
func Resolve(source string, opts ...Option) ([]token.Extended, error) {
	o := collectOptions(opts...)
	tokens, err := Tokenize(source, opts...)
	return scope.Resolve(tokens, o.rootScope()), err
}

// Parse runs the whole pipeline over source. A source with lexical errors is
// not parsed.
func Parse(source string, opts ...Option) (*ast.Block, error) {
	o := collectOptions(opts...)
	tokens, err := Resolve(source, opts...)
	if err != nil {
		return nil, err
	}
	reg := o.rootRegister()
	block, err := parser.Parse(tokens, reg, o.parserOpts()...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("file", o.filename).
		Int("tokens", len(tokens)).
		Int("statements", len(block.Exprs)).
		Str("register", reg.String()).
		Msg("parsed")
	return block, nil
}
