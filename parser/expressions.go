package parser

import (
	"github.com/starlang/star/ast"
	"github.com/starlang/star/errors"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/token"
)

// ParseElement parses a single operand: a literal, a block, a bare "(...)" or
// "[...]", an identifier, a prefix operator application or a directive.
func (p *Parser) ParseElement(reg *meta.Register) (ast.Expr, error) {
	tok := p.Peek()
	switch tok.Kind {
	case token.NUMBER:
		p.Next()
		return &ast.Literal{ValuePos: tok.Position, Kind: ast.NumberLiteral, Value: tok.Text}, nil
	case token.STRING:
		p.Next()
		return &ast.Literal{ValuePos: tok.Position, Kind: ast.StringLiteral, Value: tok.Content}, nil
	case token.LBRACE:
		return p.ParseBlock(reg, false)
	case token.LPAREN:
		ctor, ok := reg.Constructor()
		if !ok {
			return nil, p.Errorf(tok, ErrNoDefaultConstructor, errors.E1004,
				"cannot use \"(\" here: no default constructor is defined in this scope")
		}
		args, err := p.parseList(reg, token.RPAREN)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: ctor, OpenPos: tok.Position, Args: args, Implicit: true}, nil
	case token.LBRACKET:
		indexer, ok := reg.Indexer()
		if !ok {
			return nil, p.Errorf(tok, ErrNoDefaultIndexer, errors.E1005,
				"cannot use \"[\" here: no default indexer is defined in this scope")
		}
		items, err := p.parseList(reg, token.RBRACKET)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Target: indexer, Lbrack: tok.Position, Items: items, Implicit: true}, nil
	case token.IDENT:
		p.Next()
		if op, ok := reg.Prefix(tok.Text); ok {
			x, err := p.ParseExpression(reg, op.Power)
			if err != nil {
				return nil, err
			}
			return op.Build(tok.Position, x), nil
		}
		return &ast.Ident{NamePos: tok.Position, Name: tok.Text}, nil
	case token.DIRECTIVE:
		return p.parseDirective(reg)
	default:
		return nil, p.unexpected(tok, "an expression")
	}
}

// ParseExpression parses an expression whose operators bind tighter than
// minPower. An operator with exactly minPower continues the expression only
// if it is right associative.
func (p *Parser) ParseExpression(reg *meta.Register, minPower meta.BindingPower) (ast.Expr, error) {
	return p.parseExpression(reg, minPower, false)
}

// parseExpression implements ParseExpression. With stopAtComma set a comma
// ends the expression; the caller collecting a comma group uses this to
// gather the group iteratively.
func (p *Parser) parseExpression(reg *meta.Register, minPower meta.BindingPower, stopAtComma bool) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.ParseElement(reg)
	if err != nil {
		return nil, err
	}
	var group *ast.Group
	for {
		tok := p.Peek()
		ok, err := p.continues(reg, tok, stopAtComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}

		if tok.Kind == token.COMMA {
			p.Next()
			right, err := p.parseExpression(reg, meta.Power(0), true)
			if err != nil {
				return nil, err
			}
			if group == nil {
				group = &ast.Group{Exprs: []ast.Expr{left}}
				left = group
			}
			if g, ok := right.(*ast.Group); ok {
				group.Exprs = append(group.Exprs, g.Exprs...)
			} else {
				group.Exprs = append(group.Exprs, right)
			}
			continue
		}

		next, err := p.parseContinuation(reg, left, tok, minPower)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return left, nil
		}
		left = next
		group = nil
	}
}

// parseContinuation extends left with the juxtaposition or operator at tok.
// It returns nil when tok does not bind tightly enough to continue.
func (p *Parser) parseContinuation(reg *meta.Register, left ast.Expr, tok token.Extended, minPower meta.BindingPower) (ast.Expr, error) {
	juxtaposed := !tok.Skipped && meta.MaxPower.Greater(minPower)
	switch tok.Kind {
	case token.LBRACE:
		if !juxtaposed {
			return nil, nil
		}
		body, err := p.ParseBlock(reg, false)
		if err != nil {
			return nil, err
		}
		return &ast.Build{Target: left, Body: body}, nil
	case token.LBRACKET:
		if !juxtaposed {
			return nil, nil
		}
		items, err := p.parseList(reg, token.RBRACKET)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Target: left, Lbrack: tok.Position, Items: items}, nil
	case token.LPAREN:
		if !juxtaposed {
			return nil, nil
		}
		args, err := p.parseList(reg, token.RPAREN)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: left, OpenPos: tok.Position, Args: args}, nil
	case token.IDENT:
		if op, ok := reg.Postfix(tok.Text); ok && op.Power.Greater(minPower) {
			p.Next()
			return op.Build(tok.Position, left), nil
		}
		if op, ok := reg.Infix(tok.Text); ok {
			if op.Power.Greater(minPower) || (op.Power.Equal(minPower) && op.RightAssoc) {
				p.Next()
				right, err := p.ParseExpression(reg, op.Power)
				if err != nil {
					return nil, err
				}
				return op.Build(tok.Position, left, right), nil
			}
		}
	}
	return nil, nil
}

// continues reports whether tok may extend the expression to its left. An
// identifier the scope marked as an operator must have an infix or postfix
// definition.
func (p *Parser) continues(reg *meta.Register, tok token.Extended, stopAtComma bool) (bool, error) {
	switch tok.Kind {
	case token.COMMA:
		return !stopAtComma, nil
	case token.LBRACE, token.LPAREN, token.LBRACKET:
		return true, nil
	case token.IDENT:
		if _, ok := reg.Infix(tok.Text); ok {
			return true, nil
		}
		if _, ok := reg.Postfix(tok.Text); ok {
			return true, nil
		}
		if tok.IsOperator() {
			err := p.Errorf(tok, ErrUnregisteredOperator, errors.E1006,
				"operator %q is declared in scope but has no infix or postfix definition", tok.Text)
			err.Suggestions = errors.SuggestWithin(tok.Text, reg.Names(meta.InfixOperator), errors.MaxSuggestionDistance)
			return false, err
		}
	}
	return false, nil
}
