package parser

import (
	"slices"
	"strconv"

	"github.com/starlang/star/ast"
	"github.com/starlang/star/errors"
	"github.com/starlang/star/meta"
	"github.com/starlang/star/token"
)

// Fields of the block following an operator declaring directive.
const (
	fieldBindingPower = "binding_power"
	fieldRightAssoc   = "is_right_binded"
	fieldCreator      = "creator"
)

func builtinDirectives() map[string]DirectiveFunc {
	return map[string]DirectiveFunc{
		"=":                 shapeDirective,
		"define":            defineDirective,
		"BindingPower":      bindingPowerDirective,
		"MAX_BINDING_POWER": maxBindingPowerDirective,
		"TRUE":              boolDirective(true),
		"FALSE":             boolDirective(false),
		"InfixOperator":     operatorDirective(meta.InfixOperator),
		"PrefixOperator":    operatorDirective(meta.PrefixOperator),
		"PostfixOperator":   operatorDirective(meta.PostfixOperator),
	}
}

func (p *Parser) parseDirective(reg *meta.Register) (ast.Expr, error) {
	tok := p.Peek()
	name := tok.Content
	fn, ok := p.directives[name]
	if !ok {
		err := p.Errorf(tok, ErrUndefinedDirective, errors.E1003, "undefined directive %q", name)
		err.Suggestions = errors.SuggestWithin(name, p.Directives(), errors.MaxSuggestionDistance)
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.Next()
	p.logger.Debug().
		Str("directive", name).
		Str("register", reg.String()).
		Stringer("position", tok.Position).
		Msg("executing directive")

	expr, err := fn(p, reg, tok)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		expr = &ast.Directive{HashPos: tok.Position, Name: name}
	}
	return expr, nil
}

// parseName parses the identifier operand of a directive.
func (p *Parser) parseName(reg *meta.Register, at token.Extended) (*ast.Ident, error) {
	tok := p.Peek()
	expr, err := p.ParseElement(reg)
	if err != nil {
		return nil, err
	}
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return nil, p.Errorf(tok, ErrInvalidDirective, errors.E1007,
			"#%s expects a name, found %s", at.Content, expr)
	}
	return ident, nil
}

// #= name value
func shapeDirective(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
	name, err := p.parseName(reg, at)
	if err != nil {
		return nil, err
	}
	value, err := p.ParseElement(reg)
	if err != nil {
		return nil, err
	}
	reg.SetShape(name.Name, value)
	return &ast.Directive{HashPos: at.Position, Name: at.Content, Args: []ast.Expr{name, value}}, nil
}

// #define name value
func defineDirective(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
	name, err := p.parseName(reg, at)
	if err != nil {
		return nil, err
	}
	value, err := p.ParseElement(reg)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{HashPos: at.Position, Name: at.Content, Args: []ast.Expr{name, value}}, nil
}

// #BindingPower number
func bindingPowerDirective(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
	tok := p.Peek()
	expr, err := p.ParseElement(reg)
	if err != nil {
		return nil, err
	}
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.Kind != ast.NumberLiteral {
		return nil, p.Errorf(tok, ErrInvalidDirective, errors.E1007,
			"#BindingPower expects a number, found %s", expr)
	}
	value, err := strconv.Atoi(lit.Value)
	if err != nil {
		return nil, p.Errorf(tok, ErrInvalidDirective, errors.E1007,
			"binding power %s is out of range", lit.Value)
	}
	return &ast.BindingPower{HashPos: at.Position, Value: value}, nil
}

// #MAX_BINDING_POWER
func maxBindingPowerDirective(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
	return &ast.BindingPower{HashPos: at.Position, Max: true}, nil
}

// #TRUE and #FALSE
func boolDirective(value bool) DirectiveFunc {
	return func(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
		return ast.NewBool(at.Position, value), nil
	}
}

// operatorDirective declares an operator from a block of shape values:
//
//	#InfixOperator ** {
//	    #= binding_power #BindingPower 30
//	    #= is_right_binded #TRUE
//	    #= creator pow
//	}
//
// The block is parsed in a fresh child register. The operator is written to
// the register the directive appears in, so it applies to the rest of the
// enclosing scope. Applying it produces a call of creator with the operands.
func operatorDirective(group meta.Group) DirectiveFunc {
	return func(p *Parser, reg *meta.Register, at token.Extended) (ast.Expr, error) {
		nameTok := p.Peek()
		if nameTok.Kind != token.IDENT {
			return nil, p.Errorf(nameTok, ErrInvalidDirective, errors.E1007,
				"#%s expects an operator name, found %s", at.Content, nameTok.Describe())
		}
		p.Next()

		scope := meta.New(reg)
		if _, err := p.ParseBlock(scope, true); err != nil {
			return nil, err
		}
		fields, _ := scope.LocalCollection(meta.Shape)
		decl, err := p.readOperatorFields(at, group, fields)
		if err != nil {
			return nil, err
		}

		name := nameTok.Text
		creator := decl.creator
		switch group {
		case meta.InfixOperator:
			reg.SetInfix(name, &meta.BinaryOperator{
				Power:      decl.power,
				RightAssoc: decl.rightAssoc,
				Build: func(pos token.Position, left, right ast.Expr) ast.Expr {
					return &ast.Call{Callee: creator, OpenPos: left.Pos(), Args: []ast.Expr{left, right}, Implicit: true}
				},
			})
		case meta.PrefixOperator:
			reg.SetPrefix(name, &meta.UnaryOperator{
				Power: decl.power,
				Build: func(pos token.Position, x ast.Expr) ast.Expr {
					return &ast.Call{Callee: creator, OpenPos: pos, Args: []ast.Expr{x}, Implicit: true}
				},
			})
		case meta.PostfixOperator:
			reg.SetPostfix(name, &meta.UnaryOperator{
				Power: decl.power,
				Build: func(pos token.Position, x ast.Expr) ast.Expr {
					return &ast.Call{Callee: creator, OpenPos: x.Pos(), Args: []ast.Expr{x}, Implicit: true}
				},
			})
		}
		p.logger.Debug().
			Str("operator", name).
			Stringer("group", group).
			Stringer("power", decl.power).
			Bool("right_assoc", decl.rightAssoc).
			Str("register", reg.String()).
			Msg("declared operator")

		return &ast.Directive{
			HashPos: at.Position,
			Name:    at.Content,
			Args:    []ast.Expr{&ast.Ident{NamePos: nameTok.Position, Name: name}, creator},
		}, nil
	}
}

type operatorDecl struct {
	power      meta.BindingPower
	rightAssoc bool
	creator    ast.Expr
}

// readOperatorFields validates the shape values of an operator declaration.
// binding_power and creator are required; is_right_binded is optional and
// only valid for infix operators.
func (p *Parser) readOperatorFields(at token.Extended, group meta.Group, fields meta.Collection) (operatorDecl, error) {
	allowed := []string{fieldBindingPower, fieldCreator}
	if group == meta.InfixOperator {
		allowed = append(allowed, fieldRightAssoc)
	}
	invalid := func(format string, args ...interface{}) error {
		return p.Errorf(at, ErrInvalidDirective, errors.E1007, "#%s: "+format, append([]interface{}{at.Content}, args...)...)
	}

	for _, name := range fields.Names() {
		if !slices.Contains(allowed, name) {
			err := p.Errorf(at, ErrInvalidDirective, errors.E1007, "#%s: unknown field %q", at.Content, name)
			err.Suggestions = errors.SuggestWithin(name, allowed, errors.MaxSuggestionDistance)
			return operatorDecl{}, err
		}
	}

	var decl operatorDecl
	switch v := shapeExpr(fields, fieldBindingPower).(type) {
	case nil:
		return decl, invalid("missing field %q", fieldBindingPower)
	case *ast.BindingPower:
		if v.Max {
			decl.power = meta.MaxPower
		} else {
			decl.power = meta.Power(v.Value)
		}
	case *ast.Literal:
		n, err := strconv.Atoi(v.Value)
		if v.Kind != ast.NumberLiteral || err != nil {
			return decl, invalid("%s must be a binding power, found %s", fieldBindingPower, v)
		}
		decl.power = meta.Power(n)
	default:
		return decl, invalid("%s must be a binding power, found %s", fieldBindingPower, v)
	}

	switch v := shapeExpr(fields, fieldRightAssoc).(type) {
	case nil:
	case *ast.Literal:
		if v.Kind != ast.BooleanLiteral {
			return decl, invalid("%s must be #TRUE or #FALSE, found %s", fieldRightAssoc, v)
		}
		decl.rightAssoc = v.Bool()
	default:
		return decl, invalid("%s must be #TRUE or #FALSE, found %s", fieldRightAssoc, v)
	}

	decl.creator = shapeExpr(fields, fieldCreator)
	if decl.creator == nil {
		return decl, invalid("missing field %q", fieldCreator)
	}
	return decl, nil
}

func shapeExpr(fields meta.Collection, name string) ast.Expr {
	v, ok := fields[name].(meta.ShapeValue)
	if !ok {
		return nil
	}
	return v.Expr
}
