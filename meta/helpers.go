package meta

import "github.com/starlang/star/ast"

// Prefix returns the prefix operator called name.
func (r *Register) Prefix(name string) (*UnaryOperator, bool) {
	return r.unary(CollectionKey(PrefixOperator, name))
}

// Postfix returns the postfix operator called name.
func (r *Register) Postfix(name string) (*UnaryOperator, bool) {
	return r.unary(CollectionKey(PostfixOperator, name))
}

func (r *Register) unary(slot Slot) (*UnaryOperator, bool) {
	v, ok := r.ReadElement(slot)
	if !ok {
		return nil, false
	}
	op, ok := v.(*UnaryOperator)
	return op, ok
}

// Infix returns the infix operator called name.
func (r *Register) Infix(name string) (*BinaryOperator, bool) {
	v, ok := r.ReadElement(CollectionKey(InfixOperator, name))
	if !ok {
		return nil, false
	}
	op, ok := v.(*BinaryOperator)
	return op, ok
}

// Constructor returns the default constructor archetype.
func (r *Register) Constructor() (ast.Expr, bool) {
	return r.archetype(DefaultConstructorArchetype)
}

// Indexer returns the default indexer archetype.
func (r *Register) Indexer() (ast.Expr, bool) {
	return r.archetype(DefaultIndexerArchetype)
}

func (r *Register) archetype(group Group) (ast.Expr, bool) {
	v, ok := r.ReadElement(Key(group))
	if !ok {
		return nil, false
	}
	a, ok := v.(Archetype)
	return a.Expr, ok && a.Expr != nil
}

// ShapeValue returns the shape value called name.
func (r *Register) ShapeValue(name string) (ast.Expr, bool) {
	v, ok := r.ReadElement(CollectionKey(Shape, name))
	if !ok {
		return nil, false
	}
	s, ok := v.(ShapeValue)
	return s.Expr, ok && s.Expr != nil
}

// SetPrefix declares a prefix operator in this register.
func (r *Register) SetPrefix(name string, op *UnaryOperator) {
	r.WriteElement(CollectionKey(PrefixOperator, name), op)
}

// SetPostfix declares a postfix operator in this register.
func (r *Register) SetPostfix(name string, op *UnaryOperator) {
	r.WriteElement(CollectionKey(PostfixOperator, name), op)
}

// SetInfix declares an infix operator in this register.
func (r *Register) SetInfix(name string, op *BinaryOperator) {
	r.WriteElement(CollectionKey(InfixOperator, name), op)
}

// SetConstructor installs the default constructor archetype.
func (r *Register) SetConstructor(expr ast.Expr) {
	r.WriteElement(Key(DefaultConstructorArchetype), Archetype{Expr: expr})
}

// SetIndexer installs the default indexer archetype.
func (r *Register) SetIndexer(expr ast.Expr) {
	r.WriteElement(Key(DefaultIndexerArchetype), Archetype{Expr: expr})
}

// SetShape stores a named shape value in this register.
func (r *Register) SetShape(name string, expr ast.Expr) {
	r.WriteElement(CollectionKey(Shape, name), ShapeValue{Expr: expr})
}
