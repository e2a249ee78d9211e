package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Expr) (w Visitor)
}

// Children returns the direct, non-nil children of node in source order.
func Children(node Expr) []Expr {
	var children []Expr
	add := func(exprs ...Expr) {
		for _, e := range exprs {
			if e != nil {
				children = append(children, e)
			}
		}
	}
	switch n := node.(type) {
	case *Ident, *Literal, *BindingPower:
		// Leaves
	case *Block:
		add(n.Exprs...)
	case *Group:
		add(n.Exprs...)
	case *Call:
		add(n.Callee)
		add(n.Args...)
	case *Member:
		add(n.Parent, n.Member)
	case *Index:
		add(n.Target)
		add(n.Items...)
	case *Build:
		add(n.Target)
		if n.Body != nil {
			add(n.Body)
		}
	case *Directive:
		add(n.Args...)
	case *Opaque:
		for _, name := range n.FieldNames() {
			add(n.Fields[name])
		}
	case *Define:
		add(n.Location, n.Value)
	case *Set:
		add(n.Location, n.Value)
	case *Constant:
		add(n.Location, n.Value)
	case *Declare:
		add(n.What, n.Type)
	case *Extends:
		add(n.Left, n.Right)
	case *Unary:
		add(n.X)
	case *Binary:
		add(n.X, n.Y)
	}
	return children
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Expr) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Expr, f func(Expr) bool) {
	Walk(inspector(f), node)
}

type inspector func(Expr) bool

func (f inspector) Visit(node Expr) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Expr) iter.Seq[Expr] {
	return func(yield func(Expr) bool) {
		var visit func(Expr) bool
		visit = func(n Expr) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
