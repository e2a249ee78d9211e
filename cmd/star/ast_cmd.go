package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/starlang/star"
	"github.com/starlang/star/ast"
)

var (
	nodeStyle    = color.New(color.FgBlue, color.Bold).SprintFunc()
	literalStyle = color.New(color.FgGreen).SprintFunc()
	fieldStyle   = color.New(color.FgYellow).SprintFunc()
)

func newAstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [file]",
		Short: "Parse code and print the expression tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			opts, err := pipelineOptions(src.name)
			if err != nil {
				return err
			}
			asJSON, err := isJSONOutput()
			if err != nil {
				return err
			}
			program, err := star.Parse(src.code, opts...)
			if err != nil {
				return reportErrors(cmd, err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, nodeToJSON(program))
			}
			printAST(out, program)
			return nil
		},
	}
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Expr) *ASTNode {
	if node == nil {
		return nil
	}
	result := &ASTNode{Type: typeName(node), Value: nodeValue(node)}
	if o, ok := node.(*ast.Opaque); ok {
		for _, name := range o.FieldNames() {
			result.Children = append(result.Children, &ASTNode{
				Type:     "Field",
				Value:    name,
				Children: []*ASTNode{nodeToJSON(o.Fields[name])},
			})
		}
		return result
	}
	for _, child := range ast.Children(node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

func typeName(node ast.Expr) string {
	return reflect.TypeOf(node).Elem().Name()
}

// nodeValue returns the scalar detail shown next to a node's type, or nil
// when the node has none.
func nodeValue(node ast.Expr) any {
	switch n := node.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.Literal:
		return n.Value
	case *ast.Unary:
		return string(n.Op)
	case *ast.Binary:
		return string(n.Op)
	case *ast.Directive:
		return "#" + n.Name
	case *ast.BindingPower:
		if n.Max {
			return "max"
		}
		return n.Value
	case *ast.Opaque:
		return n.Tag
	case *ast.Call:
		if n.Implicit {
			return "implicit"
		}
	case *ast.Index:
		if n.Implicit {
			return "implicit"
		}
	}
	return nil
}

func printAST(w io.Writer, program *ast.Block) {
	fmt.Fprintln(w, nodeStyle("Program"))
	for i, expr := range program.Exprs {
		printNode(w, expr, "", i == len(program.Exprs)-1)
	}
}

func printNode(w io.Writer, node ast.Expr, indent string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}

	line := mutedStyle(indent+connector) + nodeStyle(typeName(node))
	switch v := nodeValue(node).(type) {
	case nil:
	case string:
		if lit, ok := node.(*ast.Literal); ok {
			line += " " + literalStyle(lit.String()) + " " + mutedStyle(lit.Kind)
		} else {
			line += " " + literalStyle(fmt.Sprintf("%q", v))
		}
	default:
		line += " " + literalStyle(v)
	}
	fmt.Fprintln(w, line)

	if o, ok := node.(*ast.Opaque); ok {
		names := o.FieldNames()
		for i, name := range names {
			last := i == len(names)-1
			fieldConnector, fieldIndent := "├─ ", childIndent+"│  "
			if last {
				fieldConnector, fieldIndent = "└─ ", childIndent+"   "
			}
			fmt.Fprintln(w, mutedStyle(childIndent+fieldConnector)+fieldStyle(name))
			printNode(w, o.Fields[name], fieldIndent, true)
		}
		return
	}

	children := ast.Children(node)
	for i, child := range children {
		printNode(w, child, childIndent, i == len(children)-1)
	}
}
