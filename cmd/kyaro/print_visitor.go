package main

import (
	"bytes"
	"fmt"

	"github.com/kyarolang/kyaro/parser"
)

const indentSize = 2

// PrintVisitor renders a parsed Kyaro AST as an indented tree, merging
// the two near-duplicate debug printers of the teacher's tree into one
// walker driven by a type switch instead of a visitor interface per node
// kind, since Kyaro's AST is a closed set defined in one package.
type PrintVisitor struct {
	indent int
	buf    bytes.Buffer
}

func NewPrintVisitor() *PrintVisitor {
	return &PrintVisitor{}
}

func (p *PrintVisitor) Print(node parser.Node) string {
	p.visit(node)
	return p.buf.String()
}

func (p *PrintVisitor) writeLine(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *PrintVisitor) visit(node parser.Node) {
	switch n := node.(type) {
	case *parser.Program:
		p.writeLine("Program")
		p.indent += indentSize
		for _, s := range n.Statements {
			p.visit(s)
		}
		p.indent -= indentSize
	case *parser.Block:
		p.writeLine("Block")
		p.indent += indentSize
		for _, s := range n.Statements {
			p.visit(s)
		}
		p.indent -= indentSize
	case *parser.ExpressionStatement:
		p.writeLine("ExpressionStatement")
		p.indent += indentSize
		p.visit(n.Expr)
		p.indent -= indentSize
	case *parser.LetStatement:
		p.writeLine("Let %s =", n.Name)
		p.indent += indentSize
		p.visit(n.Value)
		p.indent -= indentSize
	case *parser.AssignStatement:
		p.writeLine("Assign %s =", n.Name)
		p.indent += indentSize
		p.visit(n.Value)
		p.indent -= indentSize
	case *parser.CompoundAssignStatement:
		p.writeLine("CompoundAssign %s %s=", n.Name, n.Operator)
		p.indent += indentSize
		p.visit(n.Value)
		p.indent -= indentSize
	case *parser.FunctionStatement:
		p.writeLine("Function %s(...)", n.Name)
		p.indent += indentSize
		p.visit(n.Body)
		p.indent -= indentSize
	case *parser.ReturnStatement:
		p.writeLine("Return")
		if n.Value != nil {
			p.indent += indentSize
			p.visit(n.Value)
			p.indent -= indentSize
		}
	case *parser.IfStatement:
		p.writeLine("If")
		p.indent += indentSize
		p.visit(n.Cond)
		p.visit(n.Then)
		for _, elif := range n.Elifs {
			p.writeLine("Elif")
			p.indent += indentSize
			p.visit(elif.Cond)
			p.visit(elif.Body)
			p.indent -= indentSize
		}
		if n.Else != nil {
			p.writeLine("Else")
			p.indent += indentSize
			p.visit(n.Else)
			p.indent -= indentSize
		}
		p.indent -= indentSize
	case *parser.WhileStatement:
		p.writeLine("While")
		p.indent += indentSize
		p.visit(n.Cond)
		p.visit(n.Body)
		p.indent -= indentSize
	case *parser.ForStatement:
		p.writeLine("For %s in", n.Var)
		p.indent += indentSize
		p.visit(n.Iterable)
		p.visit(n.Body)
		p.indent -= indentSize
	case *parser.BreakStatement:
		p.writeLine("Break")
	case *parser.ContinueStatement:
		p.writeLine("Continue")
	case *parser.IntLiteral:
		p.writeLine("Int(%d)", n.Val)
	case *parser.FloatLiteral:
		p.writeLine("Float(%g)", n.Val)
	case *parser.StringLiteral:
		p.writeLine("String(%q)", n.Val)
	case *parser.BoolLiteral:
		p.writeLine("Bool(%t)", n.Val)
	case *parser.NullLiteral:
		p.writeLine("Null")
	case *parser.Identifier:
		p.writeLine("Identifier(%s)", n.Name)
	case *parser.ListLiteral:
		p.writeLine("List")
		p.indent += indentSize
		for _, e := range n.Elements {
			p.visit(e)
		}
		p.indent -= indentSize
	case *parser.BinaryOp:
		p.writeLine("BinaryOp(%s)", n.Operator)
		p.indent += indentSize
		p.visit(n.Left)
		p.visit(n.Right)
		p.indent -= indentSize
	case *parser.UnaryOp:
		p.writeLine("UnaryOp(%s)", n.Operator)
		p.indent += indentSize
		p.visit(n.Operand)
		p.indent -= indentSize
	case *parser.Call:
		p.writeLine("Call")
		p.indent += indentSize
		p.visit(n.Callee)
		for _, a := range n.Args {
			p.visit(a)
		}
		p.indent -= indentSize
	case *parser.Index:
		p.writeLine("Index")
		p.indent += indentSize
		p.visit(n.Object)
		p.visit(n.Idx)
		p.indent -= indentSize
	case *parser.MemberAccess:
		p.writeLine("MemberAccess(.%s)", n.Member)
		p.indent += indentSize
		p.visit(n.Object)
		p.indent -= indentSize
	default:
		p.writeLine("<unknown node %T>", node)
	}
}
