// ast.go: node variants for programs, statements and expressions.
//
// Every node is built once during parsing and never mutated afterwards.
// String() is the canonical rendering: literals by value, strings
// double-quoted, every unary/binary/assignment node fully parenthesized,
// statements terminated by ';'. Re-parsing a rendering yields a
// structurally identical tree.
package zlang

import (
	"strconv"
	"strings"
)

// Node is any element of the syntax tree.
type Node interface {
	String() string
}

// Statement nodes form the top level of a program.
type Statement interface {
	Node
	statementNode()
}

// Expression nodes produce values.
type Expression interface {
	Node
	expressionNode()
}

// Program is an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

// Append adds a statement during parsing.
func (p *Program) Append(stmt Statement) {
	p.Statements = append(p.Statements, stmt)
}

func (p *Program) Len() int { return len(p.Statements) }

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "\n")
}

// ExprStatement is a bare expression terminated by ';'.
type ExprStatement struct {
	Expr Expression
}

func (s *ExprStatement) statementNode() {}
func (s *ExprStatement) String() string { return s.Expr.String() + ";" }

// Identifier is a reference to a name, like "foo".
type Identifier struct {
	Name string
}

func (e *Identifier) expressionNode() {}
func (e *Identifier) String() string  { return e.Name }

// IntLiteral is an integer literal, decimal or hexadecimal in source.
type IntLiteral struct {
	Value int64
}

func (e *IntLiteral) expressionNode() {}
func (e *IntLiteral) String() string  { return strconv.FormatInt(e.Value, 10) }

// FloatLiteral is a floating-point literal, like 0.5 or 1e-7.
type FloatLiteral struct {
	Value float64
}

func (e *FloatLiteral) expressionNode() {}
func (e *FloatLiteral) String() string  { return strconv.FormatFloat(e.Value, 'g', -1, 64) }

// BoolLiteral is "true" or "false".
type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) expressionNode() {}
func (e *BoolLiteral) String() string  { return strconv.FormatBool(e.Value) }

// StringLiteral holds the verbatim content between the quotes.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return `"` + e.Value + `"` }

// UnaryExpr applies a prefix operator to one operand: -1, +1, !true.
type UnaryExpr struct {
	Operator Token
	Right    Expression
}

func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) String() string {
	return "(" + e.Operator.Text + e.Right.String() + ")"
}

// BinaryExpr applies an infix operator to two operands: 1+2, a < b.
type BinaryExpr struct {
	Left     Expression
	Operator Token
	Right    Expression
}

func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Text + " " + e.Right.String() + ")"
}

// AssignExpr assigns to a bare identifier: a = 1, a += b. The parser
// guarantees the target is a simple identifier.
type AssignExpr struct {
	Name     string
	Operator Token
	Right    Expression
}

func (e *AssignExpr) expressionNode() {}
func (e *AssignExpr) String() string {
	return "(" + e.Name + " " + e.Operator.Text + " " + e.Right.String() + ")"
}
