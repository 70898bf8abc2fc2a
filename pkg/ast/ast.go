// Package ast defines the SimpleLang abstract syntax tree consumed by the
// interpreter and produced by pkg/parser. The node set is closed: statements
// are VarDecl, PrintStmt, IfStmt, and Block; expressions are IntLiteral,
// StringLiteral, Identifier, ParenExpression, and BinaryExpression. Condition
// is its own node because comparisons are only legal as an if-statement head,
// never as a general expression.
package ast

// Position is a 1-based line/column pair in the source unit.
type Position struct {
	Line   int
	Column int
}

// Span covers the source range of a node.
type Span struct {
	Start Position
	End   Position
}

// Node is the shared behaviour for all AST nodes.
type Node interface {
	NodeType() string
	Span() Span
}

// Statement is implemented by the executable node kinds.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by the value-producing node kinds.
type Expression interface {
	Node
	expressionNode()
}

type baseNode struct {
	span Span
}

func (n *baseNode) Span() Span     { return n.span }
func (n *baseNode) setSpan(s Span) { n.span = s }

// DeclaredKind is the type keyword used in a variable declaration. It is
// validated once against the declaration's evaluated expression and is not a
// persistent constraint on the variable.
type DeclaredKind int

const (
	DeclNumber DeclaredKind = iota
	DeclText
)

func (k DeclaredKind) String() string {
	switch k {
	case DeclNumber:
		return "number"
	case DeclText:
		return "text"
	default:
		return "unknown"
	}
}

// Program is the root node: the ordered top-level statements of one source unit.
type Program struct {
	baseNode
	Statements []Statement
}

func (*Program) NodeType() string { return "Program" }

// VarDecl declares (or re-declares) a variable with a type keyword.
type VarDecl struct {
	baseNode
	DeclaredKind DeclaredKind
	Name         *Identifier
	Value        Expression
}

func (*VarDecl) NodeType() string { return "VarDecl" }
func (*VarDecl) statementNode()   {}

// PrintStmt emits the value of its expression on the output channel.
type PrintStmt struct {
	baseNode
	Value Expression
}

func (*PrintStmt) NodeType() string { return "PrintStmt" }
func (*PrintStmt) statementNode()   {}

// IfStmt chooses between two blocks based on a numeric comparison. Else is
// nil when the source has no else clause.
type IfStmt struct {
	baseNode
	Cond *Condition
	Then *Block
	Else *Block
}

func (*IfStmt) NodeType() string { return "IfStmt" }
func (*IfStmt) statementNode()   {}

// Block is a braced statement sequence. Blocks introduce no scope: variables
// declared inside remain visible for the rest of the run.
type Block struct {
	baseNode
	Statements []Statement
}

func (*Block) NodeType() string { return "Block" }
func (*Block) statementNode()   {}

// Condition is the comparison head of an if statement. The operator is one of
// == != < <= > >=.
type Condition struct {
	baseNode
	Left     Expression
	Operator string
	Right    Expression
}

func (*Condition) NodeType() string { return "Condition" }

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	baseNode
	Value int64
}

func (*IntLiteral) NodeType() string { return "IntLiteral" }
func (*IntLiteral) expressionNode()  {}

// StringLiteral carries the raw text between the delimiting quotes. Escape
// sequences are decoded when the literal is evaluated, not at parse time.
type StringLiteral struct {
	baseNode
	Raw string
}

func (*StringLiteral) NodeType() string { return "StringLiteral" }
func (*StringLiteral) expressionNode()  {}

// Identifier is a variable reference (and the name slot of a VarDecl).
type Identifier struct {
	baseNode
	Name string
}

func (*Identifier) NodeType() string { return "Identifier" }
func (*Identifier) expressionNode()  {}

// ParenExpression is a parenthesised expression. It exists only so the
// grammar can override precedence; evaluation is a pure pass-through.
type ParenExpression struct {
	baseNode
	Inner Expression
}

func (*ParenExpression) NodeType() string { return "ParenExpression" }
func (*ParenExpression) expressionNode()  {}

// BinaryExpression applies one of + - * / to two operands.
type BinaryExpression struct {
	baseNode
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) NodeType() string { return "BinaryExpression" }
func (*BinaryExpression) expressionNode()  {}
