package ast

// Terse constructors used by tests and by hand-assembled programs. The parser
// builds nodes directly and attaches spans itself.

// Prog wraps statements into a Program.
func Prog(stmts ...Statement) *Program {
	return &Program{Statements: stmts}
}

// Decl builds a variable declaration statement.
func Decl(kind DeclaredKind, name string, value Expression) *VarDecl {
	return &VarDecl{DeclaredKind: kind, Name: ID(name), Value: value}
}

// Print builds a print statement.
func Print(value Expression) *PrintStmt {
	return &PrintStmt{Value: value}
}

// If builds an if statement; pass a nil else block when absent.
func If(cond *Condition, then *Block, elseBlock *Block) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: elseBlock}
}

// Blk wraps statements into a Block.
func Blk(stmts ...Statement) *Block {
	return &Block{Statements: stmts}
}

// Cond builds an if-statement comparison head.
func Cond(left Expression, op string, right Expression) *Condition {
	return &Condition{Left: left, Operator: op, Right: right}
}

// Int builds an integer literal.
func Int(value int64) *IntLiteral {
	return &IntLiteral{Value: value}
}

// Str builds a string literal from raw (still escaped) text.
func Str(raw string) *StringLiteral {
	return &StringLiteral{Raw: raw}
}

// ID builds an identifier.
func ID(name string) *Identifier {
	return &Identifier{Name: name}
}

// Bin builds a binary arithmetic expression.
func Bin(op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Operator: op, Left: left, Right: right}
}

// Paren wraps an expression in parentheses.
func Paren(inner Expression) *ParenExpression {
	return &ParenExpression{Inner: inner}
}
