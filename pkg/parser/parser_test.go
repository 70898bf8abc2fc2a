package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"simplelang/interpreter-go/pkg/ast"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := Parse([]byte(source))
	require.NoError(t, err)
	return program
}

func TestParseDeclarations(t *testing.T) {
	program := mustParse(t, "number x = 1\ntext s = \"hi\"")
	require.Len(t, program.Statements, 2)

	numDecl, ok := program.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, ast.DeclNumber, numDecl.DeclaredKind)
	require.Equal(t, "x", numDecl.Name.Name)
	intLit, ok := numDecl.Value.(*ast.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(1), intLit.Value)

	textDecl, ok := program.Statements[1].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, ast.DeclText, textDecl.DeclaredKind)
	strLit, ok := textDecl.Value.(*ast.StringLiteral)
	require.True(t, ok)
	require.Equal(t, "hi", strLit.Raw)
}

func TestParsePrecedence(t *testing.T) {
	program := mustParse(t, "print 1 + 2 * 3")
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.PrintStmt)

	sum, ok := stmt.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", sum.Operator)
	left, ok := sum.Left.(*ast.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(1), left.Value)

	product, ok := sum.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", product.Operator)
}

func TestParseLeftAssociativity(t *testing.T) {
	program := mustParse(t, "print 10 - 4 - 3")
	stmt := program.Statements[0].(*ast.PrintStmt)

	outer, ok := stmt.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "-", outer.Operator)
	inner, ok := outer.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "-", inner.Operator)
	right, ok := outer.Right.(*ast.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(3), right.Value)
}

func TestParseParensOverridePrecedence(t *testing.T) {
	program := mustParse(t, "print (1 + 2) * 3")
	stmt := program.Statements[0].(*ast.PrintStmt)

	product, ok := stmt.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", product.Operator)
	paren, ok := product.Left.(*ast.ParenExpression)
	require.True(t, ok)
	sum, ok := paren.Inner.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", sum.Operator)
}

func TestParseIfElse(t *testing.T) {
	source := `
number x = 2
if (x < 3) {
    print "less"
} else {
    print "not less"
}
`
	program := mustParse(t, source)
	require.Len(t, program.Statements, 2)

	ifStmt, ok := program.Statements[1].(*ast.IfStmt)
	require.True(t, ok)
	require.Equal(t, "<", ifStmt.Cond.Operator)
	condLeft, ok := ifStmt.Cond.Left.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "x", condLeft.Name)
	require.Len(t, ifStmt.Then.Statements, 1)
	require.NotNil(t, ifStmt.Else)
	require.Len(t, ifStmt.Else.Statements, 1)
}

func TestParseIfWithoutElse(t *testing.T) {
	program := mustParse(t, `if (1 == 1) { print "yes" }`)
	ifStmt, ok := program.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Nil(t, ifStmt.Else)
}

func TestParseNestedIf(t *testing.T) {
	source := `
if (1 < 2) {
    if (3 < 4) {
        print "inner"
    }
}
`
	program := mustParse(t, source)
	outer := program.Statements[0].(*ast.IfStmt)
	require.Len(t, outer.Then.Statements, 1)
	_, ok := outer.Then.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
}

func TestParseComparisonOperators(t *testing.T) {
	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		program := mustParse(t, "if (1 "+op+" 2) { print 1 }")
		ifStmt := program.Statements[0].(*ast.IfStmt)
		require.Equal(t, op, ifStmt.Cond.Operator)
	}
}

func TestParseConditionAllowsArithmeticOperands(t *testing.T) {
	program := mustParse(t, "if (1 + 2 < 2 * 3) { print 1 }")
	ifStmt := program.Statements[0].(*ast.IfStmt)
	_, ok := ifStmt.Cond.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	_, ok = ifStmt.Cond.Right.(*ast.BinaryExpression)
	require.True(t, ok)
}

func TestParseRecordsSpans(t *testing.T) {
	program := mustParse(t, "print 1\nprint missing")
	require.Len(t, program.Statements, 2)

	first := program.Statements[0].Span()
	require.Equal(t, 1, first.Start.Line)
	require.Equal(t, 1, first.Start.Column)
	require.Equal(t, 1, first.End.Line)

	second := program.Statements[1].(*ast.PrintStmt)
	ident := second.Value.(*ast.Identifier)
	require.Equal(t, 2, ident.Span().Start.Line)
	require.Equal(t, 7, ident.Span().Start.Column)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		message string
	}{
		{"missing identifier", "number = 1", "expected identifier"},
		{"missing initializer", "number x =", "expected expression"},
		{"bare print", "print", "expected expression, found end of input"},
		{"condition without comparison", "if (1 + 2) { print 1 }", "expected comparison operator"},
		{"stray operator statement", "print 1 < 2", "expected statement"},
		{"unterminated string", `print "abc`, "unterminated string literal"},
		{"unexpected character", "print @", "unexpected character"},
		{"unclosed block", "if (1 < 2) { print 1", "expected '}', found end of input"},
		{"unclosed paren", "print (1 + 2", "expected ')'"},
		{"integer out of range", "print 99999999999999999999", "out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.source))
			require.Error(t, err)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Contains(t, parseErr.Message, tc.message)
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse([]byte("number x = 1\nnumber = 2"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Location.Line)
	require.Equal(t, 8, parseErr.Location.Column)
}

func TestParseEmptySource(t *testing.T) {
	program := mustParse(t, "")
	require.Empty(t, program.Statements)

	program = mustParse(t, "// only a comment\n")
	require.Empty(t, program.Statements)
}
