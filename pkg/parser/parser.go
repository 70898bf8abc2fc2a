// Package parser turns SimpleLang source text into the AST consumed by the
// interpreter. The grammar is small: typed variable declarations, print
// statements, and if/else over a numeric comparison, with the usual
// arithmetic precedence inside expressions. The parser stops at the first
// lexical or syntactic fault and reports it with a source location.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"simplelang/interpreter-go/pkg/ast"
)

// Parse reads one source unit and returns its Program AST.
func Parse(source []byte) (*ast.Program, error) {
	return parseReader(bytes.NewReader(source))
}

func parseReader(r io.Reader) (*ast.Program, error) {
	p := &parser{lex: newLexer(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseProgram()
}

type parser struct {
	lex  *lexer
	tok  token // current lookahead token
	prev token // last consumed token, used for span ends
}

func (p *parser) advance() error {
	next, err := p.lex.next()
	if err != nil {
		return err
	}
	p.prev = p.tok
	p.tok = next
	return nil
}

// expect consumes the current token if it has the wanted type, failing with
// a located syntax error otherwise.
func (p *parser) expect(want tokenType) (token, error) {
	if p.tok.Type != want {
		return token{}, syntaxErrorAt(p.tok, "expected %s, found %s", want, describeToken(p.tok))
	}
	consumed := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return consumed, nil
}

func describeToken(tok token) string {
	switch tok.Type {
	case tokEOF:
		return "end of input"
	case tokIdent, tokInt:
		return fmt.Sprintf("%s %q", tok.Type, tok.Lit)
	case tokString:
		return "string literal"
	default:
		return tok.Type.String()
	}
}

func spanBetween(start, end token) ast.Span {
	return ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Col},
		End:   ast.Position{Line: end.EndLine, Column: end.EndCol},
	}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	first := p.tok
	var statements []ast.Statement
	for p.tok.Type != tokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	program := &ast.Program{Statements: statements}
	ast.SetSpan(program, spanBetween(first, p.prev))
	return program, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.tok.Type {
	case tokNumberKw, tokTextKw:
		return p.parseVarDecl()
	case tokPrintKw:
		return p.parsePrintStmt()
	case tokIfKw:
		return p.parseIfStmt()
	default:
		return nil, syntaxErrorAt(p.tok, "expected statement, found %s", describeToken(p.tok))
	}
}

func (p *parser) parseVarDecl() (*ast.VarDecl, error) {
	kwTok := p.tok
	kind := ast.DeclNumber
	if kwTok.Type == tokTextKw {
		kind = ast.DeclText
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	name := ast.ID(nameTok.Lit)
	ast.SetSpan(name, spanBetween(nameTok, nameTok))
	decl := &ast.VarDecl{DeclaredKind: kind, Name: name, Value: value}
	ast.SetSpan(decl, spanBetween(kwTok, p.prev))
	return decl, nil
}

func (p *parser) parsePrintStmt() (*ast.PrintStmt, error) {
	kwTok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.PrintStmt{Value: value}
	ast.SetSpan(stmt, spanBetween(kwTok, p.prev))
	return stmt, nil
}

func (p *parser) parseIfStmt() (*ast.IfStmt, error) {
	kwTok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.tok.Type == tokElseKw {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}
	ast.SetSpan(stmt, spanBetween(kwTok, p.prev))
	return stmt, nil
}

func (p *parser) parseCondition() (*ast.Condition, error) {
	startTok := p.tok
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var op string
	switch p.tok.Type {
	case tokEq, tokNotEq, tokLess, tokLessEq, tokGreater, tokGreaterEq:
		op = p.tok.Lit
	default:
		return nil, syntaxErrorAt(p.tok, "expected comparison operator, found %s", describeToken(p.tok))
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	cond := &ast.Condition{Left: left, Operator: op, Right: right}
	ast.SetSpan(cond, spanBetween(startTok, p.prev))
	return cond, nil
}

func (p *parser) parseBlock() (*ast.Block, error) {
	openTok, err := p.expect(tokLBrace)
	if err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for p.tok.Type != tokRBrace {
		if p.tok.Type == tokEOF {
			return nil, syntaxErrorAt(p.tok, "expected '}', found end of input")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	closeTok, err := p.expect(tokRBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Statements: statements}
	ast.SetSpan(block, spanBetween(openTok, closeTok))
	return block, nil
}

// parseExpression handles + and - over terms.
func (p *parser) parseExpression() (ast.Expression, error) {
	startTok := p.tok
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == tokPlus || p.tok.Type == tokMinus {
		op := p.tok.Lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bin := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
		ast.SetSpan(bin, spanBetween(startTok, p.prev))
		left = bin
	}
	return left, nil
}

// parseTerm handles * and / over factors.
func (p *parser) parseTerm() (ast.Expression, error) {
	startTok := p.tok
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == tokStar || p.tok.Type == tokSlash {
		op := p.tok.Lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		bin := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
		ast.SetSpan(bin, spanBetween(startTok, p.prev))
		left = bin
	}
	return left, nil
}

func (p *parser) parseFactor() (ast.Expression, error) {
	switch p.tok.Type {
	case tokInt:
		intTok := p.tok
		value, err := strconv.ParseInt(intTok.Lit, 10, 64)
		if err != nil {
			return nil, syntaxErrorAt(intTok, "integer literal %q out of range", intTok.Lit)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		lit := &ast.IntLiteral{Value: value}
		ast.SetSpan(lit, spanBetween(intTok, intTok))
		return lit, nil
	case tokString:
		strTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		lit := &ast.StringLiteral{Raw: strTok.Lit}
		ast.SetSpan(lit, spanBetween(strTok, strTok))
		return lit, nil
	case tokIdent:
		identTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		ref := ast.ID(identTok.Lit)
		ast.SetSpan(ref, spanBetween(identTok, identTok))
		return ref, nil
	case tokLParen:
		openTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(tokRParen)
		if err != nil {
			return nil, err
		}
		paren := &ast.ParenExpression{Inner: inner}
		ast.SetSpan(paren, spanBetween(openTok, closeTok))
		return paren, nil
	default:
		return nil, syntaxErrorAt(p.tok, "expected expression, found %s", describeToken(p.tok))
	}
}
