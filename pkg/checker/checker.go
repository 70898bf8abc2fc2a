// Package checker performs a static pass over a parsed program before it
// runs. Because SimpleLang has no loops or functions, variable kinds are
// statically determinable along each path, so most runtime failures can be
// reported ahead of execution. The checker never rejects what the
// interpreter would accept: permissive-but-legal constructs (such as
// re-declaring a variable under a different kind keyword) come back as
// warnings, not errors.
package checker

import (
	"fmt"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/driver"
)

// Issue codes.
const (
	CodeUndefinedVariable    = "undefined-variable"
	CodeDeclaredKindMismatch = "declared-kind-mismatch"
	CodeOperandKindMismatch  = "operand-kind-mismatch"
	CodeDivisionByZero       = "division-by-zero"
	CodeRedeclaredKind       = "redeclared-kind"
	CodePossiblyUndeclared   = "possibly-undeclared"
)

// Issue is one static finding.
type Issue struct {
	Severity driver.DiagnosticSeverity
	Code     string
	Message  string
	Location driver.DiagnosticLocation
}

// Describe renders an issue for terminal output.
func Describe(issue Issue) string {
	if location := driver.FormatLocation(issue.Location); location != "" {
		return fmt.Sprintf("%s: %s: %s [%s]", issue.Severity, location, issue.Message, issue.Code)
	}
	return fmt.Sprintf("%s: %s [%s]", issue.Severity, issue.Message, issue.Code)
}

// HasErrors reports whether any issue is error-severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == driver.SeverityError {
			return true
		}
	}
	return false
}

// valueKind is the checker's static approximation of a runtime kind.
// kindUnknown appears when if/else branches disagree.
type valueKind int

const (
	kindUnknown valueKind = iota
	kindNumber
	kindText
)

func (k valueKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindText:
		return "text"
	default:
		return "unknown"
	}
}

// varState tracks a variable along the current path. maybe marks names
// declared on only some branches: legal to read at runtime when that branch
// ran, so a read is a warning rather than an error.
type varState struct {
	kind  valueKind
	maybe bool
}

type scope map[string]varState

func (s scope) clone() scope {
	dup := make(scope, len(s))
	for name, state := range s {
		dup[name] = state
	}
	return dup
}

type checker struct {
	path   string
	issues []Issue
}

// Check runs the static pass over one program. The path is attached to issue
// locations and may be empty.
func Check(path string, program *ast.Program) []Issue {
	c := &checker{path: path}
	c.checkStatements(program.Statements, scope{})
	return c.issues
}

func (c *checker) report(severity driver.DiagnosticSeverity, code string, node ast.Node, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: c.locationFor(node),
	})
}

func (c *checker) locationFor(node ast.Node) driver.DiagnosticLocation {
	span := node.Span()
	return driver.DiagnosticLocation{
		Path:      c.path,
		Line:      span.Start.Line,
		Column:    span.Start.Column,
		EndLine:   span.End.Line,
		EndColumn: span.End.Column,
	}
}

func (c *checker) checkStatements(statements []ast.Statement, env scope) {
	for _, stmt := range statements {
		c.checkStatement(stmt, env)
	}
}

func (c *checker) checkStatement(stmt ast.Statement, env scope) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(s, env)
	case *ast.PrintStmt:
		c.checkExpression(s.Value, env)
	case *ast.IfStmt:
		c.checkIfStmt(s, env)
	case *ast.Block:
		// Blocks share the enclosing environment: flat scoping.
		c.checkStatements(s.Statements, env)
	}
}

func (c *checker) checkVarDecl(decl *ast.VarDecl, env scope) {
	exprKind := c.checkExpression(decl.Value, env)
	declared := kindNumber
	if decl.DeclaredKind == ast.DeclText {
		declared = kindText
	}
	if exprKind != kindUnknown && exprKind != declared {
		c.report(driver.SeverityError, CodeDeclaredKindMismatch, decl,
			"variable '%s' declared as %s but its initializer is %s", decl.Name.Name, declared, exprKind)
	}
	if prev, ok := env[decl.Name.Name]; ok && prev.kind != kindUnknown && prev.kind != declared {
		c.report(driver.SeverityWarning, CodeRedeclaredKind, decl,
			"variable '%s' re-declared as %s after being %s", decl.Name.Name, declared, prev.kind)
	}
	env[decl.Name.Name] = varState{kind: declared}
}

func (c *checker) checkIfStmt(stmt *ast.IfStmt, env scope) {
	c.checkCondition(stmt.Cond, env)

	thenScope := env.clone()
	c.checkStatements(stmt.Then.Statements, thenScope)
	elseScope := env.clone()
	if stmt.Else != nil {
		c.checkStatements(stmt.Else.Statements, elseScope)
	}

	// Merge the branches back: declarations survive the if because the
	// language has no block scoping, but a name declared on only one path
	// is downgraded to maybe-declared, and kinds that disagree across
	// paths become unknown.
	merged := make(scope, len(thenScope))
	for name, thenState := range thenScope {
		if elseState, ok := elseScope[name]; ok {
			state := varState{kind: thenState.kind, maybe: thenState.maybe || elseState.maybe}
			if elseState.kind != thenState.kind {
				state.kind = kindUnknown
			}
			merged[name] = state
		} else {
			merged[name] = varState{kind: thenState.kind, maybe: true}
		}
	}
	for name, elseState := range elseScope {
		if _, ok := thenScope[name]; !ok {
			merged[name] = varState{kind: elseState.kind, maybe: true}
		}
	}
	for name := range env {
		delete(env, name)
	}
	for name, state := range merged {
		env[name] = state
	}
}

func (c *checker) checkCondition(cond *ast.Condition, env scope) {
	leftKind := c.checkExpression(cond.Left, env)
	rightKind := c.checkExpression(cond.Right, env)
	if leftKind == kindText {
		c.report(driver.SeverityError, CodeOperandKindMismatch, cond.Left,
			"left operand of comparison '%s' is text; comparisons require numbers", cond.Operator)
	}
	if rightKind == kindText {
		c.report(driver.SeverityError, CodeOperandKindMismatch, cond.Right,
			"right operand of comparison '%s' is text; comparisons require numbers", cond.Operator)
	}
}

func (c *checker) checkExpression(expr ast.Expression, env scope) valueKind {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return kindNumber
	case *ast.StringLiteral:
		return kindText
	case *ast.Identifier:
		state, ok := env[n.Name]
		if !ok {
			c.report(driver.SeverityError, CodeUndefinedVariable, n,
				"variable '%s' is used but never declared", n.Name)
			return kindUnknown
		}
		if state.maybe {
			c.report(driver.SeverityWarning, CodePossiblyUndeclared, n,
				"variable '%s' may not be declared on every path reaching this use", n.Name)
		}
		return state.kind
	case *ast.ParenExpression:
		return c.checkExpression(n.Inner, env)
	case *ast.BinaryExpression:
		leftKind := c.checkExpression(n.Left, env)
		rightKind := c.checkExpression(n.Right, env)
		if leftKind == kindText {
			c.report(driver.SeverityError, CodeOperandKindMismatch, n.Left,
				"left operand of '%s' is text; arithmetic requires numbers", n.Operator)
		}
		if rightKind == kindText {
			c.report(driver.SeverityError, CodeOperandKindMismatch, n.Right,
				"right operand of '%s' is text; arithmetic requires numbers", n.Operator)
		}
		if n.Operator == "/" && isConstantZero(n.Right) {
			c.report(driver.SeverityWarning, CodeDivisionByZero, n,
				"right operand of '/' is the constant 0")
		}
		return kindNumber
	default:
		return kindUnknown
	}
}

func isConstantZero(expr ast.Expression) bool {
	for {
		switch n := expr.(type) {
		case *ast.IntLiteral:
			return n.Value == 0
		case *ast.ParenExpression:
			expr = n.Inner
		default:
			return false
		}
	}
}
