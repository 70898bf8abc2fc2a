package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/parser"
	"simplelang/interpreter-go/pkg/runtime"
)

var errForeign = errors.New("not a runtime error")

func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	program, err := parser.Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	interp := New(WithOutput(&out))
	runErr := interp.Run(program)
	return out.String(), runErr
}

func mustRun(t *testing.T, source string) string {
	t.Helper()
	out, err := runSource(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out
}

func mustFailWith(t *testing.T, source string, want RuntimeErrorKind) (string, error) {
	t.Helper()
	out, err := runSource(t, source)
	if err == nil {
		t.Fatalf("expected %s, program succeeded with output %q", want, out)
	}
	kind, ok := ErrorKindOf(err)
	if !ok {
		t.Fatalf("error %v is not a classified runtime error", err)
	}
	if kind != want {
		t.Fatalf("error kind = %s, want %s (message: %v)", kind, want, err)
	}
	return out, err
}

func TestArithmeticPrecedence(t *testing.T) {
	if out := mustRun(t, `print 1 + 2 * 3`); out != "7\n" {
		t.Fatalf("output = %q, want %q", out, "7\n")
	}
	if out := mustRun(t, `print (1 + 2) * 3`); out != "9\n" {
		t.Fatalf("output = %q, want %q", out, "9\n")
	}
}

func TestDivisionIsTrueDivision(t *testing.T) {
	if out := mustRun(t, `print 7 / 2`); out != "3.5\n" {
		t.Fatalf("output = %q, want %q", out, "3.5\n")
	}
	if out := mustRun(t, `print 6 / 3`); out != "2\n" {
		t.Fatalf("output = %q, want %q", out, "2\n")
	}
}

func TestPrintText(t *testing.T) {
	if out := mustRun(t, `print "hello"`); out != "hello\n" {
		t.Fatalf("output = %q, want %q", out, "hello\n")
	}
	// Escapes decode at evaluation time, not in the lexer.
	if out := mustRun(t, `print "line1\nline2"`); out != "line1\nline2\n" {
		t.Fatalf("output = %q, want %q", out, "line1\nline2\n")
	}
}

func TestIfElseTakesTrueBranch(t *testing.T) {
	source := `
number x = 2
number y = 3
if (x < y) {
    print "less"
} else {
    print "not less"
}
`
	if out := mustRun(t, source); out != "less\n" {
		t.Fatalf("output = %q, want %q", out, "less\n")
	}
}

func TestIfElseTakesFalseBranch(t *testing.T) {
	source := `
number x = 5
number y = 3
if (x < y) {
    print "less"
} else {
    print "not less"
}
`
	if out := mustRun(t, source); out != "not less\n" {
		t.Fatalf("output = %q, want %q", out, "not less\n")
	}
}

func TestIfWithoutElseSkipsBody(t *testing.T) {
	source := `
number x = 1
if (x == 2) {
    print "never"
}
print "after"
`
	if out := mustRun(t, source); out != "after\n" {
		t.Fatalf("output = %q, want %q", out, "after\n")
	}
}

func TestComparisonOperators(t *testing.T) {
	cases := []struct {
		cond string
		want bool
	}{
		{"1 == 1", true},
		{"1 == 2", false},
		{"1 != 2", true},
		{"2 != 2", false},
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"3 <= 2", false},
		{"2 > 1", true},
		{"1 > 2", false},
		{"2 >= 2", true},
		{"1 >= 2", false},
	}
	for _, tc := range cases {
		t.Run(tc.cond, func(t *testing.T) {
			source := "if (" + tc.cond + ") { print \"yes\" } else { print \"no\" }"
			want := "no\n"
			if tc.want {
				want = "yes\n"
			}
			if out := mustRun(t, source); out != want {
				t.Fatalf("output = %q, want %q", out, want)
			}
		})
	}
}

func TestBlocksShareTheProgramEnvironment(t *testing.T) {
	// Declarations inside a block stay visible after it: flat scoping.
	source := `
number x = 1
if (x == 1) {
    number y = 10
}
print y
`
	if out := mustRun(t, source); out != "10\n" {
		t.Fatalf("output = %q, want %q", out, "10\n")
	}
}

func TestRedeclarationMayChangeKind(t *testing.T) {
	source := `
number x = 1
text x = "hi"
print x
`
	if out := mustRun(t, source); out != "hi\n" {
		t.Fatalf("output = %q, want %q", out, "hi\n")
	}
}

func TestDeclaredKindMismatch(t *testing.T) {
	_, err := mustFailWith(t, `number x = "oops"`, DeclaredTypeMismatchError)
	if !strings.Contains(err.Error(), "declared as number but assigned text") {
		t.Fatalf("unexpected message: %v", err)
	}
	mustFailWith(t, `text s = 1 + 2`, DeclaredTypeMismatchError)
}

func TestUndefinedVariableKeepsPriorOutput(t *testing.T) {
	source := `
print 1
print missing
`
	out, err := mustFailWith(t, source, UndefinedVariableError)
	if out != "1\n" {
		t.Fatalf("output before failure = %q, want %q", out, "1\n")
	}
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) || runtimeErr.Name != "missing" {
		t.Fatalf("error does not carry the variable name: %#v", err)
	}
}

func TestLeftOperandEvaluatedFirst(t *testing.T) {
	_, err := mustFailWith(t, `print first + second`, UndefinedVariableError)
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) || runtimeErr.Name != "first" {
		t.Fatalf("expected failure on left operand 'first', got %#v", err)
	}
}

func TestArithmeticRejectsText(t *testing.T) {
	mustFailWith(t, `print 1 + "a"`, TypeMismatchError)
	mustFailWith(t, `print "a" + "b"`, TypeMismatchError)
	mustFailWith(t, `text s = "x" print s * 2`, TypeMismatchError)
}

func TestComparisonRejectsText(t *testing.T) {
	mustFailWith(t, `if ("a" == "b") { print 1 }`, TypeMismatchError)
	mustFailWith(t, `if (1 < "a") { print 1 }`, TypeMismatchError)
}

func TestDivisionByZero(t *testing.T) {
	source := `
number a = 10
number b = 0
print a / b
`
	out, _ := mustFailWith(t, source, DivisionByZeroError)
	if out != "" {
		t.Fatalf("no output expected before the failing print, got %q", out)
	}
}

func TestRunResetsEnvironment(t *testing.T) {
	var out bytes.Buffer
	interp := New(WithOutput(&out))
	if err := interp.Run(ast.Prog(ast.Decl(ast.DeclNumber, "x", ast.Int(1)))); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	err := interp.Run(ast.Prog(ast.Print(ast.ID("x"))))
	kind, ok := ErrorKindOf(err)
	if !ok || kind != UndefinedVariableError {
		t.Fatalf("x survived into the second run: err = %v", err)
	}
}

func TestEvaluateProgramKeepsEnvironment(t *testing.T) {
	var out bytes.Buffer
	interp := New(WithOutput(&out))
	if err := interp.EvaluateProgram(ast.Prog(ast.Decl(ast.DeclNumber, "x", ast.Int(4)))); err != nil {
		t.Fatalf("declaration failed: %v", err)
	}
	if err := interp.EvaluateProgram(ast.Prog(ast.Print(ast.ID("x")))); err != nil {
		t.Fatalf("read of retained variable failed: %v", err)
	}
	if out.String() != "4\n" {
		t.Fatalf("output = %q, want %q", out.String(), "4\n")
	}
}

func TestUnknownOperators(t *testing.T) {
	var out bytes.Buffer
	interp := New(WithOutput(&out))

	err := interp.Run(ast.Prog(ast.Print(ast.Bin("%", ast.Int(1), ast.Int(2)))))
	if kind, ok := ErrorKindOf(err); !ok || kind != UnknownOperatorError {
		t.Fatalf("arithmetic: err = %v, want UnknownOperatorError", err)
	}

	err = interp.Run(ast.Prog(ast.If(ast.Cond(ast.Int(1), "~", ast.Int(2)), ast.Blk(), nil)))
	if kind, ok := ErrorKindOf(err); !ok || kind != UnknownOperatorError {
		t.Fatalf("comparison: err = %v, want UnknownOperatorError", err)
	}
}

func TestRuntimeDiagnosticCarriesLocation(t *testing.T) {
	source := `print 1
print missing`
	program, err := parser.Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	interp := New(WithOutput(&out), WithSourcePath("main.sl"))
	runErr := interp.Run(program)
	if runErr == nil {
		t.Fatalf("expected a runtime failure")
	}
	diag := interp.BuildRuntimeDiagnostic(runErr)
	if diag.Location.Path != "main.sl" || diag.Location.Line != 2 {
		t.Fatalf("diagnostic location = %+v, want main.sl line 2", diag.Location)
	}
	rendered := DescribeRuntimeDiagnostic(diag)
	if !strings.HasPrefix(rendered, "runtime: main.sl:2:") {
		t.Fatalf("rendered diagnostic = %q", rendered)
	}
	if !strings.Contains(rendered, "undefined variable 'missing'") {
		t.Fatalf("rendered diagnostic = %q", rendered)
	}
}

func TestErrorKindOfForeignError(t *testing.T) {
	if _, ok := ErrorKindOf(errForeign); ok {
		t.Fatalf("foreign error classified as a runtime error")
	}
}

func TestDeclaredKindAcceptsMatchingValues(t *testing.T) {
	var out bytes.Buffer
	interp := New(WithOutput(&out))
	program := ast.Prog(
		ast.Decl(ast.DeclNumber, "n", ast.Bin("*", ast.Int(2), ast.Int(3))),
		ast.Decl(ast.DeclText, "s", ast.Str("ok")),
		ast.Print(ast.ID("n")),
		ast.Print(ast.ID("s")),
	)
	if err := interp.Run(program); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "6\nok\n" {
		t.Fatalf("output = %q, want %q", out.String(), "6\nok\n")
	}
	value, ok := interp.Environment().Get("n")
	if !ok || value.Kind() != runtime.KindNumber {
		t.Fatalf("n = %#v, want a number binding", value)
	}
}
