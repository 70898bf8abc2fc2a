package interpreter

import (
	"errors"
	"fmt"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/runtime"
)

// RuntimeErrorKind classifies an execution failure.
type RuntimeErrorKind string

const (
	// UndefinedVariableError reports a read of a name that was never declared.
	UndefinedVariableError RuntimeErrorKind = "UndefinedVariableError"
	// TypeMismatchError reports an arithmetic or comparison operator applied
	// to a non-numeric operand.
	TypeMismatchError RuntimeErrorKind = "TypeMismatchError"
	// DeclaredTypeMismatchError reports a declaration whose type keyword does
	// not match the evaluated expression's kind.
	DeclaredTypeMismatchError RuntimeErrorKind = "DeclaredTypeMismatchError"
	// UnknownOperatorError reports an operator token outside the language's
	// set. Unreachable with a conforming parser; kept as a classified failure
	// instead of an assertion.
	UnknownOperatorError RuntimeErrorKind = "UnknownOperatorError"
	// DivisionByZeroError reports a division whose right operand is zero.
	DivisionByZeroError RuntimeErrorKind = "DivisionByZeroError"
)

// RuntimeError is the classified failure surfaced to the driver. Name and
// Operator carry diagnostic context when the kind involves one.
type RuntimeError struct {
	ErrKind  RuntimeErrorKind
	Message  string
	Name     string
	Operator string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// ErrorKindOf extracts the classification from an error chain; the second
// result is false when the error is not a RuntimeError.
func ErrorKindOf(err error) (RuntimeErrorKind, bool) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.ErrKind, true
	}
	return "", false
}

func newUndefinedVariableError(name string) error {
	return &RuntimeError{
		ErrKind: UndefinedVariableError,
		Message: fmt.Sprintf("undefined variable '%s'", name),
		Name:    name,
	}
}

func newArithmeticTypeMismatchError(op string, left, right runtime.Kind) error {
	return &RuntimeError{
		ErrKind:  TypeMismatchError,
		Message:  fmt.Sprintf("operator '%s' requires numeric operands, found %s and %s (no string concatenation exists)", op, left, right),
		Operator: op,
	}
}

func newComparisonTypeMismatchError(op string, left, right runtime.Kind) error {
	return &RuntimeError{
		ErrKind:  TypeMismatchError,
		Message:  fmt.Sprintf("comparison '%s' requires numeric operands, found %s and %s", op, left, right),
		Operator: op,
	}
}

func newDeclaredTypeMismatchError(name string, declared ast.DeclaredKind, actual runtime.Kind) error {
	return &RuntimeError{
		ErrKind: DeclaredTypeMismatchError,
		Message: fmt.Sprintf("variable '%s' declared as %s but assigned %s", name, declared, actual),
		Name:    name,
	}
}

func newUnknownOperatorError(op string) error {
	return &RuntimeError{
		ErrKind:  UnknownOperatorError,
		Message:  fmt.Sprintf("unknown operator '%s'", op),
		Operator: op,
	}
}

func newDivisionByZeroError() error {
	return &RuntimeError{
		ErrKind: DivisionByZeroError,
		Message: "division by zero",
	}
}
