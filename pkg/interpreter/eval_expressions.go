package interpreter

import (
	"fmt"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (result runtime.Value, err error) {
	defer func() {
		err = i.attachRuntimeContext(err, node)
	}()
	switch n := node.(type) {
	case *ast.IntLiteral:
		return runtime.NumberValue{Val: float64(n.Value)}, nil
	case *ast.StringLiteral:
		return runtime.TextValue{Val: runtime.DecodeEscapes(n.Raw)}, nil
	case *ast.Identifier:
		val, ok := i.env.Get(n.Name)
		if !ok {
			return nil, newUndefinedVariableError(n.Name)
		}
		return val, nil
	case *ast.ParenExpression:
		return i.evaluateExpression(n.Inner)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", node.NodeType())
	}
}

// evaluateBinaryExpression evaluates operands left then right, so a failure
// in the left operand is reported before the right operand runs at all.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	leftNum, leftOk := left.(runtime.NumberValue)
	rightNum, rightOk := right.(runtime.NumberValue)
	if !leftOk || !rightOk {
		return nil, newArithmeticTypeMismatchError(expr.Operator, left.Kind(), right.Kind())
	}
	return applyBinaryOperator(expr.Operator, leftNum.Val, rightNum.Val)
}

// evaluateCondition reduces an if-statement head to the branch decision. The
// boolean is not a language value: it cannot be stored or printed.
func (i *Interpreter) evaluateCondition(cond *ast.Condition) (result bool, err error) {
	defer func() {
		err = i.attachRuntimeContext(err, cond)
	}()
	left, err := i.evaluateExpression(cond.Left)
	if err != nil {
		return false, err
	}
	right, err := i.evaluateExpression(cond.Right)
	if err != nil {
		return false, err
	}
	leftNum, leftOk := left.(runtime.NumberValue)
	rightNum, rightOk := right.(runtime.NumberValue)
	if !leftOk || !rightOk {
		return false, newComparisonTypeMismatchError(cond.Operator, left.Kind(), right.Kind())
	}
	return evaluateComparison(cond.Operator, leftNum.Val, rightNum.Val)
}
