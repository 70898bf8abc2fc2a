package interpreter

import "simplelang/interpreter-go/pkg/runtime"

// applyBinaryOperator applies one arithmetic operator to numeric operands.
// Division is true division; a zero divisor is a classified failure rather
// than an infinity sentinel.
func applyBinaryOperator(op string, left, right float64) (runtime.Value, error) {
	switch op {
	case "+":
		return runtime.NumberValue{Val: left + right}, nil
	case "-":
		return runtime.NumberValue{Val: left - right}, nil
	case "*":
		return runtime.NumberValue{Val: left * right}, nil
	case "/":
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		return runtime.NumberValue{Val: left / right}, nil
	default:
		return nil, newUnknownOperatorError(op)
	}
}

func evaluateComparison(op string, left, right float64) (bool, error) {
	switch op {
	case "==":
		return left == right, nil
	case "!=":
		return left != right, nil
	case "<":
		return left < right, nil
	case "<=":
		return left <= right, nil
	case ">":
		return left > right, nil
	case ">=":
		return left >= right, nil
	default:
		return false, newUnknownOperatorError(op)
	}
}
