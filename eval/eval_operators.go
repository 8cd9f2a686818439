package eval

import (
	"math"

	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

func (ev *Evaluator) evalBinaryOp(n *parser.BinaryOp, scp *scope.Scope) value.Value {
	// and/or short-circuit and yield the actual operand value, not a
	// coerced bool, matching spec's "truthy-value passthrough" rule.
	if n.Operator == "and" {
		left := ev.Eval(n.Left, scp)
		if value.IsError(left) {
			return left
		}
		if !value.Truthy(left) {
			return left
		}
		return ev.Eval(n.Right, scp)
	}
	if n.Operator == "or" {
		left := ev.Eval(n.Left, scp)
		if value.IsError(left) {
			return left
		}
		if value.Truthy(left) {
			return left
		}
		return ev.Eval(n.Right, scp)
	}

	left := ev.Eval(n.Left, scp)
	if value.IsError(left) {
		return left
	}
	right := ev.Eval(n.Right, scp)
	if value.IsError(right) {
		return right
	}
	line, col := n.Pos()
	return applyBinaryOp(n.Operator, left, right, line, col)
}

func numericOperands(left, right value.Value) (float64, float64, bool, bool) {
	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	_, lIsInt := left.(value.Int)
	_, rIsInt := right.(value.Int)
	return lf, rf, lok && rok, lIsInt && rIsInt
}

func asNumber(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Val), true
	case value.Float:
		return n.Val, true
	default:
		return 0, false
	}
}

// applyBinaryOp implements every binary operator, shared by evalBinaryOp
// and the compound-assignment desugaring.
func applyBinaryOp(op string, left, right value.Value, line, col int) value.Value {
	switch op {
	case "+":
		return evalAdd(left, right, line, col)
	case "-", "*", "/", "%", "**":
		return evalArithmetic(op, left, right, line, col)
	case "==":
		return value.Bool{Val: valuesEqual(left, right)}
	case "!=":
		return value.Bool{Val: !valuesEqual(left, right)}
	case "<", ">", "<=", ">=":
		return evalComparison(op, left, right, line, col)
	default:
		return value.NewRuntimeErrorAt(line, col, "unknown operator %q", op)
	}
}

func evalAdd(left, right value.Value, line, col int) value.Value {
	if ls, ok := left.(value.Str); ok {
		if rs, ok := right.(value.Str); ok {
			return value.Str{Val: ls.Val + rs.Val}
		}
		return value.NewRuntimeErrorAt(line, col, "cannot add %s and %s", left.Type(), right.Type())
	}
	if _, ok := left.(*value.List); ok {
		return value.NewRuntimeErrorAt(line, col, "cannot add two lists")
	}
	return evalArithmetic("+", left, right, line, col)
}

func evalArithmetic(op string, left, right value.Value, line, col int) value.Value {
	lf, rf, okNum, bothInt := numericOperands(left, right)
	if !okNum {
		return value.NewRuntimeErrorAt(line, col, "cannot apply %q to %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		if bothInt {
			return value.Int{Val: left.(value.Int).Val + right.(value.Int).Val}
		}
		return value.Float{Val: lf + rf}
	case "-":
		if bothInt {
			return value.Int{Val: left.(value.Int).Val - right.(value.Int).Val}
		}
		return value.Float{Val: lf - rf}
	case "*":
		if bothInt {
			return value.Int{Val: left.(value.Int).Val * right.(value.Int).Val}
		}
		return value.Float{Val: lf * rf}
	case "/":
		// Division always produces a float, per spec: int/int never
		// truncates silently.
		if rf == 0 {
			return value.NewRuntimeErrorAt(line, col, "Division by zero")
		}
		return value.Float{Val: lf / rf}
	case "%":
		if bothInt {
			ri := right.(value.Int).Val
			if ri == 0 {
				return value.NewRuntimeErrorAt(line, col, "modulo by zero")
			}
			return value.Int{Val: left.(value.Int).Val % ri}
		}
		if rf == 0 {
			return value.NewRuntimeErrorAt(line, col, "modulo by zero")
		}
		return value.Float{Val: math.Mod(lf, rf)}
	case "**":
		result := math.Pow(lf, rf)
		if bothInt && rf >= 0 {
			return value.Int{Val: int64(result)}
		}
		return value.Float{Val: result}
	default:
		return value.NewRuntimeErrorAt(line, col, "unknown arithmetic operator %q", op)
	}
}

func evalComparison(op string, left, right value.Value, line, col int) value.Value {
	lf, rf, okNum, _ := numericOperands(left, right)
	if okNum {
		switch op {
		case "<":
			return value.Bool{Val: lf < rf}
		case ">":
			return value.Bool{Val: lf > rf}
		case "<=":
			return value.Bool{Val: lf <= rf}
		case ">=":
			return value.Bool{Val: lf >= rf}
		}
	}
	ls, lok := left.(value.Str)
	rs, rok := right.(value.Str)
	if lok && rok {
		switch op {
		case "<":
			return value.Bool{Val: ls.Val < rs.Val}
		case ">":
			return value.Bool{Val: ls.Val > rs.Val}
		case "<=":
			return value.Bool{Val: ls.Val <= rs.Val}
		case ">=":
			return value.Bool{Val: ls.Val >= rs.Val}
		}
	}
	return value.NewRuntimeErrorAt(line, col, "cannot compare %s and %s", left.Type(), right.Type())
}

func valuesEqual(left, right value.Value) bool {
	if lf, ok := asNumber(left); ok {
		if rf, ok := asNumber(right); ok {
			return lf == rf
		}
	}
	if ls, ok := left.(value.Str); ok {
		if rs, ok := right.(value.Str); ok {
			return ls.Val == rs.Val
		}
	}
	if lb, ok := left.(value.Bool); ok {
		if rb, ok := right.(value.Bool); ok {
			return lb.Val == rb.Val
		}
	}
	_, lNull := left.(value.Null)
	_, rNull := right.(value.Null)
	if lNull || rNull {
		return lNull && rNull
	}
	if ll, ok := left.(*value.List); ok {
		if rl, ok := right.(*value.List); ok {
			le, re := *ll.Elements, *rl.Elements
			if len(le) != len(re) {
				return false
			}
			for i := range le {
				if !valuesEqual(le[i], re[i]) {
					return false
				}
			}
			return true
		}
	}
	return false
}

func (ev *Evaluator) evalUnaryOp(n *parser.UnaryOp, scp *scope.Scope) value.Value {
	operand := ev.Eval(n.Operand, scp)
	if value.IsError(operand) {
		return operand
	}
	line, col := n.Pos()
	switch n.Operator {
	case "-":
		switch v := operand.(type) {
		case value.Int:
			return value.Int{Val: -v.Val}
		case value.Float:
			return value.Float{Val: -v.Val}
		default:
			return value.NewRuntimeErrorAt(line, col, "cannot negate %s", operand.Type())
		}
	case "not":
		return value.Bool{Val: !value.Truthy(operand)}
	default:
		return value.NewRuntimeErrorAt(line, col, "unknown unary operator %q", n.Operator)
	}
}
