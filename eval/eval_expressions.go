/*
File    : mylang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression-level evaluation: Number/String/Variable/BinOp/Comparison
(§4.4). Grounded on the teacher's evalExpressions arithmetic-coercion
switch (eval/eval_expressions.go, evaluator_expressions.go) but over
the much smaller value.Value set this language has (no arrays, maps,
structs, functions).
*/
package eval

import (
	"sort"
	"strings"

	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/value"
)

// evalExpr dispatches on the closed expression variant set (§4.3).
func (e *Evaluator) evalExpr(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Number:
		if n.IsFraction {
			return &value.Fraction{Val: n.FracVal}, nil
		}
		return &value.Integer{Val: n.IntVal}, nil
	case *ast.String:
		return &value.Text{Val: n.Val}, nil
	case *ast.Variable:
		return e.evalVariable(n)
	case *ast.BinOp:
		return e.evalBinOp(n)
	default:
		return nil, e.errAt(0, 0, "internal error: no evaluator for node %T", expr)
	}
}

// evalVariable looks name up in the environment. An unbound name fails
// with a RuntimeError naming it plus the comma-separated list of
// currently bound names (§4.4).
func (e *Evaluator) evalVariable(n *ast.Variable) (value.Value, error) {
	v, ok := e.Env.Get(n.Name)
	if ok {
		return v, nil
	}
	names := e.Env.Names()
	sort.Strings(names)
	return nil, e.errAt(n.Pos.Line, n.Pos.Column,
		"undefined variable '%s' (available: %s)", n.Name, strings.Join(names, ", "))
}

// evalComparison evaluates a Comparison node, used only from the
// condition position of If/While (§4.2). ==/!= require same-kind
// operands and use structural equality; ordering operators require
// both operands numeric.
func (e *Evaluator) evalComparison(n *ast.Comparison) (value.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}

	// No cmp_op (§4.2's optional trailing clause): the condition is a
	// bare expr, which can never be a Boolean. Returning it as-is lets
	// the If/While boolean check reject it as a RuntimeError instead of
	// failing here.
	if n.Op == "" {
		return left, nil
	}

	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==", "!=":
		if left.GetType() != right.GetType() {
			return nil, e.errAt(n.Pos.Line, n.Pos.Column,
				"cannot compare %s with %s using '%s'", left.GetType(), right.GetType(), n.Op)
		}
		eq := value.Equal(left, right)
		if n.Op == "!=" {
			eq = !eq
		}
		return &value.Boolean{Val: eq}, nil
	case "<", "<=", ">", ">=":
		if !value.IsNumeric(left) || !value.IsNumeric(right) {
			return nil, e.errAt(n.Pos.Line, n.Pos.Column,
				"operator '%s' requires numeric operands, got %s and %s", n.Op, left.GetType(), right.GetType())
		}
		lf, rf := value.AsFloat(left), value.AsFloat(right)
		var result bool
		switch n.Op {
		case "<":
			result = lf < rf
		case "<=":
			result = lf <= rf
		case ">":
			result = lf > rf
		case ">=":
			result = lf >= rf
		}
		return &value.Boolean{Val: result}, nil
	default:
		return nil, e.errAt(n.Pos.Line, n.Pos.Column, "unknown comparison operator '%s'", n.Op)
	}
}

// evalBinOp evaluates +, -, *, / (§4.4).
func (e *Evaluator) evalBinOp(n *ast.BinOp) (value.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		return e.evalPlus(n, left, right)
	case "-":
		if !value.IsNumeric(left) || !value.IsNumeric(right) {
			return nil, e.binOpTypeError(n, left, right)
		}
		return numericBinOp(left, right, func(a, b float64) float64 { return a - b }), nil
	case "*":
		return e.evalMultiply(n, left, right)
	case "/":
		return e.evalDivide(n, left, right)
	default:
		return nil, e.errAt(n.Pos.Line, n.Pos.Column, "unknown operator '%s'", n.Op)
	}
}

func (e *Evaluator) binOpTypeError(n *ast.BinOp, left, right value.Value) error {
	return e.errAt(n.Pos.Line, n.Pos.Column,
		"operator '%s' does not support %s and %s", n.Op, left.GetType(), right.GetType())
}

// evalPlus: text wins over numeric coercion (§4.4: "if either operand
// is text, coerce both to text ... and concatenate").
func (e *Evaluator) evalPlus(n *ast.BinOp, left, right value.Value) (value.Value, error) {
	if left.GetType() == value.TextKind || right.GetType() == value.TextKind {
		return &value.Text{Val: left.ToString() + right.ToString()}, nil
	}
	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, e.binOpTypeError(n, left, right)
	}
	return numericBinOp(left, right, func(a, b float64) float64 { return a + b }), nil
}

// evalMultiply: text * integer (either order) replicates the text;
// negative counts yield empty text. Otherwise both operands must be
// numeric (§4.4).
func (e *Evaluator) evalMultiply(n *ast.BinOp, left, right value.Value) (value.Value, error) {
	if text, count, ok := textAndInteger(left, right); ok {
		if count < 0 {
			return &value.Text{Val: ""}, nil
		}
		return &value.Text{Val: strings.Repeat(text, int(count))}, nil
	}
	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, e.binOpTypeError(n, left, right)
	}
	return numericBinOp(left, right, func(a, b float64) float64 { return a * b }), nil
}

func textAndInteger(left, right value.Value) (string, int64, bool) {
	if t, ok := left.(*value.Text); ok {
		if i, ok := right.(*value.Integer); ok {
			return t.Val, i.Val, true
		}
	}
	if t, ok := right.(*value.Text); ok {
		if i, ok := left.(*value.Integer); ok {
			return t.Val, i.Val, true
		}
	}
	return "", 0, false
}

// evalDivide: both operands numeric, zero divisor is a RuntimeError,
// result is always fractional (§4.4).
func (e *Evaluator) evalDivide(n *ast.BinOp, left, right value.Value) (value.Value, error) {
	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, e.binOpTypeError(n, left, right)
	}
	if value.AsFloat(right) == 0 {
		return nil, e.errAt(n.Pos.Line, n.Pos.Column, "division by zero")
	}
	return &value.Fraction{Val: value.AsFloat(left) / value.AsFloat(right)}, nil
}

// numericBinOp applies fn to the float64 form of both operands.
// Integer + Integer stays Integer (computed via fn on floats, then
// reconverted, since fn is always exact on the magnitudes this
// language supports); any fractional operand promotes the result to
// Fraction (§4.4).
func numericBinOp(left, right value.Value, fn func(a, b float64) float64) value.Value {
	_, leftIsInt := left.(*value.Integer)
	_, rightIsInt := right.(*value.Integer)
	result := fn(value.AsFloat(left), value.AsFloat(right))
	if leftIsInt && rightIsInt {
		return &value.Integer{Val: int64(result)}
	}
	return &value.Fraction{Val: result}
}
