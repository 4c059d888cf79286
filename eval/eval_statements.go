/*
File    : mylang/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement-level evaluation. Grounded on the teacher's evalStatements
sequential-execution pattern (eval/eval_statements.go: evaluate each
statement in order, stop at the first failure) but without the
ReturnValue/Break/Continue early-exit checks the teacher needs for
functions and loops with break/continue — this language has neither,
so a statement failure is the only thing that can interrupt a block.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/value"
)

// Interpret is the evaluator's one public operation (§4.4): it visits
// every top-level statement in program, in order.
func (e *Evaluator) Interpret(program *ast.Program) error {
	return e.execBlock(program.Statements)
}

// execBlock runs stmts in order against the shared environment,
// stopping at the first failure.
func (e *Evaluator) execBlock(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execStmt dispatches on the closed statement variant set (§4.3): a
// Go type switch plays the role of the teacher's reflection-based
// visit() dispatch, made exhaustive by construction (§9).
func (e *Evaluator) execStmt(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.Assign:
		return e.execAssign(n)
	case *ast.Print:
		return e.execPrint(n)
	case *ast.If:
		return e.execIf(n)
	case *ast.While:
		return e.execWhile(n)
	case *ast.Import:
		return e.execImport(n)
	case *ast.TryCatch:
		return e.execTryCatch(n)
	default:
		return e.errAt(0, 0, "internal error: no evaluator for node %T", stmt)
	}
}

func (e *Evaluator) execAssign(n *ast.Assign) error {
	val, err := e.evalExpr(n.Expr)
	if err != nil {
		return err
	}
	e.Env.Set(n.Name, val)
	return nil
}

func (e *Evaluator) execPrint(n *ast.Print) error {
	val, err := e.evalExpr(n.Expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.Writer, val.ToString())
	return err
}

func (e *Evaluator) execIf(n *ast.If) error {
	cond, err := e.evalComparison(n.Cond)
	if err != nil {
		return err
	}
	b, ok := cond.(*value.Boolean)
	if !ok {
		return e.errAt(n.Pos.Line, n.Pos.Column, "if condition must be boolean, got %s", cond.GetType())
	}
	if b.Val {
		return e.execBlock(n.Then)
	}
	if n.Else != nil {
		return e.execBlock(n.Else)
	}
	return nil
}
