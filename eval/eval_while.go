/*
File    : mylang/eval/eval_while.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

While-loop evaluation, including the 10,000-iteration guard's state
machine (§4.4). Grounded on the teacher's evalWhileStatement
(eval/eval_loops.go) but that guard does not exist in the teacher at
all — go-mix loops run unbounded, trusting the host to Ctrl-C a
runaway script. This language's spec requires the bound explicitly, so
it is new rather than adapted.
*/
package eval

import (
	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/value"
)

// maxWhileIterations is the guard from §4.4 and §8: the 10,001st
// condition check (after 10,000 completed body runs) fails.
const maxWhileIterations = 10000

func (e *Evaluator) execWhile(n *ast.While) error {
	checks := 0
	for {
		cond, err := e.evalComparison(n.Cond)
		if err != nil {
			return err
		}
		b, ok := cond.(*value.Boolean)
		if !ok {
			return e.errAt(n.Pos.Line, n.Pos.Column, "while condition must be boolean, got %s", cond.GetType())
		}
		if !b.Val {
			return nil
		}
		checks++
		if checks > maxWhileIterations {
			return e.errAt(n.Pos.Line, n.Pos.Column, "loop iteration limit exceeded")
		}
		if err := e.execBlock(n.Body); err != nil {
			return err
		}
	}
}
