/*
File    : mylang/eval/eval_trycatch.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

TryCatch evaluation (§4.4, §7, §9's "recoverable errors vs fatal
errors" design note). The teacher has no try/catch construct at all —
go-mix relies on the host's panic/recover for internal faults, never
exposed to script authors. This is grounded on the re-architecture
guidance in §9 instead: catch failure via the normal Go error-return
convention (execBlock already returns error on the first failing
statement) rather than reaching for panic/recover, which would fight
Go idiom for no benefit here since nothing in this evaluator panics.
*/
package eval

import (
	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/value"
)

// execTryCatch runs the try-block; any failure (lex/parse/runtime,
// including ones raised transitively through a nested Import) is
// caught, its message bound to the catch variable, and the catch-block
// runs. A failure in the catch-block itself propagates (§4.4).
func (e *Evaluator) execTryCatch(n *ast.TryCatch) error {
	if err := e.execBlock(n.Try); err != nil {
		e.Env.Set(n.ErrorVar, &value.Text{Val: err.Error()})
		return e.execBlock(n.Catch)
	}
	return nil
}
