/*
File    : mylang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval is the tree-walking evaluator of §4.4. It keeps the
teacher's Evaluator shape — a struct holding the execution context plus
an io.Writer for Print output, constructed once and reused across
statements (eval/evaluator.go) — but the state it carries is much
smaller: no Builtins map, no Types map, no scope-parent chain, because
this language has one flat Environment (§3) and no user-defined
functions or builtins beyond the seven keywords themselves.
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/mylang/env"
	"github.com/akashmaji946/mylang/keywords"
	"github.com/akashmaji946/mylang/merr"
)

// Evaluator walks a Program against a single Environment, performing
// Print I/O and resolving Import statements as it goes.
type Evaluator struct {
	Env      *env.Environment
	Imports  *env.ImportedModules
	Writer   io.Writer
	Keywords *keywords.Table

	// File names the source the currently running program came from,
	// used to build precise error locations. Import resolution does not
	// consult it. Empty for an interactive buffer.
	File string
}

// New creates an Evaluator with a fresh environment and imported-module
// set (§3 Lifecycle: "created at interpreter construction").
func New(table *keywords.Table) *Evaluator {
	return &Evaluator{
		Env:      env.New(),
		Imports:  env.NewImportedModules(),
		Writer:   os.Stdout,
		Keywords: table,
	}
}

// SetWriter redirects Print output, mirroring the teacher's
// Evaluator.SetWriter (useful for tests capturing output to a buffer).
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

func (e *Evaluator) errAt(line, column int, format string, a ...interface{}) error {
	return merr.Runtime(e.File, line, column, format, a...)
}
