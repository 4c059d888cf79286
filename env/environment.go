/*
File    : mylang/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package env is the single flat variable environment the evaluator
walks the AST against. It is a direct simplification of the teacher's
scope.Scope: that type supports a parent chain for lexical nesting
(function closures, block scopes, const/let tracking) none of which
this language has — If/While/TryCatch bodies share the one enclosing
environment (§3), so the parent-chain machinery is dropped rather than
adapted, and Environment is just the map plus lookup/bind.
*/
package env

import "github.com/akashmaji946/mylang/value"

// Environment is the process-wide name -> value mapping described in
// §3. There are no nested scopes: every statement in the program,
// including the bodies of If, While, and TryCatch, reads and writes
// the same map.
type Environment struct {
	variables map[string]value.Value
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{variables: make(map[string]value.Value)}
}

// Get looks up name, reporting whether it is bound.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// Set binds name to v, inserting or replacing the existing binding.
func (e *Environment) Set(name string, v value.Value) {
	e.variables[name] = v
}

// Names returns the currently bound variable names, in map iteration
// order. Used to build the "available variables" list an unbound
// Variable lookup reports (§4.4).
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	return names
}

// ImportedModules tracks which module names have already been spliced
// into an environment, guaranteeing each module loads at most once per
// interpreter lifetime. It only ever grows.
type ImportedModules struct {
	seen map[string]bool
}

func NewImportedModules() *ImportedModules {
	return &ImportedModules{seen: make(map[string]bool)}
}

func (m *ImportedModules) Has(name string) bool {
	return m.seen[name]
}

func (m *ImportedModules) Add(name string) {
	m.seen[name] = true
}
