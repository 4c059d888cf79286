/*
File    : mylang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/keywords"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src, "<test>", keywords.Default())
	require.NoError(t, err)
	program, err := p.Parse()
	require.NoError(t, err)
	return program
}

func TestParser_ArithmeticAndAssign(t *testing.T) {
	program := mustParse(t, `x = 2 + 3 * 4;`)
	require.Len(t, program.Statements, 1)
	assign, ok := program.Statements[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)

	binop, ok := assign.Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "+", binop.Op)

	right, ok := binop.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParser_PrintStatement(t *testing.T) {
	program := mustParse(t, `打印("v=" + x);`)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.Print)
	require.True(t, ok)
	_, ok = stmt.Expr.(*ast.BinOp)
	assert.True(t, ok)
}

func TestParser_IfElse(t *testing.T) {
	program := mustParse(t, `如果 (n < 10) { 打印("small"); } 否则 { 打印("big"); }`)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "<", stmt.Cond.Op)
	assert.Len(t, stmt.Then, 1)
	assert.Len(t, stmt.Else, 1)
}

func TestParser_IfWithoutElse(t *testing.T) {
	program := mustParse(t, `如果 (n < 10) { 打印("small"); }`)
	stmt, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Nil(t, stmt.Else)
}

func TestParser_IfWithBareConditionParses(t *testing.T) {
	// comparison's trailing cmp_op expr is optional (§4.2); a bare
	// expr condition is syntactically valid even though it can never
	// evaluate to boolean (a RuntimeError, not a ParseError — §4.4).
	program := mustParse(t, `如果 (n) { 打印("x"); }`)
	stmt, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "", stmt.Cond.Op)
}

func TestParser_While(t *testing.T) {
	program := mustParse(t, `循环 (i < 3) { 打印(i); i = i + 1; }`)
	stmt, ok := program.Statements[0].(*ast.While)
	require.True(t, ok)
	assert.Equal(t, "<", stmt.Cond.Op)
	assert.Len(t, stmt.Body, 2)
}

func TestParser_Import(t *testing.T) {
	program := mustParse(t, `导入 "lib";`)
	stmt, ok := program.Statements[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "lib", stmt.ModuleName)
}

func TestParser_TryCatchDefaultErrorVar(t *testing.T) {
	program := mustParse(t, `尝试 { x = 10 / 0; } 捕获 { 打印(_error); }`)
	stmt, ok := program.Statements[0].(*ast.TryCatch)
	require.True(t, ok)
	assert.Equal(t, "_error", stmt.ErrorVar)
}

func TestParser_TryCatchNamedErrorVar(t *testing.T) {
	program := mustParse(t, `尝试 { x = 10 / 0; } 捕获 (e) { 打印(e); }`)
	stmt, ok := program.Statements[0].(*ast.TryCatch)
	require.True(t, ok)
	assert.Equal(t, "e", stmt.ErrorVar)
}

func TestParser_ComparisonNotAllowedInExpr(t *testing.T) {
	// print takes expr, not comparison; a bare comparison there is a
	// parse error (§4.2, §9 open question on printing booleans).
	_, err := New(`打印(1 == 1);`, "<test>", keywords.Default())
	require.NoError(t, err)
	p, _ := New(`打印(1 == 1);`, "<test>", keywords.Default())
	_, err = p.Parse()
	require.Error(t, err)
}

func TestParser_MismatchedTokenAbortsWithPosition(t *testing.T) {
	p, err := New(`x = 1`, "<test>", keywords.Default())
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	// The missing ';' is reported at the Eof token, line 1 column 6.
	assert.Contains(t, err.Error(), "[1:6]")
}

func TestParser_NativeScriptKeywordsEndToEnd(t *testing.T) {
	program := mustParse(t, `n = 5; 如果 (n < 10) { 打印("small"); } 否则 { 打印("big"); }`)
	require.Len(t, program.Statements, 2)
	_, ok := program.Statements[1].(*ast.If)
	assert.True(t, ok)
}
