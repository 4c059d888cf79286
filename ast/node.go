/*
File    : mylang/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the closed set of AST node variants the parser
produces and the evaluator matches exhaustively (§4.3). This plays the
role of the teacher's parser/node.go, but the teacher's node set is
large (functions, arrays, maps, sets, structs, loops with updates,
pointers...) because go-mix is a general-purpose scripting language.
Only the eleven variants §3 names survive here; each still carries its
source line/column so the evaluator can report precise error
locations the way the teacher's CreateError does.
*/
package ast

// Pos is the (line, column) of a node's first token, 1-based, matching
// the teacher's lexer.Token.Line/Column convention.
type Pos struct {
	Line   int
	Column int
}

// Node is the capability every AST variant provides: its own source
// position, for error reporting.
type Node interface {
	Position() Pos
}

// Stmt and Expr both narrow Node. The grammar in §4.2 keeps statement
// and expression productions distinct (comparison is never a general
// expression), so the two marker methods let the parser's return types
// document that distinction instead of relying on callers to know it.
type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// ---- Expressions ----

// Number is either an integer or a fractional literal; IsFraction
// distinguishes them per §4.1's "presence of '.' yields a fractional
// value" rule.
type Number struct {
	Pos        Pos
	IntVal     int64
	FracVal    float64
	IsFraction bool
}

func (n *Number) Position() Pos { return n.Pos }
func (n *Number) exprNode()     {}

// String is a decoded string literal.
type String struct {
	Pos Pos
	Val string
}

func (s *String) Position() Pos { return s.Pos }
func (s *String) exprNode()     {}

// Variable is a bare identifier reference.
type Variable struct {
	Pos  Pos
	Name string
}

func (v *Variable) Position() Pos { return v.Pos }
func (v *Variable) exprNode()     {}

// BinOp is +, -, *, / between two expr-level operands (§4.2: expr and
// term productions, never comparison).
type BinOp struct {
	Pos   Pos
	Op    string // "+", "-", "*", "/"
	Left  Expr
	Right Expr
}

func (b *BinOp) Position() Pos { return b.Pos }
func (b *BinOp) exprNode()     {}

// Comparison is ==, !=, <, <=, >, >=. It only ever appears directly in
// an if/while condition position (§4.2), never nested inside a BinOp.
type Comparison struct {
	Pos   Pos
	Op    string
	Left  Expr
	Right Expr
}

func (c *Comparison) Position() Pos { return c.Pos }
func (c *Comparison) exprNode()     {}

// ---- Statements ----

// Assign binds the evaluated Expr to Name in the environment.
type Assign struct {
	Pos  Pos
	Name string
	Expr Expr
}

func (a *Assign) Position() Pos { return a.Pos }
func (a *Assign) stmtNode()     {}

// Print emits Expr's textual form followed by a line terminator.
type Print struct {
	Pos  Pos
	Expr Expr
}

func (p *Print) Position() Pos { return p.Pos }
func (p *Print) stmtNode()     {}

// If runs Then when Cond is true, Else (possibly empty) otherwise.
type If struct {
	Pos  Pos
	Cond *Comparison
	Then []Stmt
	Else []Stmt // nil when there is no else clause
}

func (i *If) Position() Pos { return i.Pos }
func (i *If) stmtNode()     {}

// While repeatedly runs Body while Cond holds, subject to the
// 10,000-iteration guard described in §4.4's state machine.
type While struct {
	Pos  Pos
	Cond *Comparison
	Body []Stmt
}

func (w *While) Position() Pos { return w.Pos }
func (w *While) stmtNode()     {}

// Import splices a module's top-level statements into the caller's
// environment the first time ModuleName is seen.
type Import struct {
	Pos        Pos
	ModuleName string
}

func (i *Import) Position() Pos { return i.Pos }
func (i *Import) stmtNode()     {}

// TryCatch runs Try; on failure, binds the error's message text to
// ErrorVar and runs Catch. ErrorVar defaults to "_error" (§4.2).
type TryCatch struct {
	Pos      Pos
	Try      []Stmt
	Catch    []Stmt
	ErrorVar string
}

func (t *TryCatch) Position() Pos { return t.Pos }
func (t *TryCatch) stmtNode()     {}

// Program is the parser's top-level output: an ordered sequence of
// statements (§3: "A program is an ordered sequence of statement
// nodes").
type Program struct {
	Statements []Stmt
}
