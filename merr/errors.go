/*
File    : mylang/merr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package merr defines the three failure kinds raised by the mylang
front-end and evaluator: LexError, ParseError, RuntimeError. All three
carry enough source position information to be reported the way the
teacher's parser/evaluator report theirs ("[line:column] message"),
and all three satisfy the standard error interface so they compose with
errors.As/errors.Is at the CLI boundary.
*/
package merr

import "fmt"

// Kind distinguishes the three failure origins described in the
// error-handling design: lexer, parser, or evaluator.
type Kind int

const (
	LexError Kind = iota
	ParseError
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LEX ERROR"
	case ParseError:
		return "PARSE ERROR"
	case RuntimeError:
		return "RUNTIME ERROR"
	default:
		return "ERROR"
	}
}

// Error is the single failure type shared by every stage of the
// pipeline. File is empty for errors raised against an unnamed
// interactive buffer.
type Error struct {
	Kind    Kind
	File    string
	Line    int
	Column  int
	Message string
}

func New(kind Kind, file string, line, column int, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		File:    file,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, a...),
	}
}

func Lex(file string, line, column int, format string, a ...interface{}) *Error {
	return New(LexError, file, line, column, format, a...)
}

func Parse(file string, line, column int, format string, a ...interface{}) *Error {
	return New(ParseError, file, line, column, format, a...)
}

func Runtime(file string, line, column int, format string, a ...interface{}) *Error {
	return New(RuntimeError, file, line, column, format, a...)
}

// Wrap turns any existing failure into a RuntimeError that names the
// module or collaborator it came from, per the Import propagation
// policy in §4.4: a failed module load wraps its underlying error.
func Wrap(file string, line, column int, moduleName string, cause error) *Error {
	return Runtime(file, line, column, "error loading module '%s': %s", moduleName, cause.Error())
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s:[%d:%d] %s: %s", e.File, e.Line, e.Column, e.Kind, e.Message)
}
