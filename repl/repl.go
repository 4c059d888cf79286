/*
File    : mylang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the line-buffered interactive collaborator
described in §6: lines accumulate until the user types the terminator
token on its own, then the buffer runs as a single program against a
persistent Evaluator, so variables survive across buffers within one
session. This keeps the teacher's REPL shape (readline for line
editing/history, fatih/color for diagnostics, repl/repl.go) but departs
from its per-line immediate-eval loop, because this language's grammar
requires full statements (every statement ends in ';' or a closing
brace) rather than single standalone expressions — evaluating each line
in isolation would reject perfectly valid multi-line if/while/try
blocks. That difference is recorded in SPEC_FULL.md's AMBIENT STACK
section.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/mylang/eval"
	"github.com/akashmaji946/mylang/keywords"
	"github.com/akashmaji946/mylang/merr"
	"github.com/akashmaji946/mylang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Repl is a line-buffered interactive session over the mylang
// front-end and evaluator.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Keywords *keywords.Table
}

// New creates a Repl instance with the given display strings and
// keyword table.
func New(banner, version, author, line, license, prompt string, table *keywords.Table) *Repl {
	return &Repl{
		Banner:   banner,
		Version:  version,
		Author:   author,
		Line:     line,
		License:  license,
		Prompt:   prompt,
		Keywords: table,
	}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type a program and end it with a line containing only "+keywords.Quit)
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines from reader and writing
// banner/diagnostic/program output to writer. It returns when the
// input stream closes (EOF/interrupt), per §6. reader/writer are
// typically os.Stdin/os.Stdout, or a single net.Conn for `serve` mode
// (SPEC_FULL.md §5's one-Evaluator-per-connection note).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	stdin, ok := reader.(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(reader)
	}
	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdin: stdin, Stdout: writer})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.New(r.Keywords)
	evaluator.SetWriter(writer)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good Bye!")
			return
		}

		if strings.TrimSpace(line) == keywords.Quit {
			if buf.Len() > 0 {
				r.runBuffer(writer, evaluator, buf.String())
				buf.Reset()
			}
			continue
		}

		rl.SaveHistory(line)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// runBuffer parses and evaluates one accumulated program, printing a
// short error line on failure and continuing the session (interactive
// mode never exits on error, §7).
func (r *Repl) runBuffer(writer io.Writer, evaluator *eval.Evaluator, src string) {
	p, err := parser.New(src, "<stdin>", r.Keywords)
	if err != nil {
		printError(writer, err)
		return
	}
	program, err := p.Parse()
	if err != nil {
		printError(writer, err)
		return
	}
	if err := evaluator.Interpret(program); err != nil {
		printError(writer, err)
	}
}

func printError(writer io.Writer, err error) {
	if me, ok := err.(*merr.Error); ok {
		redColor.Fprintf(writer, "[ERROR] %s\n", me.Message)
		return
	}
	redColor.Fprintf(writer, "[ERROR] %s\n", err.Error())
}
