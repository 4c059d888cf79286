/*
File    : mylang/cmd/mylang/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the mylang interpreter. It provides
file mode, interactive (line-buffered) mode, and an optional `serve`
collaborator mode, grounded on the teacher's main/main.go dispatch
shape (flag checks, BANNER/VERSION/PROMPT globals, executeFileWithRecovery)
but adapted to this language's single-front-end pipeline (§6, §9's
"interactive vs file mode" design note) and its structured merr.Error
failure model instead of go-mix's GoMixObject-typed error results.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/mylang/eval"
	"github.com/akashmaji946/mylang/keywords"
	"github.com/akashmaji946/mylang/merr"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/repl"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "mylang >>> "
)

const banner = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "serve":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for serve mode: mylang serve <port>\n")
				os.Exit(1)
			}
			serve(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	r := repl.New(banner, version, author, line, license, prompt, keywords.Default())
	r.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("mylang - an interpreter for a small imperative scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  mylang                    Start interactive mode")
	fmt.Println("  mylang <path-to-file>     Execute a .mylang source file")
	fmt.Println("  mylang serve <port>       Serve interactive mode over TCP, one session per connection")
	fmt.Println("  mylang --help             Display this help message")
	fmt.Println("  mylang --version          Display version information")
}

func showVersion() {
	fmt.Printf("mylang %s (license %s, %s)\n", version, license, author)
}

// runFile loads and runs a single source file (§6). A lex/parse/
// runtime failure anywhere outside a try-block is fatal: exit code 1,
// per §7.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	table := keywords.Default()
	p, err := parser.New(string(src), path, table)
	if err != nil {
		reportFatal(err)
	}
	prog, err := p.Parse()
	if err != nil {
		reportFatal(err)
	}

	e := eval.New(table)
	e.File = path
	e.SetWriter(os.Stdout)
	if err := e.Interpret(prog); err != nil {
		reportFatal(err)
	}
}

// reportFatal prints the error (with the file-mode detailed location
// trace §7 allows) and exits 1.
func reportFatal(err error) {
	if me, ok := err.(*merr.Error); ok {
		redColor.Fprintf(os.Stderr, "[%s] %s\n", me.Kind, me.Error())
	} else {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	}
	os.Exit(1)
}

// serve exposes interactive mode over a TCP listener, one Evaluator
// per accepted connection (SPEC_FULL.md §5's AMBIENT/DOMAIN note),
// grounded on the teacher's startServer/handleClient (main/main.go).
func serve(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("mylang serving interactive sessions on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, author, line, license, prompt, keywords.Default())
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
