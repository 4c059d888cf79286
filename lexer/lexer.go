/*
File    : mylang/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package lexer implements the character-by-character scanner described
in §4.1. It follows the teacher's lexer.Lexer shape (a cursor struct
with Advance/Peek and a NextToken dispatch switch, lexer/lexer.go) but
scans by decoded rune rather than raw byte, because this language's
reserved words are multi-byte UTF-8 script rather than ASCII — the
teacher's byte-indexed isAlpha/isAlphanumeric checks silently corrupt
multi-byte identifiers, a gap this language cannot afford given §6's
native-script keyword requirement. The rune-oriented cursor is grounded
on the retrieval pack's Eloquence lexer, which reads source a rune at a
time for the same reason.
*/
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/akashmaji946/mylang/keywords"
	"github.com/akashmaji946/mylang/merr"
)

// Lexer scans File's source text into Tokens on demand via NextToken.
type Lexer struct {
	File     string
	Keywords *keywords.Table

	runes  []rune
	pos    int
	line   int
	column int
}

// New creates a Lexer over src, reporting errors against file (used in
// LexError position information; the REPL passes "<stdin>").
func New(src, file string, table *keywords.Table) *Lexer {
	return &Lexer{
		File:     file,
		Keywords: table,
		runes:    []rune(src),
		pos:      0,
		line:     1,
		column:   1,
	}
}

func (l *Lexer) current() rune {
	if l.pos >= len(l.runes) {
		return 0
	}
	return l.runes[l.pos]
}

func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.runes) {
		return 0
	}
	return l.runes[l.pos+1]
}

// advance moves the cursor forward one rune, tracking line/column the
// same way the teacher's Lexer.Advance does (newline resets column).
func (l *Lexer) advance() {
	if l.pos >= len(l.runes) {
		return
	}
	if l.runes[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// NextToken returns the next token in the stream. Past end of input it
// yields Eof forever (§4.1).
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	line, column := l.line, l.column
	c := l.current()

	switch {
	case c == 0:
		return Token{Kind: Eof, Lexeme: "", Line: line, Column: column}, nil
	case c == '"':
		return l.readString(line, column)
	case unicode.IsDigit(c):
		return l.readNumber(line, column)
	case isIdentStart(c):
		return l.readIdentifier(line, column)
	case c == '=':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return Token{Kind: Comparison, Lexeme: "==", Line: line, Column: column}, nil
		}
		return Token{Kind: Assign, Lexeme: "=", Line: line, Column: column}, nil
	case c == '<':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return Token{Kind: Comparison, Lexeme: "<=", Line: line, Column: column}, nil
		}
		return Token{Kind: Comparison, Lexeme: "<", Line: line, Column: column}, nil
	case c == '>':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return Token{Kind: Comparison, Lexeme: ">=", Line: line, Column: column}, nil
		}
		return Token{Kind: Comparison, Lexeme: ">", Line: line, Column: column}, nil
	case c == '!':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return Token{Kind: Comparison, Lexeme: "!=", Line: line, Column: column}, nil
		}
		// A bare '!' lexes as a Comparison token with text "!"; the
		// parser has no production that accepts it (§4.1, §9 open
		// question). Left unresolved deliberately.
		return Token{Kind: Comparison, Lexeme: "!", Line: line, Column: column}, nil
	case c == '+':
		l.advance()
		return Token{Kind: Plus, Lexeme: "+", Line: line, Column: column}, nil
	case c == '-':
		l.advance()
		return Token{Kind: Minus, Lexeme: "-", Line: line, Column: column}, nil
	case c == '*':
		l.advance()
		return Token{Kind: Multiply, Lexeme: "*", Line: line, Column: column}, nil
	case c == '/':
		l.advance()
		return Token{Kind: Divide, Lexeme: "/", Line: line, Column: column}, nil
	case c == '(':
		l.advance()
		return Token{Kind: LParen, Lexeme: "(", Line: line, Column: column}, nil
	case c == ')':
		l.advance()
		return Token{Kind: RParen, Lexeme: ")", Line: line, Column: column}, nil
	case c == '{':
		l.advance()
		return Token{Kind: LBrace, Lexeme: "{", Line: line, Column: column}, nil
	case c == '}':
		l.advance()
		return Token{Kind: RBrace, Lexeme: "}", Line: line, Column: column}, nil
	case c == ';':
		l.advance()
		return Token{Kind: Semicolon, Lexeme: ";", Line: line, Column: column}, nil
	default:
		return Token{}, merr.Lex(l.File, line, column, "unexpected character %q", c)
	}
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// skipWhitespaceAndComments consumes whitespace and '#'-to-newline
// comments ahead of the next token, per §4.1.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		c := l.current()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance()
		case c == '#':
			for l.current() != '\n' && l.current() != 0 {
				l.advance()
			}
			if l.current() == '\n' {
				l.advance() // the newline itself is consumed (§4.1)
			}
		default:
			return nil
		}
	}
}

// readString scans a double-quoted string literal, decoding \n \t \"
// \\ escapes; any other escape or an unterminated string is a
// LexError (§4.1).
func (l *Lexer) readString(line, column int) (Token, error) {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		c := l.current()
		if c == 0 {
			return Token{}, merr.Lex(l.File, l.line, l.column, "unterminated string literal")
		}
		if c == '"' {
			l.advance()
			return Token{Kind: String, Lexeme: b.String(), Line: line, Column: column}, nil
		}
		if c == '\\' {
			l.advance()
			esc := l.current()
			var decoded rune
			switch esc {
			case 'n':
				decoded = '\n'
			case 't':
				decoded = '\t'
			case '"':
				decoded = '"'
			case '\\':
				decoded = '\\'
			default:
				return Token{}, merr.Lex(l.File, l.line, l.column, "invalid escape sequence '\\%c'", esc)
			}
			b.WriteRune(decoded)
			l.advance()
			continue
		}
		b.WriteRune(c)
		l.advance()
	}
}

// readNumber scans contiguous digits, optionally followed by a single
// '.' and more digits (§4.1).
func (l *Lexer) readNumber(line, column int) (Token, error) {
	var b strings.Builder
	for unicode.IsDigit(l.current()) {
		b.WriteRune(l.current())
		l.advance()
	}
	isFraction := false
	if l.current() == '.' && unicode.IsDigit(l.peek()) {
		isFraction = true
		b.WriteRune('.')
		l.advance()
		for unicode.IsDigit(l.current()) {
			b.WriteRune(l.current())
			l.advance()
		}
	}
	lexeme := b.String()
	if isFraction {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{}, merr.Lex(l.File, line, column, "malformed numeric literal '%s'", lexeme)
		}
		return Token{Kind: Number, Lexeme: lexeme, Line: line, Column: column, IsFraction: true, FracVal: v}, nil
	}
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, merr.Lex(l.File, line, column, "malformed numeric literal '%s'", lexeme)
	}
	return Token{Kind: Number, Lexeme: lexeme, Line: line, Column: column, IntVal: v}, nil
}

// readIdentifier scans an identifier and resolves it against the
// keyword table; unmatched identifiers become Identifier tokens
// (§4.1, §6).
func (l *Lexer) readIdentifier(line, column int) (Token, error) {
	var b strings.Builder
	for isIdentPart(l.current()) {
		b.WriteRune(l.current())
		l.advance()
	}
	lexeme := b.String()
	if label, ok := l.Keywords.Lookup(lexeme); ok {
		return Token{Kind: keywordKind(label), Lexeme: lexeme, Line: line, Column: column}, nil
	}
	return Token{Kind: Identifier, Lexeme: lexeme, Line: line, Column: column}, nil
}

func keywordKind(label keywords.Label) Kind {
	switch label {
	case keywords.Print:
		return Print
	case keywords.If:
		return If
	case keywords.Else:
		return Else
	case keywords.While:
		return While
	case keywords.Import:
		return Import
	case keywords.Try:
		return Try
	case keywords.Catch:
		return Catch
	default:
		return Identifier
	}
}
