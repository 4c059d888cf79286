/*
File    : mylang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression productions: comparison, expr, term, factor (§4.2). This
replaces the teacher's Pratt-parser prefix/infix function maps
(parser/parser_precedence.go, parser/parser_expressions.go) with plain
precedence-climbing recursive descent, since this grammar only has two
precedence levels (additive, multiplicative) plus a non-nesting
comparison level — a function-table dispatch would be more machinery
than the grammar needs.
*/
package parser

import (
	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/lexer"
	"github.com/akashmaji946/mylang/merr"
)

// parseComparison: comparison := expr ( cmp_op expr )?
//
// The trailing cmp_op expr is genuinely optional (§4.2): a bare expr
// is a syntactically valid condition. It can never evaluate to a
// Boolean (only Comparison produces one), so §4.4's "condition must be
// boolean" check turns it into a RuntimeError rather than rejecting it
// here at parse time — that distinction is deliberate, not an
// oversight, and is why this returns an *ast.Comparison with Op == ""
// instead of failing.
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	leftPos := pos(p.curr)
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curr.Kind != lexer.Comparison {
		return &ast.Comparison{Pos: leftPos, Op: "", Left: left}, nil
	}
	opTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Pos: pos(opTok), Op: opTok.Lexeme, Left: left, Right: right}, nil
}

// parseExpr: expr := term ( ('+'|'-') term )*
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == lexer.Plus || p.curr.Kind == lexer.Minus {
		opTok := p.curr
		op := "+"
		if opTok.Kind == lexer.Minus {
			op = "-"
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(opTok), Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm: term := factor ( ('*'|'/') factor )*
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == lexer.Multiply || p.curr.Kind == lexer.Divide {
		opTok := p.curr
		op := "*"
		if opTok.Kind == lexer.Divide {
			op = "/"
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(opTok), Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor: factor := Number | String | Identifier | '(' expr ')'
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.curr
	switch tok.Kind {
	case lexer.Number:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Number{Pos: pos(tok), IntVal: tok.IntVal, FracVal: tok.FracVal, IsFraction: tok.IsFraction}, nil
	case lexer.String:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.String{Pos: pos(tok), Val: tok.Lexeme}, nil
	case lexer.Identifier:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Variable{Pos: pos(tok), Name: tok.Lexeme}, nil
	case lexer.LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, merr.Parse(p.file, tok.Line, tok.Column,
			"expected a number, string, identifier, or '(', got %s", tok.Kind)
	}
}
