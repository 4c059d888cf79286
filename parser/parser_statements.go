/*
File    : mylang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement productions, grounded on the shapes of the teacher's
parser_controls.go (parseReturnStatement, parseImportStatement) and
parser_conditionals.go/parser_loops.go, but rebuilt for this grammar's
productions (§4.2).
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/mylang/ast"
	"github.com/akashmaji946/mylang/lexer"
	"github.com/akashmaji946/mylang/merr"
)

// parsePrintStatement: print_stmt := 'print' '(' expr ')' ';'
func (p *Parser) parsePrintStatement() (ast.Stmt, error) {
	printTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Print{Pos: pos(printTok), Expr: expr}, nil
}

// parseAssignStatement: assign_stmt := Identifier '=' expr ';'
func (p *Parser) parseAssignStatement() (ast.Stmt, error) {
	nameTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Assign{Pos: pos(nameTok), Name: nameTok.Lexeme, Expr: expr}, nil
}

// parseIfStatement: if_stmt := 'if' '(' comparison ')' '{' statement* '}'
//
//	( 'else' '{' statement* '}' )?
func (p *Parser) parseIfStatement() (ast.Stmt, error) {
	ifTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock []ast.Stmt
	if p.curr.Kind == lexer.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Pos: pos(ifTok), Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

// parseWhileStatement: while_stmt := 'while' '(' comparison ')' '{' statement* '}'
func (p *Parser) parseWhileStatement() (ast.Stmt, error) {
	whileTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: pos(whileTok), Cond: cond, Body: body}, nil
}

// parseImportStatement: import_stmt := 'import' String ';'
func (p *Parser) parseImportStatement() (ast.Stmt, error) {
	importTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curr.Kind != lexer.String {
		return nil, merr.Parse(p.file, p.curr.Line, p.curr.Column,
			"expected %s, got %s", lexer.String, p.curr.Kind)
	}
	moduleName := p.curr.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Import{Pos: pos(importTok), ModuleName: moduleName}, nil
}

// parseTryCatchStatement: try_stmt := 'try' '{' statement* '}'
//
//	'catch' ( '(' Identifier? ')' )? '{' statement* '}'
func (p *Parser) parseTryCatchStatement() (ast.Stmt, error) {
	tryTok := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Catch); err != nil {
		return nil, err
	}
	errorVar := "_error"
	if p.curr.Kind == lexer.LParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curr.Kind == lexer.Identifier {
			errorVar = p.curr.Lexeme
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(errorVar) == "" {
		errorVar = "_error"
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.TryCatch{
		Pos:      pos(tryTok),
		Try:      tryBlock,
		Catch:    catchBlock,
		ErrorVar: errorVar,
	}, nil
}
