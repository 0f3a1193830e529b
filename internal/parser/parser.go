// Package parser converts a token stream into a sequence of expressions.
//
// A LeftParen begins a list and a RightParen ends it; nested lists nest.
// Bare atoms become the corresponding atom expressions, symbol tokens become
// symbols, and the dot token becomes the rest-position sentinel. The bracket
// and quote tokens are reserved for future use and are rejected here.
package parser

import (
	"fmt"

	"github.com/iamlisp/go-iamlisp/internal/ast"
	"github.com/iamlisp/go-iamlisp/internal/errors"
	"github.com/iamlisp/go-iamlisp/internal/lexer"
)

// Parser builds expressions from the tokens produced by a lexer.
type Parser struct {
	lex    *lexer.Lexer
	source string
	file   string
	errs   []*errors.SourceError

	cur lexer.Token
}

// New creates a parser reading from the given lexer. The source text and
// file name are used only for error formatting.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{lex: l, source: source, file: file}
	p.next()
	return p
}

// next advances to the following token, recording lexer errors.
func (p *Parser) next() {
	tok, err := p.lex.NextToken()
	if err != nil {
		p.addError(tok.Pos, "%s", err.Error())
		p.cur = lexer.Token{Type: lexer.EOF, Pos: tok.Pos}
		return
	}
	p.cur = tok
}

func (p *Parser) addError(pos lexer.Position, format string, args ...any) {
	p.errs = append(p.errs, errors.New(pos, fmt.Sprintf(format, args...), p.source, p.file))
}

// Errors returns the errors accumulated while parsing.
func (p *Parser) Errors() []*errors.SourceError {
	return p.errs
}

// ParseProgram parses the whole input and returns the top-level expressions.
// On error the returned slice holds everything parsed so far; check Errors.
func (p *Parser) ParseProgram() []ast.Expression {
	var program []ast.Expression
	for p.cur.Type != lexer.EOF {
		expr, ok := p.parseExpression()
		if !ok {
			return program
		}
		program = append(program, expr)
	}
	return program
}

// parseExpression parses a single expression starting at the current token.
func (p *Parser) parseExpression() (ast.Expression, bool) {
	tok := p.cur
	switch tok.Type {
	case lexer.LPAREN:
		return p.parseList()
	case lexer.RPAREN:
		p.addError(tok.Pos, "unexpected token: )")
		return nil, false
	case lexer.INT:
		p.next()
		return &ast.Integer{Value: tok.Int}, true
	case lexer.FLOAT:
		p.next()
		return &ast.Float{Value: tok.Float}, true
	case lexer.BOOL:
		p.next()
		return &ast.Boolean{Value: tok.Bool}, true
	case lexer.STRING:
		p.next()
		return &ast.Str{Value: tok.Literal}, true
	case lexer.SYMBOL:
		p.next()
		return &ast.Symbol{Name: tok.Literal}, true
	case lexer.DOT:
		p.next()
		return &ast.Dot{}, true
	case lexer.LBRACE, lexer.RBRACE, lexer.LBRACKET, lexer.RBRACKET,
		lexer.CARET, lexer.QUOTE, lexer.SHARP:
		p.addError(tok.Pos, "reserved token: %s", tok.Literal)
		return nil, false
	}
	p.addError(tok.Pos, "unexpected token: %s", tok)
	return nil, false
}

// parseList parses a parenthesized list; the current token is the LPAREN.
func (p *Parser) parseList() (ast.Expression, bool) {
	open := p.cur
	p.next()

	list := ast.NewList()
	for {
		switch p.cur.Type {
		case lexer.RPAREN:
			p.next()
			return list, true
		case lexer.EOF:
			p.addError(open.Pos, "unexpected end of input while reading list")
			return nil, false
		default:
			expr, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			list.Push(expr)
		}
	}
}

// Parse is a convenience that lexes and parses a program string, returning
// the first error encountered.
func Parse(input, file string) ([]ast.Expression, error) {
	p := New(lexer.New(input), input, file)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return program, nil
}
