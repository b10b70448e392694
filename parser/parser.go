package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
)

const (
	symbolTrue  = "true"
	symbolFalse = "false"
)

// Parser builds expression trees out of the tokens of a lexer, one top-level
// expression at a time.
type Parser struct {
	lx *lexer.Lexer

	eof     *lexer.Token
	lastErr error
}

// New creates a parser that reads source text from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// Next parses and returns the next top-level expression. It returns io.EOF
// once the input is exhausted. Errors are sticky: after a failure every call
// returns the same error.
func (p *Parser) Next() (*ast.Node, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	node, err := p.nextExpression()
	if err != nil && err != io.EOF {
		p.lastErr = err
	}
	return node, err
}

// ParseAll parses every remaining top-level expression.
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	nodes := []*ast.Node{}
	for {
		node, err := p.Next()
		if err == io.EOF {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) nextExpression() (*ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenEOF) {
		return nil, io.EOF
	}
	return p.expectExpression(tok)
}

func (p *Parser) next() (*lexer.Token, error) {
	if p.eof != nil {
		return p.eof, nil
	}
	if !p.lx.Next() {
		if err := p.lx.Err(); err != nil {
			return nil, err
		}
		// the lexer always ends with an EOF token, this is unreachable
		// unless it's been consumed already
		return nil, io.ErrUnexpectedEOF
	}

	tok := p.lx.Token()
	if tok.Is(lexer.TokenEOF) {
		p.eof = &tok
	}
	return &tok, nil
}

func (p *Parser) expectExpression(tok *lexer.Token) (*ast.Node, error) {
	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return p.expectList(tok)

	case lexer.TokenCloseExpression:
		return nil, parserError(ErrUnexpectedToken, tok, "no matching open parenthesis")

	case lexer.TokenInteger:
		return expectInteger(tok)

	case lexer.TokenString:
		return expectString(tok)

	case lexer.TokenSymbol:
		return expectSymbol(tok), nil

	case lexer.TokenEOF:
		return nil, parserError(ErrUnexpectedEOF, tok, "")
	}

	return nil, parserError(ErrUnexpectedToken, tok, "")
}

func (p *Parser) expectList(open *lexer.Token) (*ast.Node, error) {
	children := []*ast.Node{}

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenEOF:
			return nil, parserError(ErrUnexpectedEOF, tok, "parenthesis opened at %s is never closed", open.Position())

		case lexer.TokenCloseExpression:
			return ast.NewList(open, children), nil
		}

		child, err := p.expectExpression(tok)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func expectInteger(tok *lexer.Token) (*ast.Node, error) {
	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, parserError(ErrUnexpectedToken, tok, "malformed integer literal")
	}
	return ast.New(tok, ast.NewIntValue(i64)), nil
}

func expectString(tok *lexer.Token) (*ast.Node, error) {
	s, err := unquote(tok.Text())
	if err != nil {
		return nil, parserError(ErrUnexpectedToken, tok, "malformed string literal")
	}
	return ast.New(tok, ast.NewStringValue(s)), nil
}

func expectSymbol(tok *lexer.Token) *ast.Node {
	switch tok.Text() {
	case symbolTrue:
		return ast.New(tok, ast.NewBoolValue(true))
	case symbolFalse:
		return ast.New(tok, ast.NewBoolValue(false))
	}
	return ast.New(tok, ast.NewSymbolValue(tok.Text()))
}

// unquote interprets the escapes of a double quoted lexeme. Unlike
// strconv.Unquote it accepts raw newlines.
func unquote(lexeme string) (string, error) {
	if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
		return "", strconv.ErrSyntax
	}

	s := lexeme[1 : len(lexeme)-1]

	var buf strings.Builder
	for len(s) > 0 {
		r, multibyte, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return "", err
		}
		if r < utf8.RuneSelf || !multibyte {
			buf.WriteByte(byte(r))
		} else {
			buf.WriteRune(r)
		}
		s = tail
	}
	return buf.String(), nil
}

// Parse returns all the top-level expressions in the given source.
func Parse(in []byte) ([]*ast.Node, error) {
	return New(bytes.NewReader(in)).ParseAll()
}
