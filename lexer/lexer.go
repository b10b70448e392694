package lexer

import (
	"bytes"
	"errors"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
	isQuote           = isTokenType(TokenString)

	isWhitespace = isOneOf(whitespace)
	isDigit      = isOneOf(digits)
)

func isWordBreak(r rune) bool {
	return r == scanner.EOF ||
		isWhitespace(r) ||
		isOpenExpression(r) ||
		isCloseExpression(r) ||
		isQuote(r) ||
		r == commentMark
}

// Lexer represents a lexical analyzer. Tokens are produced on demand, one
// call to Next at a time.
type Lexer struct {
	src io.Reader
	in  *scanner.Scanner

	state   lexState
	pending []Token
	curr    Token

	lastErr error
	scanErr error

	buf []rune

	line    int
	col     int
	newline bool

	startLine int
	startCol  int
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{src: r}
	lx.init()
	return lx
}

func (lx *Lexer) init() {
	s := &scanner.Scanner{}
	s.Init(lx.src)
	s.Error = func(_ *scanner.Scanner, msg string) {
		if lx.scanErr != nil {
			return
		}
		err := errors.New(msg)
		if msg == "invalid UTF-8 encoding" {
			err = ErrInvalidEncoding
		}
		lx.scanErr = &Error{Err: err, Line: lx.line, Col: lx.col + 1}
	}

	lx.in = s
	lx.state = lexDefaultState
	lx.pending = nil
	lx.curr = Token{}
	lx.lastErr = nil
	lx.scanErr = nil
	lx.buf = []rune{}
	lx.line, lx.col, lx.newline = 1, 0, false
	lx.startLine, lx.startCol = 1, 1
}

// Reset rewinds the lexer to the beginning of its input. Only seekable inputs
// can be restarted.
func (lx *Lexer) Reset() error {
	s, ok := lx.src.(io.Seeker)
	if !ok {
		return ErrNotRestartable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	lx.init()
	return nil
}

// Next advances to the next token. It returns false after the EOF token has
// been consumed or when a lexical error stops the scan, see Err.
func (lx *Lexer) Next() bool {
	for len(lx.pending) == 0 && lx.state != nil {
		lx.state = lx.state(lx)
	}
	if len(lx.pending) == 0 {
		return false
	}
	lx.curr, lx.pending = lx.pending[0], lx.pending[1:]
	return true
}

// Token returns the token read by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.curr
}

// Err returns the error that stopped the scan, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.pending = append(lx.pending, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if lx.scanErr != nil {
		return rune(0), lx.scanErr
	}
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if lx.newline {
		lx.line++
		lx.col = 0
		lx.newline = false
	}
	lx.col++
	if r == '\n' {
		lx.newline = true
	}

	if len(lx.buf) == 0 {
		lx.startLine, lx.startCol = lx.line, lx.col
	}
	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexWhitespace
	case r == commentMark:
		return lexComment
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	case isQuote(r):
		return lexString
	default:
		return lexAtom
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.ignore()
	return lexDefaultState
}

func lexComment(lx *Lexer) lexState {
	for p := lx.peek(); p != '\n' && p != scanner.EOF; p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.ignore()
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	if isInteger(string(lx.buf)) {
		lx.emit(TokenInteger)
	} else {
		lx.emit(TokenSymbol)
	}
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	for {
		r, err := lx.next()
		if err != nil {
			return lexStringError(err)
		}
		switch {
		case r == '\\':
			// the escaped rune never closes the literal
			if _, err := lx.next(); err != nil {
				return lexStringError(err)
			}
		case isQuote(r):
			lx.emit(TokenString)
			return lexDefaultState
		}
	}
}

func lexStringError(err error) lexState {
	if err == io.EOF {
		return func(lx *Lexer) lexState {
			lx.lastErr = &Error{Err: ErrUnterminatedString, Line: lx.startLine, Col: lx.startCol}
			return nil
		}
	}
	return lexStateError(err)
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.ignore()
	lx.startLine, lx.startCol = lx.line, lx.col+1
	if lx.newline {
		lx.startLine, lx.startCol = lx.line+1, 1
	}
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
