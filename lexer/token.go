package lexer

import (
	"fmt"
)

// Token is a lexeme together with its type and the position of its first
// rune. Lines and columns start at 1.
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column where the token starts.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Position formats Pos as "line:col".
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.line, t.col)
}

// Text returns the token exactly as it appears in the source, string
// literals include their quotes and escapes.
func (t Token) Text() string {
	return t.lexeme
}

func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("<%v %q %s>", tokenName(t.tt), t.lexeme, t.Position())
}
