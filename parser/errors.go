package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lisper/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is a syntax error found at a token.
type Error struct {
	Err   error
	Token *lexer.Token
	Msg   string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Msg != "" {
		msg = msg + ": " + e.Msg
	}
	if e.Token.Is(lexer.TokenEOF) {
		return fmt.Sprintf("%s: %s", e.Token.Position(), msg)
	}
	return fmt.Sprintf("%s: %s %q", e.Token.Position(), msg, e.Token.Text())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parserError(err error, tok *lexer.Token, format string, args ...interface{}) error {
	return &Error{
		Err:   err,
		Token: tok,
		Msg:   fmt.Sprintf(format, args...),
	}
}
