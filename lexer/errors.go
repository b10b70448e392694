package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidEncoding    = errors.New("invalid UTF-8 encoding")
	ErrNotRestartable     = errors.New("input is not seekable")
)

// Error is a lexical error at a given position of the input.
type Error struct {
	Err  error
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
