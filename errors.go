package lisper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiam/lisper/ast"
)

var (
	ErrUnbound       = errors.New("unbound symbol")
	ErrNotCallable   = errors.New("value is not callable")
	ErrArity         = errors.New("wrong number of arguments")
	ErrType          = errors.New("illegal argument")
	ErrSyntax        = errors.New("malformed special form")
	ErrDivideByZero  = errors.New("division by zero")
	ErrStackOverflow = errors.New("maximum recursion depth exceeded")
)

// Error is an evaluation error. Err is one of the sentinel errors above, Op
// names the form or procedure that failed.
type Error struct {
	Err  error
	Op   string
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Col)
	}
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, op string, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Op:  op,
		Msg: fmt.Sprintf(format, args...),
	}
}

func nodeError(node *ast.Node, err error, op string, format string, args ...interface{}) *Error {
	e := newError(err, op, format, args...)
	e.Line, e.Col = node.Pos()
	return e
}

// withPos fills in the position of an evaluation error that doesn't have one
// yet.
func withPos(err error, node *ast.Node) error {
	var e *Error
	if errors.As(err, &e) && e.Line == 0 {
		e.Line, e.Col = node.Pos()
	}
	return err
}

func arityError(op string, expected string, got int) *Error {
	return newError(ErrArity, op, "expected %s, got %d", expected, got)
}
