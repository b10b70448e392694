// Package lisper implements a small LISP-family interpreter: source text is
// split into tokens by package lexer, turned into expression trees by package
// parser and evaluated here against a chain of lexical scopes.
//
// Numbers are int64, arithmetic wraps on overflow. In conditions false, nil,
// 0, "" and () are false and everything else is true.
package lisper

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/parser"
)

// DefaultMaxDepth is the default limit of nested procedure calls.
const DefaultMaxDepth = 10000

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets where print writes to, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithLogger enables tracing of procedure calls and definitions.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithMaxDepth sets how many procedure calls may be nested before evaluation
// fails with ErrStackOverflow.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		in.maxDepth = n
	}
}

// Interpreter is an interpreting session. It holds the global scope, which
// persists across calls to Eval. An Interpreter must not be used from more
// than one goroutine at a time.
type Interpreter struct {
	global *Env

	out    io.Writer
	logger *log.Logger

	maxDepth int
	depth    int
}

// New creates an interpreter whose global scope holds only the built-ins.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		out:      os.Stdout,
		logger:   log.New(io.Discard, "", 0),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.Reset()
	return in
}

// Reset discards every user definition.
func (in *Interpreter) Reset() {
	in.global = NewEnv(nil).Name("global")
	defineBuiltins(in.global)
}

// Global returns the global scope.
func (in *Interpreter) Global() *Env {
	return in.global
}

// Eval evaluates an expression in the global scope.
func (in *Interpreter) Eval(node *ast.Node) (*Value, error) {
	return in.EvalIn(in.global, node)
}

// EvalIn evaluates an expression in the given scope.
func (in *Interpreter) EvalIn(env *Env, node *ast.Node) (*Value, error) {
	in.depth = 0
	return in.eval(env, node)
}

// EvalAll evaluates expressions in order in the global scope and returns the
// value of the last one. It stops at the first error.
func (in *Interpreter) EvalAll(nodes []*ast.Node) (*Value, error) {
	result := Nil
	for i := range nodes {
		value, err := in.Eval(nodes[i])
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

// Run parses the whole program read from r and then evaluates it. Nothing
// is evaluated if the program has a syntax error.
func (in *Interpreter) Run(r io.Reader) (*Value, error) {
	nodes, err := parser.New(r).ParseAll()
	if err != nil {
		return nil, err
	}
	return in.EvalAll(nodes)
}

// EvalString runs the given source text, see Run.
func (in *Interpreter) EvalString(src string) (*Value, error) {
	return in.Run(bytes.NewReader([]byte(src)))
}
