// Package repl implements an interactive read-evaluate-print loop on top of
// a lisper.Interpreter.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lisper"
	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
	"github.com/xiam/lisper/parser"
)

const (
	PromptMain = "> "
	PromptCont = "... "

	HistoryFile = ".lisper_history"
)

// LineReader reads one line of input at a time. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
}

// REPL evaluates what it reads in a single interpreter session, so
// definitions persist from one input to the next.
type REPL struct {
	in  *lisper.Interpreter
	lr  LineReader
	out io.Writer
}

func New(in *lisper.Interpreter, lr LineReader, out io.Writer) *REPL {
	return &REPL{
		in:  in,
		lr:  lr,
		out: out,
	}
}

// Run loops until the input ends or the user types exit or :quit. Errors
// from evaluating the input are printed and the loop goes on.
func (r *REPL) Run() error {
	for {
		src, nodes, err := r.read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case "exit", ":quit":
			return nil
		}

		r.lr.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if nodes == nil {
			// src had a syntax error, it's been reported already
			continue
		}
		for _, node := range nodes {
			value, err := r.in.Eval(node)
			if err != nil {
				r.printError(err)
				break
			}
			fmt.Fprintln(r.out, value)
		}
	}
}

// read collects lines until they form complete expressions. An expression
// left open continues on the PromptCont prompt.
func (r *REPL) read() (string, []*ast.Node, error) {
	var b strings.Builder

	for {
		prompt := PromptMain
		if b.Len() > 0 {
			prompt = PromptCont
		}

		line, err := r.lr.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				// discard pending input
				return "", nil, nil
			}
			return "", nil, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		nodes, err := parser.Parse([]byte(src))
		if err == nil {
			return src, nodes, nil
		}
		if isIncomplete(err) {
			continue
		}

		r.printError(err)
		return src, nil, nil
	}
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "error: %v\n", err)
}

func isIncomplete(err error) bool {
	return errors.Is(err, parser.ErrUnexpectedEOF) || errors.Is(err, lexer.ErrUnterminatedString)
}

// HistoryPath returns the location of the history file in the user's home
// directory, or an empty string if there's no home directory.
func HistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HistoryFile)
}

// RunTerminal runs the loop on the terminal with line editing. Ctrl+C
// discards the pending input. History is loaded from and saved to
// historyPath unless it's empty.
func RunTerminal(in *lisper.Interpreter, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return New(in, ln, os.Stdout).Run()
}
