package repl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lisper"
)

type input struct {
	line string
	err  error
}

type fakeReader struct {
	inputs  []input
	prompts []string
	history []string
}

func newFakeReader(lines ...string) *fakeReader {
	fr := &fakeReader{}
	for _, line := range lines {
		fr.inputs = append(fr.inputs, input{line: line})
	}
	return fr
}

func (fr *fakeReader) Prompt(prompt string) (string, error) {
	fr.prompts = append(fr.prompts, prompt)
	if len(fr.inputs) == 0 {
		return "", io.EOF
	}
	next := fr.inputs[0]
	fr.inputs = fr.inputs[1:]
	return next.line, next.err
}

func (fr *fakeReader) AppendHistory(line string) {
	fr.history = append(fr.history, line)
}

func runREPL(t *testing.T, fr *fakeReader) string {
	var out bytes.Buffer
	in := lisper.New(lisper.WithOutput(&out))

	err := New(in, fr, &out).Run()
	require.NoError(t, err)

	return out.String()
}

func TestREPL(t *testing.T) {
	fr := newFakeReader(
		`(+ 1 2)`,
		`(defun fact (lambda (n) (if (= n 0) 1 (* n (fact (- n 1))))))`,
		`(fact 5)`,
		`"hello"`,
		`(print "hello")`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "3\nfact\n120\n\"hello\"\nhello\n\"hello\"\n", out)
	assert.Len(t, fr.history, 5)
}

func TestREPLErrorsKeepSession(t *testing.T) {
	fr := newFakeReader(
		`(def x 5)`,
		`(undefined)`,
		`(1 2 3)`,
		`x`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "x\nerror: 1:2: unbound symbol: undefined\nerror: 1:1: value is not callable: 1\n5\n", out)
}

func TestREPLMultiline(t *testing.T) {
	fr := newFakeReader(
		`(defun add (a b)`,
		`  (+ a b))`,
		`(add 2`,
		`3)`,
		`(concat "multi`,
		`line")`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "add\n5\n\"multi\\nline\"\n", out)
	assert.Equal(t, []string{
		PromptMain, PromptCont,
		PromptMain, PromptCont,
		PromptMain, PromptCont,
		PromptMain,
	}, fr.prompts)
	assert.Equal(t, "(defun add (a b)   (+ a b))", fr.history[0])
}

func TestREPLSyntaxError(t *testing.T) {
	fr := newFakeReader(
		`)`,
		`(+ 1 1)`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "error: 1:1: unexpected token: no matching open parenthesis \")\"\n2\n", out)
}

func TestREPLSeveralExpressionsPerLine(t *testing.T) {
	fr := newFakeReader(
		`(def a 1) (def b 2) (+ a b)`,
		`(print 1) (undefined) (print 2)`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "a\nb\n3\n1\n1\nerror: 1:12: unbound symbol: undefined\n", out)
}

func TestREPLQuit(t *testing.T) {
	for _, cmd := range []string{"exit", ":quit", "  exit  "} {
		fr := newFakeReader(
			`(+ 1 1)`,
			cmd,
			`(print "unreachable")`,
		)

		out := runREPL(t, fr)
		assert.Equal(t, "2\n", out)
		assert.Len(t, fr.inputs, 1)
	}
}

func TestREPLAbort(t *testing.T) {
	fr := &fakeReader{
		inputs: []input{
			{line: `(+ 1`},
			{err: liner.ErrPromptAborted},
			{line: `(+ 2 2)`},
		},
	}

	out := runREPL(t, fr)
	assert.Equal(t, "4\n", out)
	assert.Equal(t, []string{PromptMain, PromptCont, PromptMain, PromptMain}, fr.prompts)
}

func TestREPLReadError(t *testing.T) {
	errBroken := errors.New("broken terminal")
	fr := &fakeReader{
		inputs: []input{
			{err: errBroken},
		},
	}

	in := lisper.New(lisper.WithOutput(io.Discard))
	err := New(in, fr, io.Discard).Run()
	assert.True(t, errors.Is(err, errBroken))
}

func TestREPLBlankLines(t *testing.T) {
	fr := newFakeReader(
		``,
		`   `,
		`; just a comment`,
		`1`,
	)

	out := runREPL(t, fr)
	assert.Equal(t, "1\n", out)
	assert.Len(t, fr.history, 2)
}
