package lexer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerLazy(t *testing.T) {
	lx := New(bytes.NewReader([]byte(`(1 2 "unterminated`)))

	require.True(t, lx.Next())
	assert.Equal(t, TokenOpenExpression, lx.Token().Type())
	assert.NoError(t, lx.Err())

	require.True(t, lx.Next())
	assert.Equal(t, "1", lx.Token().Text())

	require.True(t, lx.Next())
	assert.Equal(t, "2", lx.Token().Text())
	assert.NoError(t, lx.Err())

	assert.False(t, lx.Next())
	assert.ErrorIs(t, lx.Err(), ErrUnterminatedString)

	assert.False(t, lx.Next())
}

func TestScannerReset(t *testing.T) {
	lx := New(bytes.NewReader([]byte(`(+ 1 2)`)))

	collect := func() []string {
		texts := []string{}
		for lx.Next() {
			texts = append(texts, lx.Token().Text())
		}
		return texts
	}

	first := collect()
	assert.Equal(t, []string{"(", "+", "1", "2", ")", ""}, first)
	assert.False(t, lx.Next())

	require.NoError(t, lx.Reset())
	assert.Equal(t, first, collect())
}

func TestScannerResetNotSeekable(t *testing.T) {
	r, w := io.Pipe()
	defer r.Close()
	defer w.Close()

	lx := New(r)
	assert.ErrorIs(t, lx.Reset(), ErrNotRestartable)
}
