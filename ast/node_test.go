package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisper/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenInteger, "42", 1, 1)

	node := New(token, NewIntValue(42))
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Equal(t, NodeTypeInt, node.Type())
	assert.Equal(t, int64(42), node.Int())
	assert.Equal(t, "42", node.Encode())

	line, col := node.Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestNodeList(t *testing.T) {
	token := lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1)

	children := []*Node{
		New(nil, NewSymbolValue("print")),
		New(nil, NewStringValue("hi\n")),
		New(nil, NewBoolValue(true)),
	}
	list := NewList(token, children)

	assert.True(t, list.IsVector())
	assert.Len(t, list.List(), 3)
	assert.True(t, list.List()[0].IsSymbol("print"))
	assert.False(t, list.List()[1].IsSymbol("print"))
	assert.Equal(t, `(print "hi\n" true)`, list.Encode())

	children[0] = New(nil, NewIntValue(1))
	assert.True(t, list.List()[0].IsSymbol("print"), "list must not share the caller's slice")
}

func TestNodePosWithoutToken(t *testing.T) {
	line, col := New(nil, NewIntValue(1)).Pos()
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestEncodeAll(t *testing.T) {
	nodes := []*Node{
		NewList(nil, []*Node{
			New(nil, NewSymbolValue("-")),
			New(nil, NewIntValue(-3)),
			NewList(nil, nil),
		}),
		New(nil, NewBoolValue(false)),
	}
	assert.Equal(t, "(- -3 ()) false", string(EncodeAll(nodes)))
}

func TestPrint(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1)
	node := NewList(tok, []*Node{
		New(lexer.NewToken(lexer.TokenSymbol, "fact", 1, 2), NewSymbolValue("fact")),
		New(lexer.NewToken(lexer.TokenInteger, "5", 1, 7), NewIntValue(5)),
	})

	var buf bytes.Buffer
	Print(&buf, node)

	expected := "(list): (<open_expression \"(\" 1:1>)\n" +
		"    (symbol): \"fact\" (<symbol \"fact\" 1:2>)\n" +
		"    (int): 5 (<integer \"5\" 1:7>)\n"
	assert.Equal(t, expected, buf.String())
}
