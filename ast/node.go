package ast

import (
	"fmt"

	"github.com/xiam/lisper/lexer"
)

// Node represents leaf of the AST. Nodes are never modified after they're
// built.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns a value node based on the given token
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list" holding a copy of the
// given children.
func NewList(tok *lexer.Token, children []*Node) *Node {
	list := make([]*Node, len(children))
	copy(list, children)
	return newNode(NodeTypeList, tok, list)
}

// Token returns the token associated to the node
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the line and column where the node starts, or zeroes for
// nodes that were not read from source.
func (n *Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n *Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if v, ok := n.v.(Valuer); ok {
		return v.Value()
	}
	return n.v
}

// Int returns the value of an int node
func (n *Node) Int() int64 {
	return n.Value().(int64)
}

// Bool returns the value of a bool node
func (n *Node) Bool() bool {
	return n.Value().(bool)
}

// Text returns the name of a symbol node or the contents of a string node
func (n *Node) Text() string {
	return n.Value().(string)
}

// IsSymbol returns true if the node is the symbol with the given name
func (n *Node) IsSymbol(name string) bool {
	return n.nt == NodeTypeSymbol && n.Text() == name
}

// List returns all the children elements of the node. The returned slice is
// shared with the node and must not be modified.
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Encode returns the encoded value of the node
func (n *Node) Encode() string {
	return string(Encode(n))
}

func (n *Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.Value())
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}
