package ast

import (
	"strconv"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return strconv.FormatInt(n.v.(int64), 10)
	case NodeTypeBool:
		return strconv.FormatBool(n.v.(bool))
	case NodeTypeSymbol:
		return n.v.(string)
	case NodeTypeString:
		return strconv.Quote(n.v.(string))
	}

	panic("unreachable")
}

// NewStringValue creates a value of type string
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewIntValue creates a value of type int
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewBoolValue creates a value of type bool
func NewBoolValue(v bool) Valuer {
	return newNodeValue(NodeTypeBool, v)
}

// NewSymbolValue creates a value of type symbol
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

var _ = Valuer(&nodeValue{})
