package lisper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiam/lisper/ast"
)

// Function is the native implementation of a built-in procedure. Arguments
// arrive already evaluated, left to right.
type Function func(in *Interpreter, args []*Value) (*Value, error)

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeBool
	ValueTypeSymbol
	ValueTypeString
	ValueTypeList
	ValueTypeClosure
	ValueTypeBuiltin
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:     "nil",
	ValueTypeInt:     "int",
	ValueTypeBool:    "bool",
	ValueTypeSymbol:  "symbol",
	ValueTypeString:  "string",
	ValueTypeList:    "list",
	ValueTypeClosure: "closure",
	ValueTypeBuiltin: "builtin",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Closure is a user defined procedure together with the environment it was
// created in.
type Closure struct {
	Name   string
	Params []string
	Body   []*ast.Node
	Env    *Env
}

// Builtin is a procedure implemented in Go. MaxArgs < 0 means variadic.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      Function
}

// Value is a runtime value.
type Value struct {
	v    interface{}
	Type ValueType
}

var (
	Nil   = &Value{Type: ValueTypeNil}
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

func NewSymbolValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeSymbol}
}

func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

func NewListValue(v []*Value) *Value {
	if v == nil {
		v = []*Value{}
	}
	return &Value{v: v, Type: ValueTypeList}
}

func NewClosureValue(v *Closure) *Value {
	return &Value{v: v, Type: ValueTypeClosure}
}

func NewBuiltinValue(v *Builtin) *Value {
	return &Value{v: v, Type: ValueTypeBuiltin}
}

// NewValue wraps a Go value.
func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case int:
		return NewIntValue(int64(v)), nil
	case int64:
		return NewIntValue(v), nil
	case bool:
		return NewBoolValue(v), nil
	case string:
		return NewStringValue(v), nil
	case []*Value:
		return NewListValue(v), nil
	case *Closure:
		return NewClosureValue(v), nil
	case *Builtin:
		return NewBuiltinValue(v), nil
	case *Value:
		return v, nil
	}
	return Nil, fmt.Errorf("invalid value %v", value)
}

// Quote turns an unevaluated expression into data.
func Quote(node *ast.Node) *Value {
	switch node.Type() {
	case ast.NodeTypeInt:
		return NewIntValue(node.Int())
	case ast.NodeTypeBool:
		return NewBoolValue(node.Bool())
	case ast.NodeTypeSymbol:
		return NewSymbolValue(node.Text())
	case ast.NodeTypeString:
		return NewStringValue(node.Text())
	case ast.NodeTypeList:
		children := node.List()
		values := make([]*Value, 0, len(children))
		for i := range children {
			values = append(values, Quote(children[i]))
		}
		return NewListValue(values)
	}
	panic("unknown node type")
}

func (v *Value) Int() int64 {
	return v.v.(int64)
}

func (v *Value) Bool() bool {
	return v.v.(bool)
}

// Text returns the name of a symbol or the contents of a string.
func (v *Value) Text() string {
	return v.v.(string)
}

func (v *Value) List() []*Value {
	return v.v.([]*Value)
}

func (v *Value) Closure() *Closure {
	return v.v.(*Closure)
}

func (v *Value) Builtin() *Builtin {
	return v.v.(*Builtin)
}

// IsCallable reports whether the value can be applied to arguments.
func (v *Value) IsCallable() bool {
	return v.Type == ValueTypeClosure || v.Type == ValueTypeBuiltin
}

// Truthy reports whether the value counts as true in a condition. false, nil,
// 0, "" and () are falsy, anything else is truthy.
func (v *Value) Truthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeBool:
		return v.Bool()
	case ValueTypeInt:
		return v.Int() != 0
	case ValueTypeString:
		return v.Text() != ""
	case ValueTypeList:
		return len(v.List()) > 0
	}
	return true
}

// Equal compares values structurally. Procedures are only equal to
// themselves.
func (v *Value) Equal(w *Value) bool {
	if v == w {
		return true
	}
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeInt:
		return v.Int() == w.Int()
	case ValueTypeBool:
		return v.Bool() == w.Bool()
	case ValueTypeSymbol, ValueTypeString:
		return v.Text() == w.Text()
	case ValueTypeList:
		a, b := v.List(), w.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case ValueTypeClosure:
		return v.Closure() == w.Closure()
	case ValueTypeBuiltin:
		return v.Builtin() == w.Builtin()
	}
	return false
}

// String returns the textual representation of the value. Strings are
// quoted, so numbers, booleans and strings read back as equal values.
func (v *Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "nil"
	case ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case ValueTypeBool:
		return strconv.FormatBool(v.Bool())
	case ValueTypeSymbol:
		return v.Text()
	case ValueTypeString:
		return strconv.Quote(v.Text())
	case ValueTypeList:
		return v.joinList(func(item *Value) string { return item.String() })
	case ValueTypeClosure:
		fn := v.Closure()
		if fn.Name == "" {
			return "<lambda>"
		}
		return fmt.Sprintf("<lambda %s>", fn.Name)
	case ValueTypeBuiltin:
		return fmt.Sprintf("<builtin %s>", v.Builtin().Name)
	}
	return fmt.Sprintf("%v", v.v)
}

// Display is like String but writes strings without quotes, it's what print
// outputs.
func (v *Value) Display() string {
	switch v.Type {
	case ValueTypeString:
		return v.Text()
	case ValueTypeList:
		return v.joinList(func(item *Value) string { return item.Display() })
	}
	return v.String()
}

func (v *Value) joinList(format func(*Value) string) string {
	list := v.List()
	values := make([]string, 0, len(list))
	for i := range list {
		values = append(values, format(list[i]))
	}
	return "(" + strings.Join(values, " ") + ")"
}
