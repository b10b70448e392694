package lisper

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const variadic = -1

var builtins = []*Builtin{
	{Name: "+", MinArgs: 0, MaxArgs: variadic, Fn: builtinAdd},
	{Name: "-", MinArgs: 1, MaxArgs: variadic, Fn: builtinSub},
	{Name: "*", MinArgs: 0, MaxArgs: variadic, Fn: builtinMul},
	{Name: "/", MinArgs: 2, MaxArgs: variadic, Fn: builtinDiv},
	{Name: "mod", MinArgs: 2, MaxArgs: 2, Fn: builtinMod},

	{Name: "=", MinArgs: 0, MaxArgs: variadic, Fn: builtinEqual},
	{Name: "!=", MinArgs: 0, MaxArgs: variadic, Fn: builtinNotEqual},
	{Name: "<", MinArgs: 0, MaxArgs: variadic, Fn: compareInts(func(a, b int64) bool { return a < b })},
	{Name: "<=", MinArgs: 0, MaxArgs: variadic, Fn: compareInts(func(a, b int64) bool { return a <= b })},
	{Name: ">", MinArgs: 0, MaxArgs: variadic, Fn: compareInts(func(a, b int64) bool { return a > b })},
	{Name: ">=", MinArgs: 0, MaxArgs: variadic, Fn: compareInts(func(a, b int64) bool { return a >= b })},
	{Name: "not", MinArgs: 1, MaxArgs: 1, Fn: builtinNot},

	{Name: "print", MinArgs: 1, MaxArgs: 1, Fn: builtinPrint},

	{Name: "list", MinArgs: 0, MaxArgs: variadic, Fn: builtinList},
	{Name: "len", MinArgs: 1, MaxArgs: 1, Fn: builtinLen},
	{Name: "concat", MinArgs: 0, MaxArgs: variadic, Fn: builtinConcat},
	{Name: "first", MinArgs: 1, MaxArgs: 1, Fn: builtinFirst},
	{Name: "rest", MinArgs: 1, MaxArgs: 1, Fn: builtinRest},
}

func defineBuiltins(env *Env) {
	for _, b := range builtins {
		env.Set(b.Name, NewBuiltinValue(b))
	}
}

func typeError(i int, expected ValueType, got *Value) *Error {
	return newError(ErrType, "", "argument %d must be %s, got %s %v", i+1, expected, got.Type, got)
}

func expectInts(args []*Value) ([]int64, error) {
	ints := make([]int64, 0, len(args))
	for i := range args {
		if args[i].Type != ValueTypeInt {
			return nil, typeError(i, ValueTypeInt, args[i])
		}
		ints = append(ints, args[i].Int())
	}
	return ints, nil
}

func expectList(args []*Value, i int) ([]*Value, error) {
	if args[i].Type != ValueTypeList {
		return nil, typeError(i, ValueTypeList, args[i])
	}
	return args[i].List(), nil
}

func builtinAdd(in *Interpreter, args []*Value) (*Value, error) {
	ints, err := expectInts(args)
	if err != nil {
		return nil, err
	}
	sum := int64(0)
	for _, n := range ints {
		sum += n
	}
	return NewIntValue(sum), nil
}

func builtinSub(in *Interpreter, args []*Value) (*Value, error) {
	ints, err := expectInts(args)
	if err != nil {
		return nil, err
	}
	if len(ints) == 1 {
		return NewIntValue(-ints[0]), nil
	}
	result := ints[0]
	for _, n := range ints[1:] {
		result -= n
	}
	return NewIntValue(result), nil
}

func builtinMul(in *Interpreter, args []*Value) (*Value, error) {
	ints, err := expectInts(args)
	if err != nil {
		return nil, err
	}
	product := int64(1)
	for _, n := range ints {
		product *= n
	}
	return NewIntValue(product), nil
}

func builtinDiv(in *Interpreter, args []*Value) (*Value, error) {
	ints, err := expectInts(args)
	if err != nil {
		return nil, err
	}
	result := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return nil, newError(ErrDivideByZero, "", "")
		}
		result /= n
	}
	return NewIntValue(result), nil
}

func builtinMod(in *Interpreter, args []*Value) (*Value, error) {
	ints, err := expectInts(args)
	if err != nil {
		return nil, err
	}
	if ints[1] == 0 {
		return nil, newError(ErrDivideByZero, "", "")
	}
	return NewIntValue(ints[0] % ints[1]), nil
}

func allEqual(args []*Value) bool {
	for i := 1; i < len(args); i++ {
		if !args[0].Equal(args[i]) {
			return false
		}
	}
	return true
}

func builtinEqual(in *Interpreter, args []*Value) (*Value, error) {
	return NewBoolValue(allEqual(args)), nil
}

func builtinNotEqual(in *Interpreter, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return False, nil
	}
	return NewBoolValue(!allEqual(args)), nil
}

// compareInts checks the predicate on each pair of adjacent arguments.
func compareInts(predicate func(a, b int64) bool) Function {
	return func(in *Interpreter, args []*Value) (*Value, error) {
		ints, err := expectInts(args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ints); i++ {
			if !predicate(ints[i-1], ints[i]) {
				return False, nil
			}
		}
		return True, nil
	}
}

func builtinNot(in *Interpreter, args []*Value) (*Value, error) {
	return NewBoolValue(!args[0].Truthy()), nil
}

func builtinPrint(in *Interpreter, args []*Value) (*Value, error) {
	if _, err := fmt.Fprintln(in.out, args[0].Display()); err != nil {
		return nil, err
	}
	return args[0], nil
}

func builtinList(in *Interpreter, args []*Value) (*Value, error) {
	list := make([]*Value, len(args))
	copy(list, args)
	return NewListValue(list), nil
}

func builtinLen(in *Interpreter, args []*Value) (*Value, error) {
	switch args[0].Type {
	case ValueTypeList:
		return NewIntValue(int64(len(args[0].List()))), nil
	case ValueTypeString:
		return NewIntValue(int64(utf8.RuneCountInString(args[0].Text()))), nil
	}
	return nil, newError(ErrType, "", "argument 1 must be list or string, got %s %v", args[0].Type, args[0])
}

// concat joins strings with strings or lists with lists.
func builtinConcat(in *Interpreter, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return NewListValue(nil), nil
	}

	switch args[0].Type {
	case ValueTypeString:
		var b strings.Builder
		for i := range args {
			if args[i].Type != ValueTypeString {
				return nil, typeError(i, ValueTypeString, args[i])
			}
			b.WriteString(args[i].Text())
		}
		return NewStringValue(b.String()), nil

	case ValueTypeList:
		list := []*Value{}
		for i := range args {
			items, err := expectList(args, i)
			if err != nil {
				return nil, err
			}
			list = append(list, items...)
		}
		return NewListValue(list), nil
	}

	return nil, newError(ErrType, "", "argument 1 must be list or string, got %s %v", args[0].Type, args[0])
}

func builtinFirst(in *Interpreter, args []*Value) (*Value, error) {
	list, err := expectList(args, 0)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return Nil, nil
	}
	return list[0], nil
}

func builtinRest(in *Interpreter, args []*Value) (*Value, error) {
	list, err := expectList(args, 0)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return NewListValue(nil), nil
	}
	rest := make([]*Value, len(list)-1)
	copy(rest, list[1:])
	return NewListValue(rest), nil
}
