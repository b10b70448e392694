package lisper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lisper/parser"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		In      *Value
		String  string
		Display string
	}{
		{Nil, "nil", "nil"},
		{NewIntValue(-42), "-42", "-42"},
		{True, "true", "true"},
		{False, "false", "false"},
		{NewSymbolValue("fact"), "fact", "fact"},
		{NewStringValue("a \"b\""), `"a \"b\""`, `a "b"`},
		{
			NewListValue([]*Value{NewIntValue(1), NewStringValue("x"), NewListValue(nil)}),
			`(1 "x" ())`,
			`(1 x ())`,
		},
		{NewClosureValue(&Closure{}), "<lambda>", "<lambda>"},
		{NewClosureValue(&Closure{Name: "fact"}), "<lambda fact>", "<lambda fact>"},
		{NewBuiltinValue(&Builtin{Name: "+"}), "<builtin +>", "<builtin +>"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].String, testCases[i].In.String())
		assert.Equal(t, testCases[i].Display, testCases[i].In.Display())
	}
}

func TestValueTruthy(t *testing.T) {
	falsy := []*Value{
		Nil,
		False,
		NewIntValue(0),
		NewStringValue(""),
		NewListValue(nil),
	}
	for i := range falsy {
		assert.False(t, falsy[i].Truthy(), "%v", falsy[i])
	}

	truthy := []*Value{
		True,
		NewIntValue(-1),
		NewIntValue(7),
		NewStringValue("0"),
		NewSymbolValue("x"),
		NewListValue([]*Value{Nil}),
		NewClosureValue(&Closure{}),
		NewBuiltinValue(&Builtin{}),
	}
	for i := range truthy {
		assert.True(t, truthy[i].Truthy(), "%v", truthy[i])
	}
}

func TestValueEqual(t *testing.T) {
	fn := NewClosureValue(&Closure{Name: "f"})

	assert.True(t, NewIntValue(3).Equal(NewIntValue(3)))
	assert.False(t, NewIntValue(3).Equal(NewIntValue(4)))
	assert.False(t, NewIntValue(1).Equal(True))
	assert.False(t, NewSymbolValue("a").Equal(NewStringValue("a")))
	assert.True(t, NewStringValue("a").Equal(NewStringValue("a")))
	assert.True(t, Nil.Equal(Nil))
	assert.True(t, fn.Equal(fn))
	assert.False(t, fn.Equal(NewClosureValue(&Closure{Name: "f"})))

	a := NewListValue([]*Value{NewIntValue(1), NewListValue([]*Value{True})})
	b := NewListValue([]*Value{NewIntValue(1), NewListValue([]*Value{True})})
	c := NewListValue([]*Value{NewIntValue(1)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestValueRoundTrip(t *testing.T) {
	values := []*Value{
		NewIntValue(0),
		NewIntValue(-9223372036854775808),
		NewIntValue(9223372036854775807),
		True,
		False,
		NewStringValue("line\nbreak"),
	}

	for i := range values {
		nodes, err := parser.Parse([]byte(values[i].String()))
		require.NoError(t, err)
		require.Len(t, nodes, 1)

		v, err := New().Eval(nodes[0])
		require.NoError(t, err)
		assert.True(t, values[i].Equal(v), "%v != %v", values[i], v)
	}
}

func TestNewValue(t *testing.T) {
	testCases := []struct {
		In   interface{}
		Type ValueType
	}{
		{nil, ValueTypeNil},
		{1, ValueTypeInt},
		{int64(1), ValueTypeInt},
		{true, ValueTypeBool},
		{"s", ValueTypeString},
		{[]*Value{}, ValueTypeList},
		{&Closure{}, ValueTypeClosure},
		{&Builtin{}, ValueTypeBuiltin},
	}

	for i := range testCases {
		v, err := NewValue(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Type, v.Type)
	}

	_, err := NewValue(1.5)
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	nodes, err := parser.Parse([]byte(`(a 1 "s" (true ()))`))
	require.NoError(t, err)

	v := Quote(nodes[0])
	assert.Equal(t, ValueTypeList, v.Type)
	assert.Equal(t, `(a 1 "s" (true ()))`, v.String())
	assert.Equal(t, ValueTypeSymbol, v.List()[0].Type)
}
