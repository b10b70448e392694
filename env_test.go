package lisper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvCreate(t *testing.T) {
	env := NewEnv(nil)
	assert.NotNil(t, env)
	assert.Nil(t, env.Parent)
}

func TestEnvSetGet(t *testing.T) {
	env := NewEnv(nil)

	{
		v, err := env.Get("foo")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnbound))
		assert.Nil(t, v)
	}

	{
		env.Set("foo", True)

		v, err := env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, True, v)
	}
}

func TestEnvChild(t *testing.T) {
	env := NewEnv(nil)
	child := env.Child()
	require.Equal(t, env, child.Parent)

	env.Set("foo", True)

	{
		v, err := child.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, True, v)
	}

	{
		child.Set("foo", False)

		v, err := child.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, False, v)

		v, err = env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, True, v, "Set must not escape to the parent scope")
	}

	{
		child.Set("bar", True)

		_, err := env.Get("bar")
		assert.True(t, errors.Is(err, ErrUnbound))
	}
}

func TestEnvAssign(t *testing.T) {
	global := NewEnv(nil)
	middle := global.Child()
	inner := middle.Child()

	global.Set("x", NewIntValue(1))
	middle.Set("x", NewIntValue(2))

	require.NoError(t, inner.Assign("x", NewIntValue(3)))

	v, err := middle.Get("x")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())

	v, err = global.Get("x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int(), "only the innermost binding changes")

	_, err = inner.Get("x")
	require.NoError(t, err)

	err = inner.Assign("missing", Nil)
	assert.True(t, errors.Is(err, ErrUnbound))
	assert.Equal(t, "unbound symbol: missing", err.Error())
}
