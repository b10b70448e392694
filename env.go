package lisper

import (
	"fmt"
	"sync/atomic"
)

var envID = uint64(0)

// Env is a lexical scope: a table of bindings plus a link to the enclosing
// scope. Closures keep a pointer to the Env they were created in, so a scope
// stays alive for as long as any closure or running call refers to it.
type Env struct {
	id   uint64
	name string

	Parent *Env

	st *symbolTable
}

// NewEnv creates a scope nested in parent. A nil parent creates a root scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		id:     atomic.AddUint64(&envID, 1),
		Parent: parent,
		st:     newSymbolTable(),
	}
}

// Name labels the scope for tracing.
func (env *Env) Name(name string) *Env {
	env.name = name
	return env
}

// Child creates a new scope whose parent is env.
func (env *Env) Child() *Env {
	return NewEnv(env)
}

// Set binds name in this scope only, replacing any previous binding in it.
func (env *Env) Set(name string, value *Value) {
	env.st.Set(name, value)
}

// Get looks name up from this scope outwards.
func (env *Env) Get(name string) (*Value, error) {
	for e := env; e != nil; e = e.Parent {
		if value, ok := e.st.Get(name); ok {
			return value, nil
		}
	}
	return nil, newError(ErrUnbound, "", "%s", name)
}

// Assign replaces the binding of name in the innermost scope that has one.
func (env *Env) Assign(name string, value *Value) error {
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.st.Get(name); ok {
			e.st.Set(name, value)
			return nil
		}
	}
	return newError(ErrUnbound, "", "%s", name)
}

func (env *Env) String() string {
	return fmt.Sprintf("[%v]: %q (%p)", env.id, env.name, env)
}
