package lisper

import (
	"errors"
	"strconv"

	"github.com/xiam/lisper/ast"
)

const (
	keywordLambda = "lambda"
	anonymousName = "lambda"
)

type specialForm func(in *Interpreter, env *Env, args []*ast.Node) (*Value, error)

// Special forms are recognized by the name at the head of a list and take
// precedence over any binding with the same name.
var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"quote":       evalQuote,
		"if":          evalIf,
		keywordLambda: evalLambda,
		"defun":       evalDefun,
		"def":         evalDef,
		"set!":        evalSet,
		"begin":       evalBegin,
		"and":         evalAnd,
		"or":          evalOr,
	}
}

func (in *Interpreter) eval(env *Env, node *ast.Node) (*Value, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		return NewIntValue(node.Int()), nil

	case ast.NodeTypeBool:
		return NewBoolValue(node.Bool()), nil

	case ast.NodeTypeString:
		return NewStringValue(node.Text()), nil

	case ast.NodeTypeSymbol:
		value, err := env.Get(node.Text())
		if err != nil {
			return nil, withPos(err, node)
		}
		return value, nil

	case ast.NodeTypeList:
		return in.evalList(env, node)
	}

	return nil, nodeError(node, ErrSyntax, "", "unknown expression %v", node)
}

func (in *Interpreter) evalList(env *Env, node *ast.Node) (*Value, error) {
	list := node.List()
	if len(list) == 0 {
		return NewListValue(nil), nil
	}

	head := list[0]
	if head.Type() == ast.NodeTypeSymbol {
		if form, ok := specialForms[head.Text()]; ok {
			value, err := form(in, env, list[1:])
			if err != nil {
				return nil, withPos(err, node)
			}
			return value, nil
		}
	}

	fn, err := in.eval(env, head)
	if err != nil {
		return nil, err
	}
	if !fn.IsCallable() {
		return nil, nodeError(node, ErrNotCallable, "", "%v", fn)
	}

	args := make([]*Value, 0, len(list)-1)
	for _, arg := range list[1:] {
		value, err := in.eval(env, arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	value, err := in.apply(fn, args)
	if err != nil {
		return nil, withPos(err, node)
	}
	return value, nil
}

// Apply calls a procedure value with already evaluated arguments.
func (in *Interpreter) Apply(fn *Value, args []*Value) (*Value, error) {
	return in.apply(fn, args)
}

func (in *Interpreter) apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.Type {
	case ValueTypeBuiltin:
		b := fn.Builtin()
		if len(args) < b.MinArgs || (b.MaxArgs >= 0 && len(args) > b.MaxArgs) {
			return nil, arityError(b.Name, arityString(b.MinArgs, b.MaxArgs), len(args))
		}
		value, err := b.Fn(in, args)
		if err != nil {
			var e *Error
			if errors.As(err, &e) && e.Op == "" {
				e.Op = b.Name
			}
			return nil, err
		}
		return value, nil

	case ValueTypeClosure:
		return in.call(fn.Closure(), args)
	}

	return nil, newError(ErrNotCallable, "", "%v", fn)
}

func (in *Interpreter) call(fn *Closure, args []*Value) (*Value, error) {
	name := fn.Name
	if name == "" {
		name = anonymousName
	}

	if len(args) != len(fn.Params) {
		return nil, arityError(name, strconv.Itoa(len(fn.Params)), len(args))
	}
	if in.depth >= in.maxDepth {
		return nil, newError(ErrStackOverflow, name, "limit is %d nested calls", in.maxDepth)
	}

	in.depth++
	defer func() {
		in.depth--
	}()

	in.logger.Printf("call: (%s %v) depth=%d", name, args, in.depth)

	scope := fn.Env.Child().Name(name)
	for i, param := range fn.Params {
		scope.Set(param, args[i])
	}

	return in.evalBody(scope, fn.Body)
}

func (in *Interpreter) evalBody(env *Env, body []*ast.Node) (*Value, error) {
	result := Nil
	for i := range body {
		value, err := in.eval(env, body[i])
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

func arityString(min, max int) string {
	switch {
	case max < 0:
		return "at least " + strconv.Itoa(min)
	case min == max:
		return strconv.Itoa(min)
	}
	return strconv.Itoa(min) + " to " + strconv.Itoa(max)
}

// (quote expr)
func evalQuote(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	if len(args) != 1 {
		return nil, newError(ErrSyntax, "quote", "expected (quote expr)")
	}
	return Quote(args[0]), nil
}

// (if cond then [else])
func evalIf(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, newError(ErrSyntax, "if", "expected (if cond then [else])")
	}

	cond, err := in.eval(env, args[0])
	if err != nil {
		return nil, err
	}

	if cond.Truthy() {
		return in.eval(env, args[1])
	}
	if len(args) == 3 {
		return in.eval(env, args[2])
	}
	return Nil, nil
}

// (lambda (params...) body...)
func evalLambda(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	fn, err := newClosure(env, keywordLambda, "", args)
	if err != nil {
		return nil, err
	}
	return NewClosureValue(fn), nil
}

// (defun name (lambda (params...) body...)) or (defun name (params...) body...)
func evalDefun(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	if len(args) < 2 || args[0].Type() != ast.NodeTypeSymbol {
		return nil, newError(ErrSyntax, "defun", "expected (defun name (lambda (params...) body...))")
	}
	name := args[0].Text()

	def := args[1:]
	if len(def) == 1 && def[0].Type() == ast.NodeTypeList {
		if lambda := def[0].List(); len(lambda) > 0 && lambda[0].IsSymbol(keywordLambda) {
			def = lambda[1:]
		}
	}

	fn, err := newClosure(env, "defun", name, def)
	if err != nil {
		return nil, err
	}

	// the closure captures env itself, so the name is visible to the body
	// once it's bound here
	env.Set(name, NewClosureValue(fn))
	in.logger.Printf("define: %s in %v", name, env)

	return NewSymbolValue(name), nil
}

func newClosure(env *Env, op string, name string, args []*ast.Node) (*Closure, error) {
	if len(args) < 2 || args[0].Type() != ast.NodeTypeList {
		return nil, newError(ErrSyntax, op, "expected a parameter list and a body")
	}

	params := []string{}
	seen := map[string]bool{}
	for _, param := range args[0].List() {
		if param.Type() != ast.NodeTypeSymbol {
			return nil, nodeError(param, ErrSyntax, op, "parameter %v is not a symbol", param.Encode())
		}
		if seen[param.Text()] {
			return nil, nodeError(param, ErrSyntax, op, "duplicate parameter %s", param.Text())
		}
		seen[param.Text()] = true
		params = append(params, param.Text())
	}

	return &Closure{
		Name:   name,
		Params: params,
		Body:   args[1:],
		Env:    env,
	}, nil
}

// (def name expr)
func evalDef(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	if len(args) != 2 || args[0].Type() != ast.NodeTypeSymbol {
		return nil, newError(ErrSyntax, "def", "expected (def name expr)")
	}
	name := args[0].Text()

	value, err := in.eval(env, args[1])
	if err != nil {
		return nil, err
	}

	env.Set(name, value)
	in.logger.Printf("define: %s = %v in %v", name, value, env)

	return NewSymbolValue(name), nil
}

// (set! name expr)
func evalSet(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	if len(args) != 2 || args[0].Type() != ast.NodeTypeSymbol {
		return nil, newError(ErrSyntax, "set!", "expected (set! name expr)")
	}
	name := args[0].Text()

	value, err := in.eval(env, args[1])
	if err != nil {
		return nil, err
	}

	if err := env.Assign(name, value); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op = "set!"
		}
		return nil, withPos(err, args[0])
	}

	return value, nil
}

// (begin expr...)
func evalBegin(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	return in.evalBody(env, args)
}

// (and expr...)
func evalAnd(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	for i := range args {
		value, err := in.eval(env, args[i])
		if err != nil {
			return nil, err
		}
		if !value.Truthy() {
			return False, nil
		}
	}
	return True, nil
}

// (or expr...)
func evalOr(in *Interpreter, env *Env, args []*ast.Node) (*Value, error) {
	for i := range args {
		value, err := in.eval(env, args[i])
		if err != nil {
			return nil, err
		}
		if value.Truthy() {
			return True, nil
		}
	}
	return False, nil
}
