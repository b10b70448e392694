package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisper"
)

func main() {
	in := lisper.New()

	// a procedure implemented in Go
	in.Global().Set("upcase", lisper.NewBuiltinValue(&lisper.Builtin{
		Name:    "upcase",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(in *lisper.Interpreter, args []*lisper.Value) (*lisper.Value, error) {
			if args[0].Type != lisper.ValueTypeString {
				return nil, fmt.Errorf("%w: expected string", lisper.ErrType)
			}
			return lisper.NewStringValue(strings.ToUpper(args[0].Text())), nil
		},
	}))

	value, err := in.EvalString(`
		(defun shout (s) (concat (upcase s) "!"))
		(shout "hello")
	`)
	if err != nil {
		log.Fatal("EvalString:", err)
	}
	fmt.Println(value)

	// calling a lisp procedure from Go
	double, err := in.EvalString(`(lambda (x) (* x 2))`)
	if err != nil {
		log.Fatal("EvalString:", err)
	}
	value, err = in.Apply(double, []*lisper.Value{lisper.NewIntValue(21)})
	if err != nil {
		log.Fatal("Apply:", err)
	}
	fmt.Println(value)
}
