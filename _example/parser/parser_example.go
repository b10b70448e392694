package main

import (
	"log"
	"os"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/parser"
)

func main() {
	input := `(defun power (x n) (if (= n 0) 1 (* x (power x (- n 1))))) (print (power 2 3))`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for i := range nodes {
		ast.Print(os.Stdout, nodes[i])
	}
}
