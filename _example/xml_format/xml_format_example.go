package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/parser"
)

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Encode(), node.Type())
}

func main() {
	input := `(defun greet (name) (concat "Hello, " name "! 😊")) (print (greet "world"))`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	fmt.Println("<program>")
	for i := range nodes {
		printIndentedTree(nodes[i], 1)
	}
	fmt.Println("</program>")
}
