package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, "nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch {
	case n.IsVector():
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case n.IsValue():
		fmt.Fprintf(w, "%#v (%v)\n", n.Value(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

// EncodeAll transforms a sequence of top-level nodes into text, separated by
// spaces.
func EncodeAll(nodes []*Node) []byte {
	chunks := make([]string, 0, len(nodes))
	for i := range nodes {
		chunks = append(chunks, encodeNode(nodes[i]))
	}
	return []byte(strings.Join(chunks, " "))
}

func encodeNode(n *Node) string {
	if n == nil {
		return "nil"
	}
	switch {
	case n.IsVector():
		list := n.List()
		chunks := make([]string, 0, len(list))
		for i := range list {
			chunks = append(chunks, encodeNode(list[i]))
		}
		return "(" + strings.Join(chunks, " ") + ")"

	case n.IsValue():
		return n.v.(Valuer).Encode()

	default:
		panic("unknown node type")
	}
}
