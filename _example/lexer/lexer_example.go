package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisper/lexer"
)

func main() {
	input := `
		(defun fact ; factorial
			(lambda (n)
				(if (= n 0) 1 (* n (fact (- n 1))))))
		(print "Hello world!")
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
