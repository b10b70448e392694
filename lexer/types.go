package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenSymbol                    // Any other run of non-separator characters
	TokenInteger                   // Optionally signed decimal integer
	TokenString                    // Double quoted string, quotes included
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenString:          []rune{'"'},
}

var (
	whitespace  = []rune(" \f\t\r\n\v")
	digits      = []rune("0123456789")
	commentMark = ';'
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenSymbol:          "symbol",
	TokenInteger:         "integer",
	TokenString:          "string",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func tokenName(tt TokenType) string {
	return tt.String()
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isAritmeticSign(p rune) bool {
	return p == '+' || p == '-'
}

// isInteger reports whether the whole lexeme matches [+-]?[0-9]+
func isInteger(lexeme string) bool {
	rs := []rune(lexeme)
	if len(rs) > 0 && isAritmeticSign(rs[0]) {
		rs = rs[1:]
	}
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
