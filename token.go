// token.go: the closed set of lexical categories and the Token value.
//
// Fixed-text categories (operators, punctuation, keywords) carry their
// canonical spelling in tokenText. The lexer's keyword and symbol dispatch
// tables are derived from that table by filtering on the first byte, so a
// new keyword or symbol only needs a constant and a tokenText entry.
package zlang

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals & identifiers (variable text)
	IDENTIFIER
	NUMBER
	STRING

	// Arithmetic & assignment operators
	ASSIGN // "="
	ADD    // "+"
	SUB    // "-"
	MUL    // "*"
	DIV    // "/"
	IADD   // "+="
	ISUB   // "-="
	IMUL   // "*="
	IDIV   // "/="

	// Logical operators
	NOT  // "!"
	AND  // "&"
	OR   // "|"
	IAND // "&="
	IOR  // "|="

	// Comparison operators
	LT  // "<"
	LE  // "<="
	GT  // ">"
	GE  // ">="
	EQ  // "=="
	NEQ // "!="

	// Punctuation
	COMMA     // ","
	SEMICOLON // ";"
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"
	LBRACKET  // "["
	RBRACKET  // "]"

	// Keywords
	TRUE
	FALSE
	LET
	RETURN
	FUNCTION // "fn"
	IF
	ELSE
)

// tokenText maps every fixed-text category to its canonical spelling.
// Variable-text categories (IDENTIFIER, NUMBER, STRING) and the sentinels
// are deliberately absent.
var tokenText = map[TokenType]string{
	ASSIGN: "=",
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	IADD:   "+=",
	ISUB:   "-=",
	IMUL:   "*=",
	IDIV:   "/=",

	NOT:  "!",
	AND:  "&",
	OR:   "|",
	IAND: "&=",
	IOR:  "|=",

	LT:  "<",
	LE:  "<=",
	GT:  ">",
	GE:  ">=",
	EQ:  "==",
	NEQ: "!=",

	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",

	TRUE:     "true",
	FALSE:    "false",
	LET:      "let",
	RETURN:   "return",
	FUNCTION: "fn",
	IF:       "if",
	ELSE:     "else",
}

var tokenName = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	ASSIGN:     "ASSIGN",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	IADD:       "IADD",
	ISUB:       "ISUB",
	IMUL:       "IMUL",
	IDIV:       "IDIV",
	NOT:        "NOT",
	AND:        "AND",
	OR:         "OR",
	IAND:       "IAND",
	IOR:        "IOR",
	LT:         "LT",
	LE:         "LE",
	GT:         "GT",
	GE:         "GE",
	EQ:         "EQ",
	NEQ:        "NEQ",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	LET:        "LET",
	RETURN:     "RETURN",
	FUNCTION:   "FUNCTION",
	IF:         "IF",
	ELSE:       "ELSE",
}

// keywords and symbols are the lexer's dispatch tables, built from
// tokenText: a category whose canonical text starts with a letter or
// underscore is a keyword, everything else is a symbol.
var (
	keywords = map[string]TokenType{}
	symbols  = map[string]TokenType{}
)

func init() {
	for tt, text := range tokenText {
		if isAlpha(text[0]) {
			keywords[text] = tt
		} else {
			symbols[text] = tt
		}
	}
}

// String returns the category's stable name, for diagnostics.
func (tt TokenType) String() string {
	if name, ok := tokenName[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Text returns the category's canonical spelling, or "" for
// variable-text categories and sentinels.
func (tt TokenType) Text() string { return tokenText[tt] }

// Token is an immutable lexical unit: a category plus the matched source
// text. Line (1-based) and Col (0-based) locate the token's first byte.
type Token struct {
	Type TokenType
	Text string
	Line int
	Col  int
}

// NewToken builds a token, defaulting Text to the category's canonical
// spelling, so punctuation and keyword tokens never need explicit text.
func NewToken(tt TokenType, text string) Token {
	if text == "" {
		text = tokenText[tt]
	}
	return Token{Type: tt, Text: text}
}

func (t Token) String() string {
	return fmt.Sprintf("%s('%s')", t.Type, t.Text)
}
