// lexer.go: lazy scanner from raw source text to tokens.
//
// The lexer is a forward-only cursor over an in-memory string. Each call to
// Next produces exactly one token; after the input is exhausted it keeps
// returning the EOF token. Scan tokenizes the whole input at once (EOF
// included) for callers that want the raw token stream.
//
// Scanning rules, in priority order at each position:
//  1. whitespace (space, tab, CR, LF) is skipped;
//  2. '"' begins a verbatim string literal (no escape processing), which
//     must be closed before end of input;
//  3. an operator character prefers its two-character '='-suffixed form
//     when the next character is '=' (maximal munch, one byte lookahead);
//  4. single-character punctuation yields itself;
//  5. a letter or underscore starts an identifier, matched against the
//     keyword table; the token text preserves the source spelling;
//  6. a digit starts a number: 0x/0X hex, or decimal with at most one '.'
//     and one 'e'/'E' (a sign byte only directly after the exponent);
//  7. anything else is a LexError.
package zlang

import "fmt"

// LexError is a fatal lexical error at a source position.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer scans a zlang source string into tokens. A Lexer is not
// restartable mid-scan; build a fresh one to tokenize again.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
	col   int // 0-based column within line

	// position of the current token's first byte
	tokLine int
	tokCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.peek()
		if !ok {
			return
		}
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func (l *Lexer) makeToken(tt TokenType, text string) Token {
	tok := NewToken(tt, text)
	tok.Line = l.tokLine
	tok.Col = l.tokCol
	l.start = l.cur
	return tok
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// character classes

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isOperatorChar(b byte) bool {
	switch b {
	case '=', '!', '<', '>', '+', '-', '*', '/', '&', '|':
		return true
	}
	return false
}

func isPunctuation(b byte) bool {
	switch b {
	case ',', ';', '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}

// ----- scanners -----

// scanString reads a verbatim string literal. The opening '"' has already
// been consumed; the returned text excludes both quotes. No escape
// sequences are processed.
func (l *Lexer) scanString() (string, error) {
	from := l.cur
	for {
		ch, ok := l.advance()
		if !ok {
			return "", l.err("The string must be enclosed in double quotes.")
		}
		if ch == '"' {
			return l.src[from : l.cur-1], nil
		}
	}
}

// scanOperator applies maximal munch with one byte of lookahead: an
// operator character followed by '=' forms the two-character lexeme.
func (l *Lexer) scanOperator() string {
	if b, ok := l.peek(); ok && b == '=' {
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanIdentifier reads [A-Za-z_][A-Za-z0-9_]*; the first byte has already
// been consumed.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber reads a numeric run and returns its raw text; base and
// format-sensitive conversion happens at parse time. Hex runs (0x/0X)
// consume hex digits greedily. Decimal runs allow one '.' and one
// 'e'/'E', and a '+'/'-' only immediately after the exponent marker;
// a second point or exponent marker is a LexError.
func (l *Lexer) scanNumber() (string, error) {
	if b, ok := l.peekN(1); l.src[l.cur] == '0' && ok && (b == 'x' || b == 'X') {
		l.advance() // '0'
		l.advance() // 'x'
		for {
			b, ok := l.peek()
			if !ok || !isHex(b) {
				break
			}
			l.advance()
		}
		return l.src[l.start:l.cur], nil
	}

	sawPoint, sawExp := false, false
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case b == '.':
			if sawPoint {
				return "", l.err("The decimal point (`.`) can only appear once.")
			}
			sawPoint = true
			l.advance()
		case b == 'e' || b == 'E':
			if sawExp {
				return "", l.err("The exponent marker (`e`) can only appear once.")
			}
			sawExp = true
			l.advance()
		case b == '+' || b == '-':
			prev := l.src[l.cur-1]
			if prev != 'e' && prev != 'E' {
				return l.src[l.start:l.cur], nil
			}
			l.advance()
		case isDigit(b):
			l.advance()
		default:
			return l.src[l.start:l.cur], nil
		}
	}
	return l.src[l.start:l.cur], nil
}

// ----- lazy production -----

// Next produces the next token. After the input is exhausted it returns
// the EOF token on every call.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	l.start = l.cur
	l.tokLine = l.line
	l.tokCol = l.col

	if l.isAtEnd() {
		return l.makeToken(EOF, ""), nil
	}

	ch, _ := l.advance()
	switch {
	case ch == '"':
		text, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return l.makeToken(STRING, text), nil
	case isOperatorChar(ch):
		lexeme := l.scanOperator()
		tt, ok := symbols[lexeme]
		if !ok {
			return Token{}, l.err(fmt.Sprintf("internal: operator %q has no token type", lexeme))
		}
		return l.makeToken(tt, lexeme), nil
	case isPunctuation(ch):
		return l.makeToken(symbols[string(ch)], string(ch)), nil
	case isAlpha(ch):
		lexeme := l.scanIdentifier()
		if tt, ok := keywords[lexeme]; ok {
			return l.makeToken(tt, lexeme), nil
		}
		return l.makeToken(IDENTIFIER, lexeme), nil
	case isDigit(ch):
		l.cur = l.start // rewind; scanNumber reads the whole run
		l.col = l.tokCol
		text, err := l.scanNumber()
		if err != nil {
			return Token{}, err
		}
		return l.makeToken(NUMBER, text), nil
	default:
		return Token{}, l.err(fmt.Sprintf("unknown illegal character: %q", ch))
	}
}

// Scan tokenizes the entire source and returns all tokens, EOF included.
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
