// parser.go: the precedence-climbing ("Pratt") expression parser.
//
// The parser pulls tokens lazily from a Lexer, keeping a current token and
// one token of lookahead. Statement parsing is minimal: a program is a
// sequence of expression statements terminated by ';' (a bare ';' is an
// empty statement and yields no node). All expression grammar lives in
// parselets (parselets.go); the engine only runs the climbing loop:
//
//	left = prefix[curr].Parse(...)
//	while infix[peek] exists and min < infix.Precedence():
//	        advance; left = infix[curr].Parse(left, ...)
//
// Every failure is fatal: the caller gets either a complete Program or
// exactly one error, with no recovery or partial result.
package zlang

import "fmt"

// ParseError is a fatal syntax error at a source position.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func parseErrorAt(tok Token, msg string) *ParseError {
	return &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
}

// Parser consumes a token stream and produces a Program. A Parser owns
// its lexer; neither is reusable after Parse returns.
type Parser struct {
	lexer *Lexer

	prefixParselets map[TokenType]PrefixParselet
	infixParselets  map[TokenType]InfixParselet

	curr Token
	peek Token
}

// NewParser creates a parser over the given lexer, seeded with the
// standard parselet registries.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer:           lexer,
		prefixParselets: standardPrefixParselets(),
		infixParselets:  standardInfixParselets(),
	}
}

// Parse is the one-call convenience: lex and parse src in one go.
func Parse(src string) (*Program, error) {
	return NewParser(NewLexer(src)).Parse()
}

// RegisterPrefix wires a prefix parselet for a token category. Call
// before Parse; this is the supported way to grow the grammar.
func (p *Parser) RegisterPrefix(tt TokenType, parselet PrefixParselet) {
	p.prefixParselets[tt] = parselet
}

// RegisterInfix wires an infix parselet for a token category.
func (p *Parser) RegisterInfix(tt TokenType, parselet InfixParselet) {
	p.infixParselets[tt] = parselet
}

// Current returns the token under the cursor.
func (p *Parser) Current() Token { return p.curr }

// Peek returns the one-token lookahead.
func (p *Parser) Peek() Token { return p.peek }

// Advance consumes the lookahead into the current slot and pulls the next
// token from the lexer. Past end-of-input the lexer keeps yielding EOF,
// so advancing is always safe.
func (p *Parser) Advance() error {
	p.curr = p.peek
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) prime() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.curr = tok
	tok, err = p.lexer.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

// Parse consumes the whole token stream and returns the Program of all
// non-empty statements, or the first error encountered.
func (p *Parser) Parse() (*Program, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	program := &Program{}
	for p.curr.Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			program.Append(stmt)
		}
		if err := p.Advance(); err != nil { // move past the terminator
			return nil, err
		}
	}
	return program, nil
}

// parseStatement parses one statement. A bare ';' is an empty statement
// and returns (nil, nil); everything else is an expression statement.
func (p *Parser) parseStatement() (Statement, error) {
	if p.curr.Type == SEMICOLON {
		return nil, nil
	}
	return p.parseExprStatement()
}

func (p *Parser) parseExprStatement() (Statement, error) {
	expr, err := p.ParseExpression(PrecDefault)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(SEMICOLON); err != nil {
		return nil, err
	}
	return &ExprStatement{Expr: expr}, nil
}

func (p *Parser) endStatement(expected TokenType) error {
	if err := p.Advance(); err != nil {
		return err
	}
	if p.curr.Type != expected {
		return parseErrorAt(p.curr, fmt.Sprintf("Statement must end with `%s`.", expected.Text()))
	}
	return nil
}

// ParseExpression runs the precedence-climbing loop starting at the
// current token. min is the caller's minimum binding precedence: the loop
// folds in infix operators only while min is strictly less than the
// operator's bound precedence.
func (p *Parser) ParseExpression(min Precedence) (Expression, error) {
	prefix, ok := p.prefixParselets[p.curr.Type]
	if !ok {
		return nil, parseErrorAt(p.curr, fmt.Sprintf("Could not parse %s.", p.curr))
	}
	left, err := prefix.Parse(p, p.curr)
	if err != nil {
		return nil, err
	}

	for {
		infix, ok := p.infixParselets[p.peek.Type]
		if !ok || min >= infix.Precedence() {
			return left, nil
		}
		if err := p.Advance(); err != nil { // move onto the operator
			return nil, err
		}
		left, err = infix.Parse(p, left, p.curr)
		if err != nil {
			return nil, err
		}
	}
}
