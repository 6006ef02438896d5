// parselets.go: precedence ladder and the registry of parsing strategies.
//
// A parselet implements the parsing rule for one token category. Prefix
// parselets start an expression from the current token; infix parselets
// extend an already-parsed left operand and expose the binding precedence
// the climbing loop compares against. The standard registries cover the
// built-in grammar; Parser.RegisterPrefix/RegisterInfix insert new
// categories without touching the engine.
package zlang

import (
	"fmt"
	"strconv"
	"strings"
)

// Precedence orders the operator families, low to high. LOGICAL binds
// looser than EQUALS and LEGE in this grammar; that ordering is part of
// the language, not an oversight. ASSIGN_BELOW is the sentinel rung used
// to make assignment right-associative; CONDITIONAL and CALL are reserved
// for registered extensions.
type Precedence int

const (
	PrecDefault     Precedence = iota - 1 // lowest; entry point for statements and groups
	PrecAssignBelow                       // just below assignment, for its right-hand side
	PrecAssign                            // =, +=, -=, *=, /=, &=, |=
	PrecConditional                       // reserved: ? :
	PrecLogical                           // &, |
	PrecEquals                            // ==, !=
	PrecLege                              // <, <=, >, >=
	PrecAddSub                            // +, -
	PrecMulDiv                            // *, /
	PrecPrefix                            // !, +, -
	PrecCall                              // reserved: callable(x)
)

// PrefixParselet parses an expression that starts at the current token.
type PrefixParselet interface {
	Parse(p *Parser, tok Token) (Expression, error)
}

// InfixParselet extends a left operand with the current (operator) token.
type InfixParselet interface {
	Parse(p *Parser, left Expression, tok Token) (Expression, error)
	Precedence() Precedence
}

func standardPrefixParselets() map[TokenType]PrefixParselet {
	return map[TokenType]PrefixParselet{
		IDENTIFIER: identifierParselet{},
		NUMBER:     literalParselet{},
		STRING:     literalParselet{},
		TRUE:       literalParselet{},
		FALSE:      literalParselet{},
		ADD:        unaryOperatorParselet{},
		SUB:        unaryOperatorParselet{},
		NOT:        unaryOperatorParselet{},
		LPAREN:     groupParselet{},
	}
}

func standardInfixParselets() map[TokenType]InfixParselet {
	return map[TokenType]InfixParselet{
		// binary operators
		ADD: binaryOperatorParselet{prec: PrecAddSub},
		SUB: binaryOperatorParselet{prec: PrecAddSub},
		MUL: binaryOperatorParselet{prec: PrecMulDiv},
		DIV: binaryOperatorParselet{prec: PrecMulDiv},
		LT:  binaryOperatorParselet{prec: PrecLege},
		LE:  binaryOperatorParselet{prec: PrecLege},
		GT:  binaryOperatorParselet{prec: PrecLege},
		GE:  binaryOperatorParselet{prec: PrecLege},
		EQ:  binaryOperatorParselet{prec: PrecEquals},
		NEQ: binaryOperatorParselet{prec: PrecEquals},
		AND: binaryOperatorParselet{prec: PrecLogical},
		OR:  binaryOperatorParselet{prec: PrecLogical},
		// assignment
		ASSIGN: assignParselet{},
		IADD:   assignParselet{},
		ISUB:   assignParselet{},
		IMUL:   assignParselet{},
		IDIV:   assignParselet{},
		IAND:   assignParselet{},
		IOR:    assignParselet{},
	}
}

// identifierParselet turns an identifier token into a reference node.
type identifierParselet struct{}

func (identifierParselet) Parse(_ *Parser, tok Token) (Expression, error) {
	return &Identifier{Name: tok.Text}, nil
}

// literalParselet builds int/float/bool/string literal nodes. Numeric
// conversion is base- and format-sensitive and happens here, at parse
// time; a malformed numeral is a parse error, never a silent default.
type literalParselet struct{}

func (literalParselet) Parse(_ *Parser, tok Token) (Expression, error) {
	switch tok.Type {
	case STRING:
		return &StringLiteral{Value: tok.Text}, nil
	case TRUE:
		return &BoolLiteral{Value: true}, nil
	case FALSE:
		return &BoolLiteral{Value: false}, nil
	case NUMBER:
		text := tok.Text
		if strings.ContainsAny(text, ".eE") {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, parseErrorAt(tok, fmt.Sprintf("Malformed float literal: %s.", text))
			}
			return &FloatLiteral{Value: v}, nil
		}
		if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
			v, err := strconv.ParseInt(text[2:], 16, 64)
			if err != nil {
				return nil, parseErrorAt(tok, fmt.Sprintf("Malformed hexadecimal literal: %s.", text))
			}
			return &IntLiteral{Value: v}, nil
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, parseErrorAt(tok, fmt.Sprintf("Malformed integer literal: %s.", text))
		}
		return &IntLiteral{Value: v}, nil
	default:
		return nil, parseErrorAt(tok, fmt.Sprintf("internal: no literal rule for %s", tok))
	}
}

// unaryOperatorParselet parses the prefix operators +, - and !. The
// operand is parsed at PREFIX precedence so "-a * b" binds as "(-a) * b".
type unaryOperatorParselet struct{}

func (unaryOperatorParselet) Parse(p *Parser, tok Token) (Expression, error) {
	if err := p.Advance(); err != nil { // move to the beginning of the operand
		return nil, err
	}
	right, err := p.ParseExpression(PrecPrefix)
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Operator: tok, Right: right}, nil
}

// groupParselet parses a parenthesized expression like "5 * (2 + 3)".
type groupParselet struct{}

func (groupParselet) Parse(p *Parser, _ Token) (Expression, error) {
	if err := p.Advance(); err != nil { // move past '('
		return nil, err
	}
	expr, err := p.ParseExpression(PrecDefault)
	if err != nil {
		return nil, err
	}
	if err := p.Advance(); err != nil { // move to the expected ')'
		return nil, err
	}
	if p.Current().Type != RPAREN {
		return nil, parseErrorAt(p.Current(), "The grouped expression must end with a right parenthesis.")
	}
	return expr, nil
}

// binaryOperatorParselet is the generic infix parselet for one binary
// operator family. The right operand is parsed at the parselet's own
// precedence, which makes every binary operator left-associative.
type binaryOperatorParselet struct {
	prec Precedence
}

func (b binaryOperatorParselet) Parse(p *Parser, left Expression, tok Token) (Expression, error) {
	if err := p.Advance(); err != nil { // move to the beginning of the right operand
		return nil, err
	}
	right, err := p.ParseExpression(b.prec)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Operator: tok, Right: right}, nil
}

func (b binaryOperatorParselet) Precedence() Precedence { return b.prec }

// assignParselet parses "foo = bar" and the compound forms. The target
// must be a bare identifier, checked here at parse time. The right-hand
// side is parsed one rung below ASSIGN, which makes assignment
// right-associative: "a = b = c" is "a = (b = c)".
type assignParselet struct{}

func (assignParselet) Parse(p *Parser, left Expression, tok Token) (Expression, error) {
	ident, ok := left.(*Identifier)
	if !ok {
		return nil, parseErrorAt(tok,
			fmt.Sprintf("The left side of an assignment must be a simple identifier, but got: %s.", left.String()))
	}
	if err := p.Advance(); err != nil { // move to the beginning of the right side
		return nil, err
	}
	right, err := p.ParseExpression(PrecAssignBelow)
	if err != nil {
		return nil, err
	}
	return &AssignExpr{Name: ident.Name, Operator: tok, Right: right}, nil
}

func (assignParselet) Precedence() Precedence { return PrecAssign }
