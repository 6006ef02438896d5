// printer.go: deterministic canonical rendering of programs and tokens.
//
// Pretty parses a source string and returns its canonical text: one
// statement per line, every operator application fully parenthesized.
// The rendering is a fixed point: Pretty(Pretty(src)) == Pretty(src).
package zlang

import "strings"

// Pretty parses zlang source and returns its canonical rendering.
func Pretty(src string) (string, error) {
	program, err := Parse(src)
	if err != nil {
		return "", WrapErrorWithSource(err, src)
	}
	return FormatProgram(program), nil
}

// FormatProgram renders a parsed program canonically, one statement per
// line with no trailing newline.
func FormatProgram(p *Program) string {
	return p.String()
}

// FormatTokens renders a token stream one token per line, in the
// NAME('text') form used by the REPL and the lex command.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
