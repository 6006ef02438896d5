// errors.go: user-facing error wrapping and caret-snippet rendering.
//
// WrapErrorWithSource recognizes *LexError and *ParseError and returns an
// error whose message is a multi-line snippet with the offending line, up
// to one line of context either side, and a caret under the column:
//
//	PARSE ERROR at 2:8: Statement must end with `;`.
//
//	   1 | a = 1;
//	   2 | b = 2 + 3
//	     |        ^
//
// Any other error is returned unchanged. The lexer and parser themselves
// never log or format beyond their message text; presentation is the
// caller's job, and this helper is what the CLI uses for it.
package zlang

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source, or err unchanged if it is not a lex or
// parse error.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (for
// example a file path) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Lex/parse Col are 0-based; render as 1-based.
		return fmt.Errorf("%s", caretSnippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", caretSnippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

// caretSnippet builds the snippet. Coordinates are 1-based and clamped to
// the source bounds so rendering never panics on short input.
func caretSnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
