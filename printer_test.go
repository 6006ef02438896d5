// printer_test.go
package zlang

import (
	"strings"
	"testing"
)

func mustPretty(t *testing.T, src string) string {
	t.Helper()
	out, err := Pretty(src)
	if err != nil {
		t.Fatalf("Pretty error: %v\nsource:\n%s", err, src)
	}
	return out
}

func Test_Pretty_Canonicalizes(t *testing.T) {
	for src, want := range map[string]string{
		`1+2*3;`:          `(1 + (2 * 3));`,
		`(1+2)*3;`:        `((1 + 2) * 3);`,
		`a=b=1;`:          `(a = (b = 1));`,
		`  x  ;  y  ;  `:  "x;\ny;",
		`0x10;`:           `16;`,
		`"hello world" ;`: `"hello world";`,
		`;;`:              ``,
	} {
		if got := mustPretty(t, src); got != want {
			t.Fatalf("\nsource: %s\nwant:   %s\ngot:    %s", src, want, got)
		}
	}
}

func Test_Pretty_IsIdempotent(t *testing.T) {
	sources := []string{
		`1+2*3; a=b=1;`,
		`!x & y == z;`,
		`a += 1e-7; -b;`,
	}
	for _, src := range sources {
		once := mustPretty(t, src)
		twice := mustPretty(t, once)
		if once != twice {
			t.Fatalf("Pretty is not a fixed point\nsource: %s\nonce:   %s\ntwice:  %s", src, once, twice)
		}
	}
}

func Test_Pretty_WrapsErrorsWithCaret(t *testing.T) {
	_, err := Pretty(`a = 1;` + "\n" + `b = 2 + ;`)
	if err == nil {
		t.Fatalf("want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "PARSE ERROR") || !strings.Contains(msg, "^") {
		t.Fatalf("error must carry a caret snippet, got:\n%s", msg)
	}
}

func Test_FormatTokens(t *testing.T) {
	tokens, err := NewLexer(`x = 1;`).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	got := FormatTokens(tokens)
	want := strings.Join([]string{
		"IDENTIFIER('x')",
		"ASSIGN('=')",
		"NUMBER('1')",
		"SEMICOLON(';')",
		"EOF('')",
	}, "\n")
	if got != want {
		t.Fatalf("\nwant:\n%s\ngot:\n%s", want, got)
	}
}
