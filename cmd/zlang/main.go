package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	zlang "github.com/wangmu0115/pyzlang"
)

const (
	appName     = "zlang"
	historyFile = ".zlang_history"
	promptMain  = "zlang>>> "
	srcExt      = ".zl"
)

var (
	banner = fmt.Sprintf("zlang %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", zlang.Version)

	helpText = `
REPL commands:
  :quit          Exit the REPL
  :help          Show this help
  :lex <code>    Dump the raw tokens of <code>
Anything else is parsed and echoed in canonical form.
`
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "version":
		fmt.Println(zlang.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`zlang %s (built %s)

Usage:
  %s run <file%s>                 Parse a script and print its canonical form.
  %s repl                         Start the REPL.
  %s fmt [--check] [path ...]     Canonicalize file(s) by path prefix (default ".")
  %s lex <file%s> | lex -e <code> Dump the raw token stream.
  %s version                      Print the compiled version

`, zlang.Version, zlang.BuildDate, appName, srcExt, appName, appName, appName, srcExt, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file%s>\n", appName, srcExt)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	program, perr := zlang.Parse(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, zlang.WrapErrorWithName(perr, args[0], string(src)).Error())
		return 1
	}
	if program.Len() > 0 {
		fmt.Println(zlang.FormatProgram(program))
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			cmd, rest, _ := strings.Cut(code, " ")
			switch strings.ToLower(cmd) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":lex":
				replLex(rest)
			default:
				fmt.Printf("unknown command. Type :quit to exit, :help for help.\n")
			}
			continue
		}

		program, perr := zlang.Parse(code)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(zlang.WrapErrorWithSource(perr, code).Error()))
			continue
		}
		for _, stmt := range program.Statements {
			fmt.Println(blue(stmt.String()))
		}
	}
}

func replLex(code string) {
	tokens, err := zlang.NewLexer(code).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(zlang.WrapErrorWithSource(err, code).Error()))
		return
	}
	for _, tok := range tokens {
		fmt.Println(green(tok.String()))
	}
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	fset := flag.NewFlagSet("fmt", flag.ContinueOnError)
	check := fset.Bool("check", false, "check format; exit 1 if any file would change")
	if err := fset.Parse(args); err != nil {
		return 2
	}
	paths := fset.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := discoverSources(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	bad := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
			return 1
		}
		canon, perr := zlang.Pretty(string(src))
		if perr != nil {
			fmt.Fprintln(os.Stderr, perr.Error())
			return 1
		}
		canon += "\n"
		if canon == string(src) {
			continue
		}
		if *check {
			fmt.Println(file)
			bad++
			continue
		}
		if err := os.WriteFile(file, []byte(canon), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot write %s: %v\n", appName, file, err)
			return 1
		}
	}

	if bad > 0 {
		return 1
	}
	return 0
}

func discoverSources(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, srcExt) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// -----------------------------------------------------------------------------
// lex
// -----------------------------------------------------------------------------

func cmdLex(args []string) int {
	fset := flag.NewFlagSet("lex", flag.ContinueOnError)
	expr := fset.String("e", "", "lex the given code instead of a file")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	var src, name string
	switch {
	case *expr != "":
		src, name = *expr, "<arg>"
	case fset.NArg() > 0:
		data, err := os.ReadFile(fset.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, fset.Arg(0), err)
			return 1
		}
		src, name = string(data), fset.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "usage: %s lex <file%s> | %s lex -e <code>\n", appName, srcExt, appName)
		return 2
	}

	tokens, err := zlang.NewLexer(src).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, zlang.WrapErrorWithName(err, name, src).Error())
		return 1
	}
	fmt.Println(zlang.FormatTokens(tokens))
	return 0
}
