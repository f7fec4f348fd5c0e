// cmd/mathllm — command-line front end for the mathllm core.
//
// Usage:
//   mathllm integrate EXPR VAR
//   mathllm diff EXPR VAR
//   mathllm solve_equation LHS RHS VAR
//   mathllm verify_equal LHS RHS
//   mathllm repl
//
// Results print to stdout; errors print their kind and message to stderr and
// exit with status 1.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	mathllm "github.com/yasinldev/mathllm"
)

const (
	historyFile = ".mathllm_history"
	prompt      = "==> "
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mathllm integrate EXPR VAR")
	fmt.Fprintln(os.Stderr, "  mathllm diff EXPR VAR")
	fmt.Fprintln(os.Stderr, "  mathllm solve_equation LHS RHS VAR")
	fmt.Fprintln(os.Stderr, "  mathllm verify_equal LHS RHS")
	fmt.Fprintln(os.Stderr, "  mathllm repl")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	command := os.Args[1]
	args := os.Args[2:]

	if command == "repl" {
		runRepl()
		return
	}

	out, err := runCommand(command, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func runCommand(command string, args []string) (string, error) {
	switch command {
	case "integrate":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		return mathllm.Integrate(args[0], args[1])
	case "diff":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		return mathllm.Diff(args[0], args[1])
	case "solve_equation":
		if len(args) < 3 {
			usage()
			os.Exit(1)
		}
		return mathllm.SolveEquation(args[0], args[1], args[2])
	case "verify_equal":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		ok, err := mathllm.VerifyEqual(args[0], args[1], 1000.0)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", ok), nil
	}
	usage()
	os.Exit(1)
	return "", nil
}

// The REPL accepts the same subcommands with whitespace-separated arguments
// (expressions must not contain spaces), or a bare expression to parse and
// echo in canonical and LaTeX form.
func runRepl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := filepath.Join(os.TempDir(), historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("mathllm REPL — :quit to exit")
	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == ":quit" || line == ":q" {
			return
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "integrate", "diff", "solve_equation", "verify_equal":
			out, err := runReplCommand(fields[0], fields[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(out)
		default:
			e, err := mathllm.Parse(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(e.String())
			fmt.Println("latex:", e.LaTeX())
		}
	}
}

func runReplCommand(command string, args []string) (string, error) {
	switch command {
	case "integrate":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: integrate EXPR VAR")
		}
		return mathllm.Integrate(args[0], args[1])
	case "diff":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: diff EXPR VAR")
		}
		return mathllm.Diff(args[0], args[1])
	case "solve_equation":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: solve_equation LHS RHS VAR")
		}
		return mathllm.SolveEquation(args[0], args[1], args[2])
	case "verify_equal":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: verify_equal LHS RHS")
		}
		ok, err := mathllm.VerifyEqual(args[0], args[1], 1000.0)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", ok), nil
	}
	return "", fmt.Errorf("unknown command: %s", command)
}
