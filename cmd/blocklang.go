package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/healeycodes/blocklang/pkg/blocklang"
	"github.com/healeycodes/blocklang/pkg/treeform"
)

const historyFile = ".blocklang_history"

var (
	expr    = flag.String("e", "", "evaluate `program` text instead of a file")
	asYAML  = flag.Bool("yaml", false, "read the file as a YAML tree (default for .yaml and .yml)")
	dump    = flag.String("dump", "", "print the tree as `format` (text or yaml) instead of running it")
	grammar = flag.Bool("grammar", false, "print the text grammar and exit")
	trace   = flag.Bool("trace", false, "write every procedure call to stderr")
	repl    = flag.Bool("repl", false, "start an interactive session")
	version = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	switch {
	case *version:
		fmt.Println(blocklang.VERSION)
		return
	case *grammar:
		fmt.Println(treeform.Grammar())
		return
	case *repl || (*expr == "" && flag.NArg() == 0):
		os.Exit(runRepl())
	}

	filename := flag.Arg(0)
	if *expr != "" {
		filename = "-e"
	}
	root, err := readTree(filename)
	if err != nil {
		println("uh oh.. while reading: "+filename, err.Error())
		os.Exit(1)
	}

	if *dump != "" {
		if err := dumpTree(os.Stdout, root, *dump); err != nil {
			println("uh oh.. while dumping: "+filename, err.Error())
			os.Exit(2)
		}
		return
	}

	env := blocklang.NewEnvironment(nil)
	if *trace {
		env.Trace = os.Stderr
	}
	result, err := env.Eval(root)
	if err != nil {
		println("uh oh.. while running: "+filename, err.Error())
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println(result)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `blocklang %v

Usage:
  blocklang [flags] <file>     run a program (call syntax, or a YAML tree)
  blocklang [flags] -e <text>  run program text
  blocklang -repl              start an interactive session

Flags:
`, blocklang.VERSION)
	flag.PrintDefaults()
}

func readTree(filename string) (*blocklang.Node, error) {
	if *expr != "" {
		return treeform.Parse("-e", *expr)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := filepath.Ext(filename)
	if *asYAML || ext == ".yaml" || ext == ".yml" {
		return treeform.DecodeYAML(f)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return treeform.Parse(filename, string(b))
}

func dumpTree(w io.Writer, root *blocklang.Node, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, treeform.Format(root))
		return err
	case "yaml":
		return treeform.EncodeYAML(w, root)
	}
	return fmt.Errorf("unknown dump format: %v", format)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// Every line is evaluated against the same environment, so top-level
// bindings and procedures carry over
func runRepl() int {
	fmt.Printf("blocklang %v\nCtrl+C cancels input, Ctrl+D exits.\n", blocklang.VERSION)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// no home directory, no history
	if histPath := historyPath(); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	env := blocklang.NewEnvironment(func(s string) { fmt.Print(s) })
	if *trace {
		env.Trace = os.Stderr
	}
	for {
		line, err := ln.Prompt("bl> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		root, err := treeform.Parse("repl", line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		result, err := env.Eval(root)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}
