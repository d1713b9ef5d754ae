package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/coalmine/jsflow/internal/analyzer"
	"github.com/coalmine/jsflow/internal/config"
	"github.com/coalmine/jsflow/internal/render"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: jsflow [--config jsflow.yaml] [--precode file ...] [--lookup name ...] <main-file>")
}

func main() {
	var (
		mainPath    string
		precodePaths []string
		lookups     []string
		configPath  string
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--precode":
			if i+1 >= len(args) {
				usage()
				os.Exit(2)
			}
			precodePaths = append(precodePaths, args[i+1])
			i++
		case "--lookup":
			if i+1 >= len(args) {
				usage()
				os.Exit(2)
			}
			lookups = append(lookups, args[i+1])
			i++
		case "--config":
			if i+1 >= len(args) {
				usage()
				os.Exit(2)
			}
			configPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(args[i], "-") {
				usage()
				os.Exit(2)
			}
			if mainPath == "" {
				mainPath = args[i]
			}
		}
	}

	if mainPath == "" {
		usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	precodePaths = append(append([]string{}, cfg.Precode...), precodePaths...)

	mainSource, err := os.ReadFile(mainPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", mainPath, err)
		os.Exit(1)
	}

	a := analyzer.New(string(mainSource))
	if cfg.DocstringPattern != "" {
		if err := a.WithDocstringPattern(cfg.DocstringPattern); err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad docstring_pattern: %s\n", err)
			os.Exit(1)
		}
	}
	for _, p := range precodePaths {
		src, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading precode %s: %s\n", p, err)
			os.Exit(1)
		}
		a.Augment(string(src))
	}

	program, diags := a.Annotate(context.Background(), false)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "- %s\n", d)
		}
		os.Exit(1)
	}

	printer := render.NewPrinter(os.Stdout).WithRenderOptions(cfg.Render.ShowCallTallies, cfg.Render.ShowInstantiations)
	printer.Program(program)
	for _, name := range lookups {
		printer.Lookup(program, name)
	}
}
