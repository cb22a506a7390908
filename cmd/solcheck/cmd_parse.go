package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"github.com/ochairo/solcheck/internal/domain/services"
	"github.com/ochairo/solcheck/internal/external-adapters/text"
	"github.com/ochairo/solcheck/internal/external-adapters/yaml"
)

func runParse(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var (
		n      = fs.Int("n", 0, "Number of unknowns (required)")
		format = fs.String("format", "yaml", "Output format: yaml or text")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: solcheck parse --n <n> "<solution line>"

Parse a general solution line and print its base and direction vectors.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  solcheck parse --n 3 "1 2 3"
  solcheck parse --n 3 "[1 0 0] + a[0 1 0] + c[0 0 1]"
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 || *n < 1 {
		fmt.Fprintf(os.Stderr, "Error: --n and a solution line are required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := executeParse(ctx, strings.Join(fs.Args(), " "), *n, *format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeParse(_ context.Context, line string, n int, format string, stdout io.Writer) error {
	if n > entities.DefaultMaxDimension {
		return fmt.Errorf("%w: n=%d exceeds %d", entities.ErrDimensionExceeded, n, entities.DefaultMaxDimension)
	}

	solution, err := services.ParseSolutionLine(line, n)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		return yaml.NewReportWriter().WriteSolution(stdout, solution)
	case "text":
		_, err := fmt.Fprintln(stdout, text.FormatSolution(solution))
		return err
	default:
		return fmt.Errorf("unknown format %q (use yaml or text)", format)
	}
}
