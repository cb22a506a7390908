// Package main provides the solcheck CLI for verifying solutions of linear systems.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errNotSolution signals that --strict found a vector that is NOT a solution
var errNotSolution = errors.New("one or more vectors are NOT solutions")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "check":
		runCheck(ctx, os.Args[2:])
	case "parse":
		runParse(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`solcheck - Verify candidate solutions of linear systems

Usage:
  solcheck <command> [options]

Commands:
  check    Verify every system of a batch and print the report
  parse    Parse a single general solution line
  verify   Verify checksums and signatures of input files

Use "solcheck <command> --help" for more information about a command.`)
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotSolution):
		return 2
	default:
		return 1
	}
}
