// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command seedsearch is the reference driver for the filter-evaluation
// core: it reads a filter JSON document, enumerates the seed space with
// search.SequentialDriver, and streams matches to stdout as CSV.
// Grounded on teacher_cmd/consensus/main.go's cobra root + subcommand
// factories.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes per spec.md §6: 0 success, 1 config error, 2 runtime error.
const (
	exitOK           = 0
	exitConfigError  = 1
	exitRuntimeError = 2
)

var rootCmd = &cobra.Command{
	Use:   "seedsearch",
	Short: "Search a deterministic card-game seed space against a declarative filter",
	Long: `seedsearch compiles a JSON filter of required, forbidden, and scored
items and walks the seed space in parallel, emitting every matching seed
as a line of CSV.`,
}

func main() {
	rootCmd.AddCommand(runCmd(), validateCmd(), benchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// cliError carries the exit code a failure should produce, so Execute's
// generic error path still reports 1 vs 2 correctly.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func configError(err error) error { return &cliError{code: exitConfigError, err: err} }
func runtimeError(err error) error { return &cliError{code: exitRuntimeError, err: err} }

func exitCodeFor(err error) int {
	if ce, ok := err.(*cliError); ok {
		return ce.code
	}
	return exitConfigError
}
