// Command simpledb is the interactive shell for the storage engine in
// package engine: a line-oriented REPL over insert/select statements and
// leading-dot meta-commands, following the teacher's db-tutorial loop.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"simpledb/engine"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Must supply a database filename.")
		os.Exit(1)
	}

	table, err := engine.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	repl(table, os.Stdin, os.Stdout)
}

func repl(table *engine.Table, in *os.File, out *os.File) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, "db > ")

		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF on stdin behaves like .exit: flush and close cleanly.
			closeOrExitFatal(table)
			return
		}
		input := strings.TrimRight(line, "\n\r")

		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			if input == ".exit" {
				fmt.Fprintln(out, "Bye!")
				closeOrExitFatal(table)
				return
			}

			err := table.MetaCommand(input, out)
			if err == nil {
				continue
			}
			if errors.Is(err, engine.ErrUnrecognizedCommand) {
				fmt.Fprintf(out, "Unrecognized command '%s'\n", input)
				continue
			}
			reportFatal(err)
			return
		}

		stmt, err := engine.Prepare(input)
		if err != nil {
			printPrepareError(out, input, err)
			continue
		}

		if err := table.Execute(stmt, out); err != nil {
			switch {
			case errors.Is(err, engine.ErrDuplicateKey):
				fmt.Fprintln(out, "Error: Duplicate key.")
			case errors.Is(err, engine.ErrTableFull):
				fmt.Fprintln(out, "Error: Table is full")
			default:
				reportFatal(err)
				return
			}
			continue
		}

		fmt.Fprintln(out, "Executed.")
	}
}

func printPrepareError(out *os.File, input string, err error) {
	switch {
	case errors.Is(err, engine.ErrStringTooLong):
		fmt.Fprintln(out, "ERROR: String is too long")
	case errors.Is(err, engine.ErrNegativeID):
		fmt.Fprintln(out, "ID must be positive.")
	case errors.Is(err, engine.ErrSyntax):
		fmt.Fprintln(out, "Syntax error. Could not parse statement.")
	case errors.Is(err, engine.ErrUnrecognizedStatement):
		fmt.Fprintf(out, "Unrecognized keyword at start of '%s'.\n", input)
	default:
		fmt.Fprintln(out, err)
	}
}

func closeOrExitFatal(table *engine.Table) {
	if err := table.Close(); err != nil {
		reportFatal(err)
	}
}

func reportFatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
