// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

// Command-line client for the sudoklite solving engine.  Puzzles
// are given as 81-character strings (digits for givens, '.' or '0'
// for empty cells), either as arguments or one per line on
// standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/JeongHan-Bae/SudokLite/puzzle"
)

var (
	countFlag  = flag.Bool("count", false, "report the number of solutions (up to 2) instead of solving")
	statsFlag  = flag.Bool("stats", false, "print search statistics with each solution")
	prettyFlag = flag.Bool("pretty", false, "print solutions as grids instead of signatures")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	failures := 0
	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			if !handlePuzzle(os.Stdout, arg) {
				failures++
			}
		}
	} else {
		failures = listener(os.Stdout, os.Stdin)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

/*

CLI listener

*/

// listener reads puzzle lines and solves them one by one.
func listener(out *os.File, in *os.File) (failures int) {
	// if we are on a terminal, we do prompting
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	pending := ""
	for {
		if prompt {
			fmt.Fprintf(out, "sudoklite> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			pending += string(input[:n])
			for {
				nl := strings.IndexByte(pending, '\n')
				if nl < 0 {
					break
				}
				line := strings.TrimSpace(pending[:nl])
				pending = pending[nl+1:]
				switch line {
				case "":
					continue
				case "quit", "exit":
					return
				}
				if !handlePuzzle(out, line) {
					failures++
				}
			}
		case io.EOF:
			if line := strings.TrimSpace(pending); line != "" {
				if !handlePuzzle(out, line) {
					failures++
				}
			}
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			log.Printf("Read failure: %v", err)
			failures++
			return
		}
	}
}

/*

puzzle handling

*/

// handlePuzzle parses, solves (or counts), and prints one puzzle.
// It reports whether the puzzle was handled without failures.
func handlePuzzle(out io.Writer, s string) bool {
	values, err := puzzle.ParseString(s)
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return false
	}

	if *countFlag {
		count, err := puzzle.CountSolutions(values, 2)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			return false
		}
		switch count {
		case 0:
			fmt.Fprintf(out, "no solutions\n")
		case 1:
			fmt.Fprintf(out, "1 solution\n")
		default:
			fmt.Fprintf(out, "2 or more solutions\n")
		}
		return true
	}

	res, err := puzzle.SolveDetail(values)
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return false
	}
	if *prettyFlag {
		fmt.Fprintf(out, "%s", res.Values.GridString())
	} else {
		fmt.Fprintf(out, "%s\n", res.Values.String())
	}
	if *statsFlag {
		fmt.Fprintf(out, "%d guesses, %d backtracks\n", res.Guesses, res.Backtracks)
	}
	return true
}
