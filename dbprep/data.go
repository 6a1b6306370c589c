// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx"

	"github.com/JeongHan-Bae/SudokLite/puzzle"
)

/*

entries

*/

type dataFunction func(*pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSampleSolutions,
	}
	downFunctions = []dataFunction{
		deleteSampleSolutions,
	}
)

// DataUp: load the sample solutions into the database.  You should
// do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample solutions from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoklite?sslmode=disable"
	}

	// open the database, defer the close
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin()
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback()
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

sample solutions

*/

// samplePuzzles are pre-solved into the store, so the bundled
// puzzles get cache hits from the first request on.
var samplePuzzles = []string{
	"4....35.2" +
		"..95.634." +
		"........8" +
		"....3486." +
		"..46.52.." +
		".2879...." +
		"9........" +
		".873.29.." +
		"5.29....6",
	".1.5.6.2." +
		".....3.18" +
		"....7...6" +
		"..5....3." +
		"..8.9.7.." +
		".6....4.." +
		"5...4...." +
		"64.2....." +
		".3.9.1.8.",
	"9..45...8" +
		".2......." +
		"...1724.." +
		".79...68." +
		"2.......5" +
		".43...27." +
		"..8325..." +
		".......6." +
		"4...16..3",
	"948.5.2.." +
		"..78.3..1" +
		".5..7...." +
		".7....3.." +
		"2..6.5..4" +
		"..5....9." +
		"....6..1." +
		"3..5.97.." +
		"..6.1.423",
	"........." +
		"9..5.7.3." +
		"...1..6.7" +
		".4..6..82" +
		"67.....13" +
		"38..1..9." +
		"7.5..8..." +
		".2.3.9..8" +
		".........",
}

// insertSampleSolutions solves every sample puzzle and records the
// result.  Samples already in the table are left alone.
func insertSampleSolutions(tx *pgx.Tx) error {
	for _, signature := range samplePuzzles {
		values, err := puzzle.ParseString(signature)
		if err != nil {
			return fmt.Errorf("Sample puzzle %q is invalid: %v", signature, err)
		}
		start := time.Now()
		res, err := puzzle.SolveDetail(values)
		if err != nil {
			return fmt.Errorf("Sample puzzle %q didn't solve: %v", signature, err)
		}
		_, err = tx.Exec(
			"INSERT INTO solves (signature, solution, guesses, backtracks, elapsedUs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) "+
				"ON CONFLICT (signature) DO NOTHING",
			signature, res.Values.String(),
			int32(res.Guesses), int32(res.Backtracks),
			time.Since(start).Microseconds(), time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample solution %q: %v", signature, err)
		}
	}
	return nil
}

// deleteSampleSolutions removes the sample solutions, leaving
// user-requested ones in place.
func deleteSampleSolutions(tx *pgx.Tx) error {
	for _, signature := range samplePuzzles {
		if _, err := tx.Exec("DELETE FROM solves WHERE signature = $1", signature); err != nil {
			return fmt.Errorf("Couldn't delete sample solution %q: %v", signature, err)
		}
	}
	return nil
}
