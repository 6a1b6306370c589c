// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"

	"github.com/JeongHan-Bae/SudokLite/puzzle"
)

/*

solve records

*/

// A solveRecord is the stored form of one computed solution, keyed
// by the puzzle's 81-character signature.  It is JSON serializable
// so it can go into the cache as well as the database.
type solveRecord struct {
	Signature  string // signature of the puzzle as posed
	Solution   string // signature of the completed grid
	Guesses    int32
	Backtracks int32
	ElapsedUs  int64 // solve time in microseconds
}

// loadSolveRecord first checks the cache, then the database, for a
// solution with the given signature.  If it loads from the
// database, it caches the result.  Returns whether a record was
// found at all.
func loadSolveRecord(signature string) (*solveRecord, bool) {
	sr := &solveRecord{Signature: signature}
	if sr.cacheLoad() {
		return sr, true
	}
	// cache miss, try the database and save to cache
	if !sr.databaseLoad() {
		return nil, false
	}
	sr.cacheInsert()
	return sr, true
}

// saveSolveRecord writes a record to both the database and the
// cache.  Re-solving the same puzzle is not an error; the original
// record wins.
func saveSolveRecord(sr *solveRecord) {
	sr.databaseInsert()
	sr.cacheInsert()
}

// key: compute the cache key for a solveRecord.
func (sr *solveRecord) key() string {
	return "SOL:" + sr.Signature
}

// cacheLoad: load an already cached solve record.  Returns whether
// the record was found in the cache.
func (sr *solveRecord) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", sr.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solution %q: %v", sr.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var ssr *solveRecord
	err := json.Unmarshal(bytes, &ssr)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal solution %q: %v", sr.Signature, err))
	}
	if ssr.Signature != sr.Signature {
		panic(fmt.Errorf("Cached solution (signature %q) found for puzzle %q!",
			ssr.Signature, sr.Signature))
	}
	*sr = *ssr
	return true
}

// cacheInsert: insert a solve record into the cache.  Replaces any
// existing record with the same signature.
func (sr *solveRecord) cacheInsert() {
	bytes, e := json.Marshal(sr)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solution %q: %v", sr.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", sr.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solution %q: %v", sr.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load a solve record from the database.  Returns
// whether a record with the given signature exists.
func (sr *solveRecord) databaseLoad() bool {
	found := true
	body := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT solution, guesses, backtracks, elapsedUs FROM solves "+
				"WHERE signature = $1", sr.Signature)
		err := row.Scan(&sr.Solution, &sr.Guesses, &sr.Backtracks, &sr.ElapsedUs)
		if err == pgx.ErrNoRows {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", sr.Signature, err)
		}
		return nil
	}
	pgExecute(body)
	return found
}

// databaseInsert: insert a solve record into the database.  A
// record with the same signature may already exist (two solves of
// the same puzzle can race); the first writer wins.
func (sr *solveRecord) databaseInsert() {
	body := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO solves (signature, solution, guesses, backtracks, elapsedUs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) "+
				"ON CONFLICT (signature) DO NOTHING",
			sr.Signature, sr.Solution, sr.Guesses, sr.Backtracks, sr.ElapsedUs, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving solution %q: %v", sr.Signature, err)
		}
		return
	}
	pgExecute(body)
}

/*

solve log

*/

// A SolveInfo is the exported form of a stored solution, for the
// solve log.
type SolveInfo struct {
	Signature  string        // the puzzle as posed
	Solution   string        // the completed grid
	Guesses    int           // search effort
	Backtracks int           //
	Elapsed    time.Duration // original solve time
	Created    time.Time     // when the solution was first stored
}

// RecentSolves returns the most recently stored solutions, newest
// first.
func RecentSolves(limit int) ([]SolveInfo, error) {
	if limit < 1 {
		limit = 1
	}
	var infos []SolveInfo
	var failure error
	func() {
		defer func() {
			if r := recover(); r != nil {
				failure = fmt.Errorf("Failed to read solve log: %v", r)
			}
		}()
		body := func(tx *pgx.Tx) error {
			rows, err := tx.Query(
				"SELECT signature, solution, guesses, backtracks, elapsedUs, created "+
					"FROM solves ORDER BY created DESC LIMIT $1", limit)
			if err != nil {
				return fmt.Errorf("Failure reading solve log: %v", err)
			}
			defer rows.Close()
			for rows.Next() {
				var si SolveInfo
				var guesses, backtracks int32
				var elapsedUs int64
				err = rows.Scan(&si.Signature, &si.Solution,
					&guesses, &backtracks, &elapsedUs, &si.Created)
				if err != nil {
					return fmt.Errorf("Failure scanning solve log row: %v", err)
				}
				si.Guesses, si.Backtracks = int(guesses), int(backtracks)
				si.Elapsed = time.Duration(elapsedUs) * time.Microsecond
				infos = append(infos, si)
			}
			return rows.Err()
		}
		pgExecute(body)
	}()
	return infos, failure
}

/*

engine cache adapter

*/

// A SolveCache adapts the storage layer to the engine's solution
// cache interface.  Storage failures are logged and degrade to
// cache misses, so a flaky cache never breaks solving.
type SolveCache struct{}

// Lookup finds a previously stored solution by signature.
func (SolveCache) Lookup(signature string) (res puzzle.Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Solution lookup failed for %q: %v", signature, r)
			ok = false
		}
	}()
	sr, found := loadSolveRecord(signature)
	if !found {
		return puzzle.Result{}, false
	}
	values, err := puzzle.ParseString(sr.Solution)
	if err != nil {
		log.Printf("Stored solution for %q is corrupt: %v", signature, err)
		return puzzle.Result{}, false
	}
	res = puzzle.Result{
		Values:     values,
		Guesses:    int(sr.Guesses),
		Backtracks: int(sr.Backtracks),
	}
	return res, true
}

// Store saves a freshly computed solution.
func (SolveCache) Store(signature string, result puzzle.Result, elapsed time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Solution store failed for %q: %v", signature, r)
		}
	}()
	saveSolveRecord(&solveRecord{
		Signature:  signature,
		Solution:   result.Values.String(),
		Guesses:    int32(result.Guesses),
		Backtracks: int32(result.Backtracks),
		ElapsedUs:  elapsed.Microseconds(),
	})
}
