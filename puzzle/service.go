// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

/*

RESTful wrappers over the solving engine, so it's easy to build
web services without re-implementing argument marshaling.

*/

// A SolveRequest carries a puzzle to the solve and check
// handlers.  Exactly one of Values (a JSON array of 81 ints) or
// Puzzle (the 81-character string form) should be given; when
// both are present, Values wins.
type SolveRequest struct {
	Values []int  `json:"values,omitempty"`
	Puzzle string `json:"puzzle,omitempty"`
}

// A SolveResponse is the 200 body of a successful solve.
type SolveResponse struct {
	Values     []int  `json:"values"`
	Puzzle     string `json:"puzzle"`
	Guesses    int    `json:"guesses"`
	Backtracks int    `json:"backtracks"`
	Cached     bool   `json:"cached,omitempty"`
}

// A CheckResponse is the 200 body of a successful validity check.
type CheckResponse struct {
	OK        bool `json:"ok"`
	Solutions int  `json:"solutions"` // 0, 1, or 2 meaning "2 or more"
}

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest from the request body and solves it.  The solved
// grid is sent as a 200 response and the Result is returned to
// the golang caller.  Input problems are sent as a 400 response,
// contradictory or unsolvable puzzles as 422; in all failure
// cases the Error is both sent to the client and returned to the
// caller.
//
// When a non-nil cache is given, previously computed solutions
// are served from it and fresh solutions are stored back with
// their solve time.
func SolveHandler(cache SolutionCache, w http.ResponseWriter, r *http.Request) (*Result, error) {
	values, e := readPuzzle(r)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	if cache != nil {
		if res, ok := cache.Lookup(values.String()); ok {
			return &res, writeJSON(solveResponse(res, true), http.StatusOK, w, r)
		}
	}
	start := time.Now()
	res, e := SolveDetail(values)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	if cache != nil {
		cache.Store(values.String(), res, time.Since(start))
	}
	return &res, writeJSON(solveResponse(res, false), http.StatusOK, w, r)
}

// CheckHandler is a POST handler that validates a puzzle without
// returning a solution: well-formedness, group consistency, and
// whether the puzzle has zero, one, or multiple completions.
// Malformed and contradictory inputs fail the same way as for
// SolveHandler; an unsolvable puzzle is a 200 with Solutions 0.
func CheckHandler(w http.ResponseWriter, r *http.Request) error {
	values, e := readPuzzle(r)
	if e != nil {
		return writeFailure(e, w, r)
	}
	count, e := CountSolutions(values, 2)
	if e != nil {
		return writeFailure(e, w, r)
	}
	return writeJSON(CheckResponse{OK: count == 1, Solutions: count}, http.StatusOK, w, r)
}

// HealthHandler responds 200 to anything, for load balancers and
// uptime checks.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

/*

Utilities

*/

// readPuzzle decodes and validates the puzzle in a request body.
func readPuzzle(r *http.Request) (Values, error) {
	dec := json.NewDecoder(r.Body)
	var req SolveRequest
	if e := dec.Decode(&req); e != nil {
		return Values{}, Error{
			Kind:      InvalidInputKind,
			Attribute: EncodingAttribute,
			Message:   fmt.Sprintf("Invalid request: JSON decode error: %v", e),
		}
	}
	if req.Values != nil {
		return ParseValues(req.Values)
	}
	return ParseString(req.Puzzle)
}

// solveResponse shapes a Result for the wire.
func solveResponse(res Result, cached bool) SolveResponse {
	return SolveResponse{
		Values:     res.Values.Slice(),
		Puzzle:     res.Values.String(),
		Guesses:    res.Guesses,
		Backtracks: res.Backtracks,
		Cached:     cached,
	}
}

// statusFor maps an Error to its response status: malformed
// requests are the client's fault (400), while well-formed
// puzzles that cannot be solved are unprocessable (422).
func statusFor(err Error) int {
	switch err.Kind {
	case ContradictoryInputKind, UnsolvableKind:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// writeFailure sends an engine failure to the client as JSON and
// returns it for the handler to pass to its caller.
func writeFailure(e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		err = Error{Kind: UnknownKind, Message: e.Error()}
	}
	err.Message = err.Error() // verbalize for the client
	if we := writeJSON(err, statusFor(err), w, r); we != nil {
		return we
	}
	return err
}

// writeJSON is called by handlers to encode and send the client
// response.  If encoding fails (which should never happen for the
// types used here), the client gets a 500 with a quoted message
// and the encoding problem is returned to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	bytes, e := json.Marshal(obj)
	if e != nil {
		msg := fmt.Sprintf("Internal error: JSON encode failure: %v", e)
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("%q", msg)))
		return Error{Kind: UnknownKind, Message: msg}
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	return nil
}
