package puzzle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// postSolve runs one request through SolveHandler and decodes the
// response body into out.
func postSolve(t *testing.T, cache SolutionCache, body string, out interface{}) (*httptest.ResponseRecorder, *Result, error) {
	t.Helper()
	r := httptest.NewRequest("POST", "/api/solve", strings.NewReader(body))
	w := httptest.NewRecorder()
	res, err := SolveHandler(cache, w, r)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type is %q", ct)
	}
	if out != nil {
		if e := json.Unmarshal(w.Body.Bytes(), out); e != nil {
			t.Fatalf("undecodable response %q: %v", w.Body.String(), e)
		}
	}
	return w, res, err
}

func solveBody(t *testing.T, values Values) string {
	t.Helper()
	bs, e := json.Marshal(SolveRequest{Values: values.Slice()})
	if e != nil {
		t.Fatalf("failed to encode request: %v", e)
	}
	return string(bs)
}

func TestSolveHandler(t *testing.T) {
	var resp SolveResponse
	w, res, err := postSolve(t, nil, solveBody(t, oneStarValues), &resp)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status is %d", w.Code)
	}
	if res == nil || res.Values != oneStarSolution {
		t.Errorf("returned result is %+v", res)
	}
	if resp.Puzzle != oneStarSolution.String() || resp.Cached {
		t.Errorf("response is %+v", resp)
	}
	got, e := ParseValues(resp.Values)
	if e != nil || got != oneStarSolution {
		t.Errorf("response values are %v", resp.Values)
	}
}

func TestSolveHandlerStringForm(t *testing.T) {
	var resp SolveResponse
	w, _, err := postSolve(t, nil, `{"puzzle":"`+oneStarValues.String()+`"}`, &resp)
	if err != nil || w.Code != http.StatusOK {
		t.Fatalf("string-form solve failed: %d, %v", w.Code, err)
	}
	if resp.Puzzle != oneStarSolution.String() {
		t.Errorf("response puzzle is %q", resp.Puzzle)
	}
}

type solveFailureTestcase struct {
	name   string
	body   string
	status int
	check  func(error) bool
}

func TestSolveHandlerFailures(t *testing.T) {
	dup := Values{}
	dup[0], dup[1] = 4, 4
	tcs := []solveFailureTestcase{
		{"bad JSON", "{", http.StatusBadRequest, IsInvalidInput},
		{"short values", `{"values":[1,2,3]}`, http.StatusBadRequest, IsInvalidInput},
		{"bad rune", `{"puzzle":"` + strings.Repeat("x", CellCount) + `"}`,
			http.StatusBadRequest, IsInvalidInput},
		{"duplicate", solveBody(t, dup),
			http.StatusUnprocessableEntity, IsContradictoryInput},
		{"unsolvable", solveBody(t, noSolutionValues),
			http.StatusUnprocessableEntity, IsUnsolvable},
	}
	for _, tc := range tcs {
		var failure Error
		w, res, err := postSolve(t, nil, tc.body, &failure)
		if w.Code != tc.status {
			t.Errorf("%s: status is %d, expected %d", tc.name, w.Code, tc.status)
		}
		if res != nil {
			t.Errorf("%s: got a result: %+v", tc.name, res)
		}
		if err == nil || !tc.check(err) {
			t.Errorf("%s: handler returned %v", tc.name, err)
		}
		if failure.Kind != err.(Error).Kind {
			t.Errorf("%s: client saw kind %v, caller saw %v",
				tc.name, failure.Kind, err.(Error).Kind)
		}
		if failure.Message == "" {
			t.Errorf("%s: client error has no message", tc.name)
		}
	}
}

// A recordingCache remembers one solution, like the storage-backed
// cache but without the round trip.
type recordingCache struct {
	entries map[string]Result
	stores  int
}

func (c *recordingCache) Lookup(signature string) (Result, bool) {
	res, ok := c.entries[signature]
	return res, ok
}

func (c *recordingCache) Store(signature string, result Result, elapsed time.Duration) {
	if c.entries == nil {
		c.entries = map[string]Result{}
	}
	c.entries[signature] = result
	c.stores++
}

func TestSolveHandlerCache(t *testing.T) {
	cache := &recordingCache{}
	body := solveBody(t, sixStarValues)

	var first SolveResponse
	if _, _, err := postSolve(t, cache, body, &first); err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	if first.Cached {
		t.Errorf("first solve reported cached")
	}
	if cache.stores != 1 {
		t.Errorf("cache stored %d entries", cache.stores)
	}

	var second SolveResponse
	_, res, err := postSolve(t, cache, body, &second)
	if err != nil {
		t.Fatalf("second solve failed: %v", err)
	}
	if !second.Cached {
		t.Errorf("second solve not served from cache")
	}
	if res.Values != sixStarSolution || second.Puzzle != first.Puzzle {
		t.Errorf("cached result differs: %+v", second)
	}
	if cache.stores != 1 {
		t.Errorf("cache hit stored again: %d stores", cache.stores)
	}

	// failures must not populate the cache
	if _, _, err := postSolve(t, cache, solveBody(t, noSolutionValues), nil); err == nil {
		t.Fatalf("unsolvable puzzle solved")
	}
	if cache.stores != 1 {
		t.Errorf("failure stored in cache")
	}
}

func postCheck(t *testing.T, body string, out interface{}) (*httptest.ResponseRecorder, error) {
	t.Helper()
	r := httptest.NewRequest("POST", "/api/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	err := CheckHandler(w, r)
	if out != nil {
		if e := json.Unmarshal(w.Body.Bytes(), out); e != nil {
			t.Fatalf("undecodable response %q: %v", w.Body.String(), e)
		}
	}
	return w, err
}

type checkTestcase struct {
	name      string
	start     Values
	ok        bool
	solutions int
}

func TestCheckHandler(t *testing.T) {
	tcs := []checkTestcase{
		{"proper", seventeenValues, true, 1},
		{"unsolvable", noSolutionValues, false, 0},
		{"ambiguous", ambiguousValues, false, 2},
	}
	for _, tc := range tcs {
		var resp CheckResponse
		w, err := postCheck(t, solveBody(t, tc.start), &resp)
		if err != nil {
			t.Fatalf("%s: check failed: %v", tc.name, err)
		}
		if w.Code != http.StatusOK {
			t.Errorf("%s: status is %d", tc.name, w.Code)
		}
		if resp.OK != tc.ok || resp.Solutions != tc.solutions {
			t.Errorf("%s: response is %+v", tc.name, resp)
		}
	}

	// malformed and contradictory inputs fail like solves do
	if w, err := postCheck(t, "{", nil); err == nil || w.Code != http.StatusBadRequest {
		t.Errorf("bad JSON check gave %d, %v", w.Code, err)
	}
	dup := Values{}
	dup[0], dup[9] = 5, 5
	if w, err := postCheck(t, solveBody(t, dup), nil); !IsContradictoryInput(err) ||
		w.Code != http.StatusUnprocessableEntity {
		t.Errorf("contradictory check gave %d, %v", w.Code, err)
	}
}

func TestHealthHandler(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	HealthHandler(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("status is %d", w.Code)
	}
	var body map[string]string
	if e := json.Unmarshal(w.Body.Bytes(), &body); e != nil || body["status"] != "ok" {
		t.Errorf("body is %q", w.Body.String())
	}
}
