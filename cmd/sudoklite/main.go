// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

// The sudoklite server exposes the solving engine as a JSON web
// service.  When the solution store is reachable it serves and
// records solutions through it; otherwise it solves everything
// fresh.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JeongHan-Bae/SudokLite/puzzle"
	"github.com/JeongHan-Bae/SudokLite/storage"
)

func main() {
	// connect to storage; run cacheless when it's unavailable
	var cache puzzle.SolutionCache
	if cacheId, databaseId, err := storage.Connect(); err != nil {
		log.Printf("No solution store (%v); solving without a cache.", err)
	} else {
		log.Printf("Connected to cache at %q and database at %q.", cacheId, databaseId)
		cache = storage.SolveCache{}
		defer storage.Close()
	}

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}
	srv := &http.Server{Addr: port, Handler: newMux(cache)}

	go func() {
		log.Printf("Listening on %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Listener failure: ", err)
		}
	}()

	// shut down cleanly on interrupt or termination
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Caught %v; shutting down.", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown failure: %v", err)
	}
}

// newMux wires the service endpoints.
func newMux(cache puzzle.SolutionCache) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/solve", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if res, err := puzzle.SolveHandler(cache, w, r); err != nil {
			log.Printf("Solve failed: %v", err)
		} else {
			log.Printf("Solved %s with %d guesses.", r.RemoteAddr, res.Guesses)
		}
	})
	mux.HandleFunc("/api/check", func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}
		if err := puzzle.CheckHandler(w, r); err != nil {
			log.Printf("Check failed: %v", err)
		}
	})
	mux.HandleFunc("/api/health", puzzle.HealthHandler)
	return mux
}

// requirePost rejects non-POST requests to the solving endpoints.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != "POST" {
		log.Printf("%s %s unexpected; no action taken.", r.Method, r.URL.Path)
		w.Header().Add("Allow", "POST")
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
