// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

// Prepare the sudoklite storage system: bring the database schema
// up to date and seed the sample solutions.  Existing solutions
// are left in place.
package main

import (
	"log"

	"github.com/JeongHan-Bae/SudokLite/dbprep"
)

func main() {
	log.Printf("Preparing data storage...")
	if err := dbprep.EnsureData(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	version, err := dbprep.SchemaVersion()
	if err != nil {
		log.Fatalf("Couldn't read schema version: %v", err)
	}
	log.Printf("Database ready at schema version %d.", version)
}
