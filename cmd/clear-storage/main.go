// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

// Clear and re-initialize the sudoklite storage system.  All
// stored solutions are lost; the cache is flushed and the schema
// is rebuilt with only the sample solutions.
package main

import (
	"fmt"
	"log"

	"github.com/JeongHan-Bae/SudokLite/dbprep"
)

func main() {
	log.Printf("Removing existing data storage and cache...")
	if err := clearStorage(); err != nil {
		log.Fatalf("Couldn't clear storage: %v", err)
	}
	log.Printf("Database re-initialized.")
}

func clearStorage() error {
	// clear cache
	if err := dbprep.ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}

	// tear down existing database
	version, err := dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get initial data schema version: %v", err)
	}
	if version > 0 {
		if err := dbprep.SchemaDown(); err != nil {
			return fmt.Errorf("Couldn't remove database: %v", err)
		}
	}

	// rebuild and reseed
	if err := dbprep.SchemaUp(); err != nil {
		return fmt.Errorf("Couldn't install data schema: %v", err)
	}
	version, err = dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get upgraded data schema version: %v", err)
	}
	if version == 0 {
		return fmt.Errorf("Database schema still at version 0, shouldn't be.")
	}
	if err := dbprep.DataUp(); err != nil {
		return fmt.Errorf("Couldn't load base data: %v", err)
	}
	return nil
}
