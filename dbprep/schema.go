// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package dbprep installs and tears down the storage schema, and
// seeds it with solutions for the bundled sample puzzles.
package dbprep

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// figure out the migrate parameters
func getMigrateParams() (url string, path string) {
	url = os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoklite?sslmode=disable"
	}
	path = os.Getenv("DBPREP_PATH")
	if path == "" {
		if fi, err := os.Stat("dbprep"); err == nil && fi.IsDir() {
			// running from root directory
			path = "dbprep"
		} else {
			path = "."
		}
	}
	return
}

// newMigrate opens a migrator over the SQL files in the dbprep
// directory.  Callers must Close it.
func newMigrate() (*migrate.Migrate, error) {
	url, path := getMigrateParams()
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open migrations at %q against %q: %v", path, url, err)
	}
	return m, nil
}

// SchemaUp creates the database with the right schema
func SchemaUp() error {
	m, err := newMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown tears down the database
func SchemaDown() error {
	m, err := newMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the version of the database; a fresh
// database is version 0.
func SchemaVersion() (uint, error) {
	m, err := newMigrate()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, _, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Couldn't read schema version: %v", err)
	}
	return version, nil
}
