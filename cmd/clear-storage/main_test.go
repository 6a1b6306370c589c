// sudoklite - a Sudoku solving engine and service.
// Copyright (C) 2025 JeongHan-Bae.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearStorage(t *testing.T) {
	if os.Getenv("SUDOKLITE_TEST_STORAGE") == "" {
		t.Skip("set SUDOKLITE_TEST_STORAGE to run storage tests")
	}
	os.Setenv("DBPREP_PATH", filepath.Join("..", "..", "dbprep"))
	if err := clearStorage(); err != nil {
		t.Errorf("%v", err)
	}
}
