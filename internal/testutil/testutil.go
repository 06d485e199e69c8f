// Package testutil provides shared fixture helpers for blackhole tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDictionary writes one word per line into a fresh temp directory and
// returns the file path. Use an empty string to produce a blank line that
// consumes an id rank without defining a word.
func WriteDictionary(tb testing.TB, words ...string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "dictionary.txt")
	content := strings.Join(words, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write dictionary fixture: %v", err)
	}
	return path
}

// WriteFile writes content into a fresh temp directory under name and
// returns the file path.
func WriteFile(tb testing.TB, name string, content []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
