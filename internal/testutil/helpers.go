package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteWordsJSON writes term/translation pairs as a JSON word source and
// returns its path. pairs alternates term and translation.
func WriteWordsJSON(t *testing.T, dir string, pairs ...string) string {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("WriteWordsJSON needs term/translation pairs, got %d values", len(pairs))
	}

	records := make([]map[string]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		records = append(records, map[string]string{
			"english": pairs[i],
			"chinese": pairs[i+1],
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Failed to encode word source: %v", err)
	}

	path := filepath.Join(dir, "words.json")
	CreateTestFile(t, path, data)
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}
