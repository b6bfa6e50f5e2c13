package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// GoldenUpdateEnv names the variable that rewrites golden files instead of comparing.
const GoldenUpdateEnv = "GOLDEN_UPDATE"

// Golden compares got against testdata/<name>.golden.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(GoldenUpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("output mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}

// GoldenString is Golden for string output.
func GoldenString(t *testing.T, name, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
