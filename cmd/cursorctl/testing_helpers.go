package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes data to a fresh file under t.TempDir.
func writeTestFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// decodeJSON unmarshals captured output into v
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}

// resetFlags restores every command flag to its default
func resetFlags() {
	verbose, quiet, jsonOut, logFile = false, false, false, ""

	peekOffset, peekType, peekLE, peekLen, peekEncoding, peekCount = 0, typeU32, false, 1, "", 1
	pokeOffset, pokeType, pokeLE, pokeValue, pokeEncoding = 0, typeU32, false, "", ""
	fillOffset, fillLen, fillValue = 0, 0, 0
	splitSize, splitOffset, splitLimit = 16, 0, 0
	stringsOffset, stringsEncoding, stringsMinLen = 0, "", 1
	createSize, createRandom, createForce = 0, false, false
}
