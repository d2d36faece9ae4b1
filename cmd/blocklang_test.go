package main

import (
	"path/filepath"
	"testing"
)

func TestHistoryPath(t *testing.T) {
	t.Setenv("HOME", "/home/someone")
	if got := historyPath(); got != filepath.Join("/home/someone", historyFile) {
		t.Fatalf("unexpected history path: %v", got)
	}

	t.Setenv("HOME", "")
	if got := historyPath(); got != "" {
		t.Fatalf("expected no history without a home directory, got: %v", got)
	}
}
