package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the cvbind binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "cvbind")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/cvbind ./cmd/cvbind'", binaryPath)
	}

	return binaryPath
}

// publicDir is the sample site shipped with the repository
func publicDir() string {
	return filepath.Join("..", "..", "public")
}

// copyPublic copies the sample site into a temp dir so tests can modify it.
func copyPublic(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"index.html", "data_en.json", "data_de.json", "data_fr.json"} {
		data, err := os.ReadFile(filepath.Join(publicDir(), name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}
