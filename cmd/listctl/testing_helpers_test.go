package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fruitsDoc = `
items:
  - key: fruits
    text: Fruits
    items:
      - key: apple
      - key: banana
      - key: cherry
        disabled: true
  - key: veg
    items:
      - key: carrot
  - key: bread
`

// writeDoc writes content to a temp file and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags restores global flag state after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		jsonOut = false
		verbose = false
	})
}
