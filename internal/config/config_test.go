package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/listkit/pkg/selection"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, selection.ModeMultiple, c.SelectionMode())
	require.False(t, c.Selection.DisallowEmpty)
	require.False(t, c.Selection.KeepAll)
	require.False(t, c.Fuzzy())
	require.False(t, c.Log.Enabled)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoad_DefaultFileLocation(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "listctl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listctl", "config.yaml"), []byte(`
selection:
  mode: single
  disallow_empty: true
filter:
  kind: fuzzy
`), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, selection.ModeSingle, c.SelectionMode())
	require.True(t, c.Selection.DisallowEmpty)
	require.True(t, c.Fuzzy())
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "listctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selection:\n  mode: single\nlog:\n  level: warn\n"), 0o644))

	t.Setenv("LISTCTL_SELECTION_MODE", "none")
	t.Setenv("LISTCTL_SELECTION_KEEP_ALL", "true")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, selection.ModeNone, c.SelectionMode())
	require.True(t, c.Selection.KeepAll)
	require.Equal(t, "warn", c.Log.Level)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	isolate(t)

	t.Setenv("LISTCTL_SELECTION_MODE", "many")
	_, err := Load("")
	require.ErrorContains(t, err, "unknown mode")

	t.Setenv("LISTCTL_SELECTION_MODE", "single")
	t.Setenv("LISTCTL_FILTER_KIND", "regex")
	_, err = Load("")
	require.ErrorContains(t, err, "unknown filter kind")
}
