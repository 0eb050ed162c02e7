package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/x.json\nformat: json\ncolor: false\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", f.DBPath)
	assert.Equal(t, "json", f.Format)
	require.NotNil(t, f.Color)
	assert.False(t, *f.Color)
}

func TestLoadFileMissing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)

	f, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ]["), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv("XDG_DATA_HOME", "/data")

	assert.Equal(t, "/flag.json", ResolveDBPath("/flag.json", File{DBPath: "/cfg.json"}))

	t.Setenv(EnvDBPath, "/env.json")
	assert.Equal(t, "/env.json", ResolveDBPath("", File{DBPath: "/cfg.json"}))

	t.Setenv(EnvDBPath, "")
	assert.Equal(t, "/cfg.json", ResolveDBPath("", File{DBPath: "/cfg.json"}))

	assert.Equal(t, filepath.Join("/data", "habitctl", "db.json"), ResolveDBPath("", File{}))
}

func TestResolveToday(t *testing.T) {
	t.Setenv(EnvToday, "")
	assert.Equal(t, "2026-05-01", ResolveToday("2026-05-01", "2026-09-01"))
	assert.Equal(t, "2026-09-01", ResolveToday("", "2026-09-01"))

	t.Setenv(EnvToday, "2026-06-15")
	assert.Equal(t, "2026-06-15", ResolveToday("", "2026-09-01"))
	assert.Equal(t, "2026-05-01", ResolveToday("2026-05-01", "2026-09-01"))
}

func TestColorEnabled(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	yes, no := true, false

	assert.True(t, ColorEnabled(false, File{}))
	assert.False(t, ColorEnabled(true, File{}))
	assert.False(t, ColorEnabled(false, File{Color: &no}))
	assert.True(t, ColorEnabled(false, File{Color: &yes}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(false, File{Color: &yes}))
}
