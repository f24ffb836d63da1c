package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonstaff/OneRepMax/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ONEREPMAX_DATABASE_URL", "")
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("DEV_MODE", "")
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "file:"+filepath.Join(home, ".config", "onerepmax", "lifts.db"), cfg.DB.ConnectionString)
	assert.Equal(t, "epley", cfg.Display.Formula)
	assert.Equal(t, "kg", cfg.Display.Unit)
	assert.Equal(t, float32(2.5), cfg.Display.Increment)
	assert.Equal(t, 12, cfg.Display.MaxReps)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
connection_string = "file:/tmp/other.db"

[display]
formula = "wathan"
unit = "lb"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file:/tmp/other.db", cfg.DB.ConnectionString)
	assert.Equal(t, "wathan", cfg.Display.Formula)
	assert.Equal(t, "lb", cfg.Display.Unit)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 12, cfg.Display.MaxReps)
}

func TestLoadConfigInvalid(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[display\nformula ="), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("unknown formula", func(t *testing.T) {
		path := filepath.Join(dir, "formula.toml")
		require.NoError(t, os.WriteFile(path, []byte("[display]\nformula = \"guess\"\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, formula.ErrUnknownFormula)
	})

	t.Run("negative increment", func(t *testing.T) {
		path := filepath.Join(dir, "increment.toml")
		require.NoError(t, os.WriteFile(path, []byte("[display]\nincrement = -1.0\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "increment")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("ONEREPMAX_DATABASE_URL wins", func(t *testing.T) {
		isolate(t)
		t.Setenv("ONEREPMAX_DATABASE_URL", "file:/tmp/env.db")
		t.Setenv("TURSO_DATABASE_URL", "libsql://lifts.turso.io")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "file:/tmp/env.db", cfg.DB.ConnectionString)
	})

	t.Run("TURSO_DATABASE_URL with token", func(t *testing.T) {
		isolate(t)
		t.Setenv("TURSO_DATABASE_URL", "libsql://lifts.turso.io")
		t.Setenv("TURSO_AUTH_TOKEN", "secret")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "libsql://lifts.turso.io?authToken=secret", cfg.DB.ConnectionString)
	})

	t.Run("DEV_MODE uses local file", func(t *testing.T) {
		isolate(t)
		t.Setenv("TURSO_DATABASE_URL", "libsql://lifts.turso.io")
		t.Setenv("DEV_MODE", "true")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "file:./local.db", cfg.DB.ConnectionString)
	})
}
