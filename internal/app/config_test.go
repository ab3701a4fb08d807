package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysigner/internal/app"
	kserrors "keysigner/internal/errors"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	v := app.NewViper()
	v.Set("home", home)

	cfg, err := app.LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, app.OutputText, cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Keypair)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("keypair: /keys/from-file.json\noutput: json\n"), 0o600))

	v := app.NewViper()
	v.Set("home", home)
	cfg, err := app.LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/keys/from-file.json", cfg.Keypair)
	assert.Equal(t, app.OutputJSON, cfg.Output)

	t.Setenv("KEYSIGNER_KEYPAIR", "/keys/from-env.json")
	v = app.NewViper()
	v.Set("home", home)
	cfg, err = app.LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/keys/from-env.json", cfg.Keypair)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	v := app.NewViper()
	v.Set("home", t.TempDir())
	_, err := app.LoadConfig(v, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	v := app.NewViper()
	v.Set("home", t.TempDir())
	v.Set("output", "xml")
	_, err := app.LoadConfig(v, "")
	require.ErrorIs(t, err, kserrors.ErrInvalidOutputFormat)
}

func TestNewWire(t *testing.T) {
	w := app.NewWire(&app.Config{Output: app.OutputText}, zerolog.Nop(), "")
	require.NotNil(t, w.Keypairs)
	require.NotNil(t, w.Store)

	path := filepath.Join(t.TempDir(), "kp.json")
	kp := w.Keypairs.Generate()
	require.NoError(t, w.Keypairs.Save(kp, path))
	got, err := w.Store.LoadKeypair(path, "")
	require.NoError(t, err)
	assert.Equal(t, kp, got)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	v := app.NewViper()
	v.Set("home", t.TempDir())
	v.Set("log_level", "loud")
	_, err := app.LoadConfig(v, "")
	require.Error(t, err)
}
