package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrform/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type envConfig struct {
	Text string `env:"CFG_TEST_TEXT" envDefault:"Hello from QR frontend"`
	Lang string `env:"CFG_TEST_LANG" envDefault:"en"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"CFG_TEST_FROM_FILE"`
	Override string `env:"CFG_TEST_OVERRIDE"`
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		config.Reset()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_TEXT", "custom")
		t.Setenv("CFG_TEST_LANG", "pt")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "custom", cfg.Text)
		assert.Equal(t, "pt", cfg.Lang)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_TEXT", "first")
		var first envConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_TEXT", "second")
		var second envConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, "first", second.Text)
	})

	t.Run("required variable missing", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("CFG_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		require.ErrorIs(t, config.Load[envConfig](nil), config.ErrNilPointer)
	})

	t.Run("env files do not override environment", func(t *testing.T) {
		config.Reset()
		dir := t.TempDir()
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=file\nCFG_TEST_OVERRIDE=file\n"), 0o600))
		t.Setenv("CFG_TEST_OVERRIDE", "env")
		t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))

		assert.Equal(t, "file", cfg.FromFile)
		assert.Equal(t, "env", cfg.Override)
	})
}
