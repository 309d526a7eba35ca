package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/creditkit/pkg/config"
)

type testConfig struct {
	Host  string `env:"CONFIG_TEST_HOST" envDefault:"localhost"`
	Port  int    `env:"CONFIG_TEST_PORT" envDefault:"5432"`
	Debug bool   `env:"CONFIG_TEST_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when unset", func(t *testing.T) {
		cfg, err := config.Load[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_HOST", "db.internal")
		t.Setenv("CONFIG_TEST_PORT", "6432")
		t.Setenv("CONFIG_TEST_DEBUG", "true")

		cfg, err := config.Load[testConfig]()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 6432, cfg.Port)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		_, err := config.Load[requiredConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value fails", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_PORT", "not-a-number")

		_, err := config.Load[testConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoadFromFiles(t *testing.T) {
	t.Run("loads named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("CONFIG_TEST_FILE_HOST=from-file\n"), 0o600))

		type fileConfig struct {
			Host string `env:"CONFIG_TEST_FILE_HOST"`
		}
		cfg, err := config.LoadFromFiles[fileConfig](path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Host)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.LoadFromFiles[testConfig]("nonexistent.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		cfg := config.MustLoad[testConfig]()
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoad[requiredConfig]()
		})
	})
}
