package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when file is missing", func(t *testing.T) {
		// Given: no config file on disk
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "TIC_TAC_TOE_SESSION", conf.Session.CookieName)
		assert.Equal(t, time.Hour, conf.Session.MaxAge)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads yaml file", func(t *testing.T) {
		// Given: a config file with overrides
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"http-port: \"9000\"\n" +
			"session:\n  cookie-name: SID\n  max-age: 30m\n" +
			"redis:\n  enabled: true\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values win
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9000", conf.HTTPPort)
		assert.Equal(t, "SID", conf.Session.CookieName)
		assert.Equal(t, 30*time.Minute, conf.Session.MaxAge)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("SESSION_MAX_AGE", "2h")
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: env values are used
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, 2*time.Hour, conf.Session.MaxAge)
	})

	t.Run("Rejects non-positive max-age", func(t *testing.T) {
		t.Setenv("SESSION_MAX_AGE", "0s")

		_, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "config.yml")) })
	})
}
