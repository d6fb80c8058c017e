package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray config.yaml or
// .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CONFIG_PATH", "")
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5175, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, 4, cfg.Session.MinLength)
	assert.Equal(t, BackendWordList, cfg.Dictionary.Backend)
	assert.Equal(t, "en", cfg.Dictionary.Language)
	assert.True(t, cfg.Dictionary.Cache)
	assert.Equal(t, uint(3), cfg.Dictionary.Retries)
	assert.Empty(t, cfg.Scores.DBPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DICTIONARY_BACKEND", "freedict")
	t.Setenv("DICTIONARY_TIMEOUT", "750ms")
	t.Setenv("SCORES_DB_PATH", "./data/scores.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, BackendFreeDict, cfg.Dictionary.Backend)
	assert.Equal(t, 750*time.Millisecond, cfg.Dictionary.Timeout)
	assert.Equal(t, "./data/scores.db", cfg.Scores.DBPath)
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	writeYAML(t, dir, `
server:
  port: 8081
session:
  min_length: 5
dictionary:
  backend: kwg
  kwg_lexicon: CSW21
log:
  level: debug
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Session.MinLength)
	assert.Equal(t, BackendKWG, cfg.Dictionary.Backend)
	assert.Equal(t, "CSW21", cfg.Dictionary.KWGLexicon)
	assert.Equal(t, "english", cfg.Dictionary.KWGDistribution)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "config: file")
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("DICTIONARY_BACKEND", "oracle")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "dictionary.backend")
	assert.ErrorContains(t, err, "log.level")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:     ServerConfig{Port: 5175},
			Session:    SessionConfig{JWTSecret: "s", TokenTTL: time.Hour, MinLength: 4},
			Dictionary: DictionaryConfig{Backend: BackendWordList, Language: "en"},
			Scores:     ScoresConfig{Limit: 20},
			Log:        LogConfig{Level: "info"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"secret", func(c *Config) { c.Session.JWTSecret = "" }, "session.jwt_secret"},
		{"ttl", func(c *Config) { c.Session.TokenTTL = 0 }, "session.token_ttl"},
		{"min length", func(c *Config) { c.Session.MinLength = 0 }, "session.min_length"},
		{"language", func(c *Config) { c.Dictionary.Language = "" }, "dictionary.language"},
		{"kwg lexicon", func(c *Config) {
			c.Dictionary.Backend = BackendKWG
			c.Dictionary.KWGLexicon = ""
		}, "dictionary.kwg_lexicon"},
		{"scores limit", func(c *Config) { c.Scores.Limit = -1 }, "scores.limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
