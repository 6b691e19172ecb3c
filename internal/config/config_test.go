package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestDefault_IsValid(t *testing.T) {
	isolate(t)
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "multiple", cfg.AnswerMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, string(answer.ModeMultiple), cfg.AnswerMode)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, filepath.Join(dir, "state", "mathblitz", "mathblitz.log"), cfg.Log.File)
}

func TestLoad_FromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mathblitz.yaml")
	content := `answer_mode: essay
seed: 42
log:
  level: debug
  max_backups: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "essay", cfg.AnswerMode)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "unset keys keep defaults")
}

func TestLoad_DefaultConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "mathblitz")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("answer_mode: random\n"), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.AnswerMode)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mathblitz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answer_mode: essay\n"), 0o644))

	t.Setenv("MATHBLITZ_ANSWER_MODE", "random")
	t.Setenv("MATHBLITZ_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.AnswerMode)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := config.Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("MATHBLITZ_ANSWER_MODE", "oral")

	_, err := config.Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, answer.ErrUnknownAnswerMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"valid", func(c *config.Config) {}, ""},
		{"bad answer mode", func(c *config.Config) { c.AnswerMode = "oral" }, "answer_mode"},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
		{"zero size", func(c *config.Config) { c.Log.MaxSizeMB = 0 }, "log.max_size_mb"},
		{"negative backups", func(c *config.Config) { c.Log.MaxBackups = -1 }, "log.max_backups"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := config.Default()
	cfg.AnswerMode = "oral"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answer_mode")
	assert.Contains(t, err.Error(), "log.level")
}
