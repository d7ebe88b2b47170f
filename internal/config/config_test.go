package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxTries)
	assert.Equal(t, "contains", cfg.Scoring)
	assert.Nil(t, cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "word_length: 4\nmax_tries: 8\nscoring: standard\nseed: 12\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.WordLength)
	assert.Equal(t, 8, cfg.MaxTries)
	assert.Equal(t, "standard", cfg.Scoring)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(12), *cfg.Seed)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "max_tries: 8\nsalt: from-file\n")
	t.Setenv("WORDLE_MAX_TRIES", "3")
	t.Setenv("WORDLE_NO_COLOR", "true")
	t.Setenv("WORDLE_SEED", "99")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxTries)
	assert.Equal(t, "from-file", cfg.Salt)
	assert.True(t, cfg.NoColor)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(99), *cfg.Seed)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("WORDLE_MAX_TRIES", "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "max_tries: [oops\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.WordLength = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.MaxTries = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Scoring = "fuzzy"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestScorer_FallsBackToDefault(t *testing.T) {
	cfg := Default()
	cfg.Scoring = "fuzzy"
	assert.NotNil(t, cfg.Scorer())
}
