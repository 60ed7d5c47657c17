package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/vocab")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "assets/data/vocab.json", cfg.VocabSource)
	assert.Equal(t, 30, cfg.Quiz.MaxWordsPerGroup)
	assert.Equal(t, 10, cfg.Quiz.DefaultWordsPerGroup)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.MatchDelay)
	assert.Equal(t, 700*time.Millisecond, cfg.Game.MismatchDelay)
	assert.InDelta(t, 0.4, cfg.Search.Threshold, 1e-9)
	assert.Equal(t, 2, cfg.Search.MinMatchLength)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.TTL)
	assert.Equal(t, "0 9 * * *", cfg.DailyWord.Schedule)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/vocab", dsn)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("env: dev\ngame:\n  mismatch_delay: 1s\nquiz:\n  max_words_per_group: 20\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("APP_ENV", "production")
	t.Setenv("GAME_MATCH_DELAY", "250ms")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, time.Second, cfg.Game.MismatchDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.MatchDelay)
	assert.Equal(t, 20, cfg.Quiz.MaxWordsPerGroup)
}

func TestDB_DSNMissing(t *testing.T) {
	_, err := DB{}.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}
