package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "quizzical", cfg.Name)
	assert.Equal(t, "https://opentdb.com", cfg.Trivia.BaseURL)
	assert.Equal(t, 30, cfg.Trivia.BatchSize)
	assert.Equal(t, 3, cfg.Trivia.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Trivia.RetryDelay)
	assert.Equal(t, 20*time.Second, cfg.Game.AnswerTimeLimit)
	assert.Equal(t, 60*time.Second, cfg.Game.PauseGrant)
	assert.Equal(t, "best_score.txt", cfg.Storage.BestScorePath)
	assert.Equal(t, "rankingboard.yaml", cfg.Storage.RankingBoardPath)
}

func TestLoadWithoutLogPath(t *testing.T) {
	// t.Setenv registers the restore; the load itself runs with the
	// variable absent, not empty.
	t.Setenv("LOG_PATH", "placeholder")
	os.Unsetenv("LOG_PATH")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, cfg.Logging.Path, "logging to a file is optional")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANSWER_TIME_LIMIT_SECONDS", "45s")
	t.Setenv("PAUSE_GRANT_SECONDS", "30s")
	t.Setenv("RETRY_ATTEMPTS", "5")
	t.Setenv("BEST_SCORE_PATH", "/tmp/bs.txt")
	t.Setenv("RANKINGBOARD_PATH", "/tmp/rb.yaml")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Game.AnswerTimeLimit)
	assert.Equal(t, 30*time.Second, cfg.Game.PauseGrant)
	assert.Equal(t, 5, cfg.Trivia.RetryAttempts)
	assert.Equal(t, "/tmp/bs.txt", cfg.Storage.BestScorePath)
	assert.Equal(t, "/tmp/rb.yaml", cfg.Storage.RankingBoardPath)
}
