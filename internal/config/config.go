package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration for the game.
type App struct {
	Name string `env:"APP_NAME" envDefault:"quizzical"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	Trivia  Trivia
	Game    Game
	Storage Storage
	Logging Logging
}

// Trivia captures the question provider endpoint and fetch policy.
type Trivia struct {
	BaseURL       string        `env:"TRIVIA_BASE_URL" envDefault:"https://opentdb.com"`
	FetchTimeout  time.Duration `env:"TRIVIA_FETCH_TIMEOUT_SECONDS" envDefault:"5s"`
	BatchSize     int           `env:"TRIVIA_BATCH_SIZE" envDefault:"30"`
	RetryAttempts int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay    time.Duration `env:"RETRY_DELAY_SECONDS" envDefault:"1s"`
}

// Game groups gameplay defaults.
type Game struct {
	AnswerTimeLimit time.Duration `env:"ANSWER_TIME_LIMIT_SECONDS" envDefault:"20s"`
	PauseGrant      time.Duration `env:"PAUSE_GRANT_SECONDS" envDefault:"60s"`
}

// Storage names the local score files.
type Storage struct {
	BestScorePath    string `env:"BEST_SCORE_PATH" envDefault:"best_score.txt"`
	RankingBoardPath string `env:"RANKINGBOARD_PATH" envDefault:"rankingboard.yaml"`
}

// Logging configures the file-backed structured log. The terminal runs in
// raw mode during a match, so logs never go to stdout.
type Logging struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	Path  string `env:"LOG_PATH" envDefault:""`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
