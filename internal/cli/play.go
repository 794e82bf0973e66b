package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/yileiCS/Game-Quizzical/internal/config"
	"github.com/yileiCS/Game-Quizzical/internal/game"
	"github.com/yileiCS/Game-Quizzical/internal/logging"
	"github.com/yileiCS/Game-Quizzical/internal/scores"
	"github.com/yileiCS/Game-Quizzical/internal/trivia"
	"github.com/yileiCS/Game-Quizzical/internal/ui"
)

// newPlayCmd builds the subcommand that runs a full game loop.
func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the trivia game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context())
		},
	}
}

func runPlay(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.Logging.Path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	var logSink io.Writer
	if logFile != nil {
		logSink = logFile
		defer logFile.Close()
	}
	logger := logging.New(cfg.Name, cfg.Env, cfg.Logging.Level, logSink)
	ctx = logging.IntoContext(ctx, logger)

	client := trivia.NewClient(cfg.Trivia.BaseURL,
		&http.Client{Timeout: cfg.Trivia.FetchTimeout},
		trivia.ClientOptions{
			RetryAttempts: cfg.Trivia.RetryAttempts,
			RetryDelay:    cfg.Trivia.RetryDelay,
			Logger:        logger,
		})
	if err := client.Connect(ctx); err != nil {
		logger.Error().Err(err).Msg("trivia provider unreachable")
		return fmt.Errorf("connect to trivia provider: %w", err)
	}

	store := scores.NewFileStore(cfg.Storage.BestScorePath, cfg.Storage.RankingBoardPath, logger)

	terminal, err := ui.NewTerminal()
	if err != nil {
		return err
	}
	defer terminal.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(game.Config{
		AnswerTimeLimit: cfg.Game.AnswerTimeLimit,
		PauseGrant:      cfg.Game.PauseGrant,
		BatchSize:       cfg.Trivia.BatchSize,
	}, client, store, terminal, rng, logger)

	return session.Run(ctx)
}
