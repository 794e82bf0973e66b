package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yileiCS/Game-Quizzical/internal/config"
	"github.com/yileiCS/Game-Quizzical/internal/scores"
)

// newBoardCmd prints the saved ranking board without starting a game.
func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the saved ranking board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			store := scores.NewFileStore(cfg.Storage.BestScorePath, cfg.Storage.RankingBoardPath, zerolog.Nop())
			entries := store.Board()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Best score: %d\n\n", store.BestScore())
			if len(entries) == 0 {
				fmt.Fprintln(out, "No records yet.")
				return nil
			}
			fmt.Fprintf(out, "%-4s  %-20s  %5s\n", "Rank", "Name", "Score")
			for i, e := range entries {
				fmt.Fprintf(out, "%-4d  %-20s  %5d\n", i+1, e.Name, e.Score)
			}
			return nil
		},
	}
}
