package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizzical",
		Short: "Interactive terminal trivia game",
		RunE: func(cmd *cobra.Command, args []string) error {
			// bare invocation starts a game
			return runPlay(cmd.Context())
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newBoardCmd())
	cmd.AddCommand(newResetCmd())
	return cmd
}
