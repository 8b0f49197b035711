package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd - builds the tictactoe command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with move history and time travel",
		Long: `tictactoe hosts tic-tac-toe sessions over HTTP and WebSocket,
or runs a single game in the terminal.

Every move is kept, any past step can be revisited, and playing from
a past step drops the moves that came after it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a local game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Play(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
