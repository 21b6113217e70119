package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundboard",
	Short: "Intern fundraising dashboard backend",
	Long: `fundboard serves the intern fundraising dashboard API: the current
intern, the ranked leaderboard, achievements and the demo login/signup flow.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd, leaderboardCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
