package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/config"
	"github.com/Ashish-Code-01/internshp-project/internal/service"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the ranked leaderboard from the configured storage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		interns, _, closer, err := storage.NewRepositories(cmd.Context(), cfg, internal.NopLogger())
		if err != nil {
			return fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
		}
		defer closer.Close()

		ranked, err := service.Leaderboard(cmd.Context(), interns)
		if err != nil {
			return err
		}
		return printLeaderboard(cmd.OutOrStdout(), ranked)
	},
}

var printer = message.NewPrinter(language.English)

func formatCurrency(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

func printLeaderboard(w io.Writer, ranked []internal.Intern) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tRAISED\tDONATIONS\tREFERRAL")
	for _, in := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", in.Rank, in.Name, formatCurrency(in.TotalRaised), in.TotalDonations, in.ReferralCode)
	}
	summary := service.Summarize(ranked)
	fmt.Fprintf(tw, "\t%d interns\t%s\t%d\t\n", summary.Participants, formatCurrency(summary.TotalRaised), summary.TotalDonations)
	return tw.Flush()
}
