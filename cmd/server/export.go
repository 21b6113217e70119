package main

import (
	"fmt"

	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the built-in dataset as JSON for the file backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.WriteDataset(args[0], storage.SeedDataset()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote seed dataset to %s\n", args[0])
		return nil
	},
}
