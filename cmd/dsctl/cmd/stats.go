package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show scanner statistics",
		Long:  "Shows the number of users, saved searches, completed scans and seen items.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := newClient().Stats(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), st)
			}
			return printStats(cmd.OutOrStdout(), st)
		},
	}
}
