package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run a scan cycle now",
		Long: "Runs one scan cycle over every saved search and waits for its summary.\n" +
			"A scheduled cycle in progress finishes first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := newClient().Scan(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), result)
			}
			return printScanResult(cmd.OutOrStdout(), result)
		},
	}
}
