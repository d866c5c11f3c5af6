package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/deal-scanner/internal/api/client"
)

func searchesCmd() *cobra.Command {
	searchesRoot := &cobra.Command{
		Use:   "searches",
		Short: "Manage saved searches",
		Long: "Manage the saved searches of one owner. Each search defines catalog keywords,\n" +
			"a maximum price, and the resale margin used to estimate profit.",
	}

	searchesRoot.AddCommand(
		searchesListCmd(),
		searchesAddCmd(),
		searchesRemoveCmd(),
	)

	return searchesRoot
}

func searchesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List an owner's searches",
		Example: `  dsctl searches list --owner 123456789012345678
  dsctl searches list --owner 123456789012345678 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := owner()
			if err != nil {
				return err
			}
			searches, err := newClient().ListSearches(context.Background(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), searches)
			}
			if len(searches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No searches found.")
				return nil
			}
			return printSearchTable(cmd.OutOrStdout(), searches)
		},
	}
}

func searchesAddCmd() *cobra.Command {
	var req apiclient.AddSearchRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a search",
		Long: "Add a saved search for the owner. The margin and minimum profit fall back\n" +
			"to the server defaults when omitted. The search is scanned on the next cycle.",
		Example: `  # Sneakers up to 30, resold at 1.8x
  dsctl searches add --owner 123456789012345678 --name nike --keywords "nike air max" --max-price 30

  # Custom margin and profit floor
  dsctl searches add --owner 123456789012345678 --name levis --keywords "levis 501" \
    --max-price 25 --margin 2.2 --min-profit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := owner()
			if err != nil {
				return err
			}
			if req.Name == "" || req.Keywords == "" || req.MaxPrice == "" {
				return fmt.Errorf("--name, --keywords and --max-price are required")
			}
			created, err := newClient().AddSearch(context.Background(), id, req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			return printSearchDetail(cmd.OutOrStdout(), created)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "search name")
	cmd.Flags().StringVar(&req.Keywords, "keywords", "", "catalog search keywords")
	cmd.Flags().StringVar(&req.MaxPrice, "max-price", "", "highest listing price")
	cmd.Flags().StringVar(&req.ProfitMargin, "margin", "", "resale multiplier (default from server)")
	cmd.Flags().StringVar(&req.MinProfit, "min-profit", "", "minimum estimated profit (default from server)")

	return cmd
}

func searchesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position>",
		Short:   "Remove a search by its list position",
		Example: `  dsctl searches remove 2 --owner 123456789012345678`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := owner()
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 1 {
				return fmt.Errorf("position must be a number of 1 or greater (got %q)", args[0])
			}
			removed, err := newClient().RemoveSearch(context.Background(), id, index)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), removed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Search %q removed.\n", removed.Name)
			return nil
		},
	}
}
