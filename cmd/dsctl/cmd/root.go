// Package cmd implements the dsctl CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/deal-scanner/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "dsctl",
		Short: "CLI client for the deal scanner",
		Long: "dsctl is a command-line client for the deal scanner API.\n" +
			"It lets you manage saved searches, read scanner statistics,\n" +
			"and trigger scan cycles from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.dsctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("owner", "", "Discord user id owning the searches")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("owner", rootCmd.PersistentFlags().Lookup("owner")))

	rootCmd.AddCommand(searchesCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(scanCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dsctl")
	}

	viper.SetEnvPrefix("DSCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

// owner returns the configured owner id.
func owner() (string, error) {
	id := viper.GetString("owner")
	if id == "" {
		return "", errors.New("--owner is required (or set DSCTL_OWNER)")
	}
	return id, nil
}
