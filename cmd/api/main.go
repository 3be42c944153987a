package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	host       string
	port       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "techsolutions",
		Short: "TechSolutions landing page and quote request API",
		Long: `Serves the TechSolutions landing page and stores quote requests
submitted through its form. Running without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (overrides CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.host, "host", "", "Interface to bind (overrides HOST)")
	rootCmd.PersistentFlags().StringVarP(&opts.port, "port", "p", "", "Port to listen on (overrides PORT)")

	rootCmd.AddCommand(newServeCmd(opts), newMigrateCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
