package cmd

import (
	"github.com/spf13/cobra"
)

var envFiles = []string{".env"}

var rootCmd = &cobra.Command{
	Use:   "greenmint",
	Short: "Renewable energy attestation and certificate minting service.",
	Long: `greenmint takes meter readings from registered farmers, attests them with a
pinned document and mints on-chain certificates that companies can browse.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(reconcileCommand())
}
