package main

import (
	"os"

	"github.com/spf13/cobra"

	"supportal/internal/interfaces/cli/migrate"
	"supportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "supportal",
		Short: "Supportal - client support request portal",
		Long:  `Supportal is a token-authenticated support portal where clients submit requests with image attachments and the support team manages them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
