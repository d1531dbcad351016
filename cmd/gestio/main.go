package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gestio-app/gestio/internal/interfaces/cli/migrate"
	"github.com/gestio-app/gestio/internal/interfaces/cli/server"
)

func main() {
	// Local overrides from .env; missing file is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gestio",
		Short: "Gestio - gestionale clienti e abbonamenti",
		Long:  `Gestio is a small-business management server with client, product and seller tracking, subscription reporting, and reminder emails.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
