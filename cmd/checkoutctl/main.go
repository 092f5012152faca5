package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "checkoutctl",
		Short:        "checkoutctl - operator tool for the GEDS checkout",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(historyCmd())
	return rootCmd
}
