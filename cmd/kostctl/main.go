// Command kostctl runs operator tasks against the kostdesk database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kostctl",
		Short: "kostdesk operator tool",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		statusCmd(),
		sweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
