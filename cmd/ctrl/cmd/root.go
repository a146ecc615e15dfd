package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ctrl",
	Short: "resolve and mutate the desired deployment state of services",
	Long:  `resolve and mutate the desired deployment state of services`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
