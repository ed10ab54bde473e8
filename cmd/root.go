package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursehub",
	Short: "Course discovery backend",
	Long:  `Backend for the course discovery site: merges CMS editorial content with the partner enrollment feed.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
