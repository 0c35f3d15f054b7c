package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the glint version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.VersionString())
		return err
	},
}
