package main

import (
	"fmt"

	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aurora",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", core.AppBinary, core.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
