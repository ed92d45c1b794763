package main

import (
	"fmt"

	"github.com/sandevgo/aurorashell/internal/command"
	"github.com/sandevgo/aurorashell/internal/service/ui"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands offered by the interactive menu",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, k := range command.Kinds() {
			fmt.Fprintf(out, "%2d. %-24s %s\n", i+1, k, ui.DescStyle.Render(k.Description()))
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
