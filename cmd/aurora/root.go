package main

import (
	"context"
	"os"

	"github.com/sandevgo/aurorashell/internal/config"
	"github.com/sandevgo/aurorashell/internal/service/ui"
	"github.com/sandevgo/aurorashell/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug    bool
	plain    bool
	output   string
	noBanner bool
)

var rootCmd = &cobra.Command{
	Use:   "aurora",
	Short: "Aurora CLI — interactive Aurora EVM administration",
	Long: `Aurora CLI walks you through the administrative commands of the Aurora EVM
contract, asks for every field the command needs and prints the validated
command descriptor.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func Execute(ctx context.Context) error {
	CustomizeHelp(rootCmd)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")

	rootCmd.Flags().BoolVar(&plain, "plain", false, "use line prompts instead of the interactive TUI")
	rootCmd.Flags().StringVarP(&output, "output", "o", config.OutputText, "descriptor format: text or json")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "do not print the banner")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, os.Stderr, isDebug)
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.AppConfig) error {
	flags := cmd.Flags()
	if flags.Changed("plain") {
		cfg.Plain = plain
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("no-banner") {
		cfg.NoBanner = noBanner
	}
	return cfg.Validate()
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}
{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}{{end}}
{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
