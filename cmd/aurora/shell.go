package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sandevgo/aurorashell/internal/config"
	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/sandevgo/aurorashell/internal/service/session"
	"github.com/sandevgo/aurorashell/internal/transport/cli"
	"github.com/sandevgo/aurorashell/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
    _                                  ____ _     ___
   / \  _   _ _ __ ___  _ __ __ _     / ___| |   |_ _|
  / _ \| | | | '__/ _ \| '__/ _' |   | |   | |    | |
 / ___ \ |_| | | | (_) | | | (_| |   | |___| |___ | |
/_/   \_\__,_|_|  \___/|_|  \__,_|    \____|_____|___|
`

func runShell(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Setup logger
	var flushLog func()
	ctx, flushLog = setupLogger(ctx)
	defer flushLog()

	logger := log.FromCtx(ctx)

	if err := config.LoadEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Warn().Err(err).Msg("continuing without .env file")
	}

	cfg, err := config.NewAppConfig(ctx)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	prompter, closePrompter, err := newPrompter(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize prompter: %w", err)
	}
	defer closePrompter()

	// A signal may arrive while a prompt is blocked on input; the watcher
	// ends the process from outside the session loop.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	stop := session.Watch(ctx, sig, func(s os.Signal) {
		cancel()
		logger.Debug().Stringer("signal", s).Msg("terminating")
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, session.Terminated)
		flushLog()
		os.Exit(InterruptExitCode)
	})
	defer stop()

	var opts []session.Option
	if cfg.Output == config.OutputJSON {
		opts = append(opts, session.WithRenderer(session.RenderJSON))
	}
	if !cfg.NoBanner {
		opts = append(opts, session.WithBanner(banner))
	}

	return session.New(prompter, os.Stdout, opts...).Run(ctx)
}

// newPrompter picks the TUI for interactive terminals and line prompts
// otherwise.
func newPrompter(cfg *config.AppConfig) (core.Prompter, func(), error) {
	if !cfg.Plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return cli.NewTUI(os.Stdin, os.Stdout), func() {}, nil
	}

	rl, err := cli.NewReadLine(cli.ReadLineConfig{HistoryFile: cfg.GetHistoryPath()})
	if err != nil {
		return nil, nil, err
	}
	return rl, func() { _ = rl.Close() }, nil
}
