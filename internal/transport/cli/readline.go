package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/aurorashell/internal/core"
)

type ReadLineConfig struct {
	// HistoryFile keeps answers across runs when set.
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// ReadLine prompts line by line. It serves pipes and terminals where a
// full TUI is unavailable.
type ReadLine struct {
	rl *readline.Instance
}

func NewReadLine(cfg ReadLineConfig) (*ReadLine, error) {
	if cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{rl: rl}, nil
}

func (r *ReadLine) readLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", core.ErrInterrupted
	}

	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			return "", core.ErrInterrupted
		case errors.Is(err, io.EOF):
			return "", core.ErrClosed
		default:
			return "", fmt.Errorf("%w: %v", core.ErrClosed, err)
		}
	}
	return strings.TrimSpace(line), nil
}

func (r *ReadLine) Input(ctx context.Context, label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	answer, err := r.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (r *ReadLine) Confirm(ctx context.Context, label string) (bool, error) {
	for {
		answer, err := r.readLine(ctx, label+" [y/n] ")
		if err != nil {
			return false, err
		}
		if v, ok := parseConfirm(answer); ok {
			return v, nil
		}
		fmt.Fprintln(r.rl.Stdout(), "Please answer y or n.")
	}
}

func (r *ReadLine) Select(ctx context.Context, label string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("select %q: no items", label)
	}
	if def < 0 || def >= len(items) {
		def = 0
	}

	out := r.rl.Stdout()
	fmt.Fprintf(out, "%s:\n", label)
	for i, item := range items {
		fmt.Fprintf(out, "  %2d) %s\n", i+1, item)
	}

	for {
		answer, err := r.readLine(ctx, fmt.Sprintf("Enter a number or name [%d]: ", def+1))
		if err != nil {
			return 0, err
		}
		if idx, ok := parseSelection(answer, items, def); ok {
			return idx, nil
		}
		fmt.Fprintf(out, "No such entry: %q\n", answer)
	}
}

func (r *ReadLine) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func parseConfirm(answer string) (bool, bool) {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// parseSelection accepts a 1-based position or an exact label, case-insensitively.
// An empty answer picks def.
func parseSelection(answer string, items []string, def int) (int, bool) {
	if answer == "" {
		return def, true
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(items) {
			return 0, false
		}
		return n - 1, true
	}
	for i, item := range items {
		if strings.EqualFold(item, answer) {
			return i, true
		}
	}
	return 0, false
}
