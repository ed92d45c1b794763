package core

import (
	"context"
	"errors"
)

var (
	// ErrInterrupted is returned when the operator aborts a prompt (Ctrl-C)
	// or the surrounding context is cancelled.
	ErrInterrupted = errors.New("prompt interrupted")

	// ErrClosed is returned when the input stream is closed or unreadable.
	ErrClosed = errors.New("input stream closed")
)

// Prompter is the interactive input/output stream the session talks to.
// Every call blocks until the operator answers. Text answers come back
// trimmed of surrounding whitespace.
type Prompter interface {
	// Input asks for a single line of text. An empty answer yields def.
	Input(ctx context.Context, label, def string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, label string) (bool, error)
	// Select asks for one of items and returns its index. def is the
	// initially highlighted entry.
	Select(ctx context.Context, label string, items []string, def int) (int, error)
}
