package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/aurorashell/internal/command"
	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/sandevgo/aurorashell/internal/service/elicit"
	"github.com/sandevgo/aurorashell/internal/service/ui"
	"github.com/sandevgo/aurorashell/pkg/log"
)

const (
	Intro      = "Aurora CLI allows simple intuitive interaction with the Aurora EVM smart contract."
	Goodbye    = "Thanks for using Aurora CLI. Have a nice day!"
	Terminated = "Process terminated. Thanks for using Aurora CLI. Have a good day!"

	ConsentPrompt  = "Would you like to proceed to choose from the commands?"
	SelectPrompt   = "Please select a command"
	ContinuePrompt = "Do you want to choose another command?"
)

// ErrInterrupted ends a session that was stopped by the operator.
var ErrInterrupted = errors.New("session interrupted")

func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

// Renderer turns a completed command into the text shown to the operator.
type Renderer func(command.Command) (string, error)

// RenderText is the default renderer.
func RenderText(cmd command.Command) (string, error) {
	return "You selected: " + command.Describe(cmd), nil
}

// RenderJSON prints the bare descriptor so output can be piped.
func RenderJSON(cmd command.Command) (string, error) {
	data, err := command.MarshalJSON(cmd)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type Option func(*Session)

func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		s.render = r
	}
}

// WithBanner prints banner once before the consent question.
func WithBanner(banner string) Option {
	return func(s *Session) {
		s.banner = banner
	}
}

// WithObserver is called on every state change.
func WithObserver(fn func(from, to State)) Option {
	return func(s *Session) {
		s.observe = fn
	}
}

// Session drives one interactive run. It is not safe for concurrent use.
type Session struct {
	prompter core.Prompter
	out      io.Writer
	render   Renderer
	banner   string
	observe  func(from, to State)

	state   State
	kind    command.Kind
	current command.Command
}

func New(p core.Prompter, out io.Writer, opts ...Option) *Session {
	if out == nil {
		out = os.Stdout
	}
	s := &Session{
		prompter: p,
		out:      out,
		render:   RenderText,
		state:    AwaitingConsent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

// Run drives the session until the operator leaves. It returns nil on a
// normal exit, ErrInterrupted when the operator aborted or ctx was cancelled,
// and a wrapped core.ErrClosed when the input stream broke.
func (s *Session) Run(ctx context.Context) error {
	if s.state.Terminal() {
		return fmt.Errorf("session already finished in state %s", s.state)
	}

	if s.banner != "" {
		fmt.Fprintln(s.out, ui.TitleStyle.Render(s.banner))
	}
	fmt.Fprintln(s.out, Intro)
	fmt.Fprintln(s.out)

	for !s.state.Terminal() {
		if ctx.Err() != nil {
			s.transition(ctx, Interrupted)
			break
		}
		if err := s.step(ctx); err != nil {
			return err
		}
	}

	if s.state == Interrupted {
		return ErrInterrupted
	}
	fmt.Fprintln(s.out, Goodbye)
	return nil
}

func (s *Session) step(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	switch s.state {
	case AwaitingConsent:
		proceed, err := s.prompter.Confirm(ctx, ConsentPrompt)
		if err != nil {
			return s.fail(ctx, err)
		}
		if !proceed {
			s.transition(ctx, Exited)
			return nil
		}
		s.transition(ctx, SelectingCommand)

	case SelectingCommand:
		idx, err := s.prompter.Select(ctx, SelectPrompt, command.Labels(), 0)
		if err != nil {
			return s.fail(ctx, err)
		}
		kind := command.Kind(idx)
		if !kind.Valid() {
			return fmt.Errorf("selection %d is outside the menu of %d commands", idx, command.NumKinds)
		}
		s.kind = kind
		s.transition(ctx, Eliciting)

	case Eliciting:
		cmd, err := elicit.Run(ctx, s.prompter, s.kind)
		if err != nil {
			if elicit.IsValidation(err) {
				logger.Info().Err(err).Str("command", s.kind.String()).Msg("elicitation rejected")
				fmt.Fprintf(s.out, "%s %v\n", ui.ErrorStyle.Render("Invalid input:"), err)
				s.transition(ctx, SelectingCommand)
				return nil
			}
			return s.fail(ctx, err)
		}
		s.current = cmd
		s.transition(ctx, Displaying)

	case Displaying:
		out, err := s.render(s.current)
		if err != nil {
			return fmt.Errorf("render %s: %w", s.kind, err)
		}
		logger.Debug().Str("command", s.kind.String()).Msg("command built")
		s.current = nil
		fmt.Fprintln(s.out, out)
		s.transition(ctx, AwaitingContinuation)

	case AwaitingContinuation:
		again, err := s.prompter.Confirm(ctx, ContinuePrompt)
		if err != nil {
			return s.fail(ctx, err)
		}
		if !again {
			s.transition(ctx, Exited)
			return nil
		}
		s.transition(ctx, SelectingCommand)

	default:
		return fmt.Errorf("unexpected session state %s", s.state)
	}
	return nil
}

// fail classifies a prompt error: interrupts end the session quietly,
// everything else is an input-stream failure.
func (s *Session) fail(ctx context.Context, err error) error {
	if errors.Is(err, core.ErrInterrupted) || ctx.Err() != nil {
		s.transition(ctx, Interrupted)
		return ErrInterrupted
	}
	log.FromCtx(ctx).Error().Err(err).Str("state", s.state.String()).Msg("input stream failed")
	return fmt.Errorf("read input: %w", err)
}

func (s *Session) transition(ctx context.Context, to State) {
	from := s.state
	s.state = to
	log.FromCtx(ctx).Debug().Stringer("from", from).Stringer("to", to).Msg("session state")
	if s.observe != nil {
		s.observe(from, to)
	}
}
