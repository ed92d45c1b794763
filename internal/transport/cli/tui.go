package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/sandevgo/aurorashell/internal/service/ui"
)

const (
	doneMark     = "✔"
	cursorMark   = "❯"
	selectWindow = 10
)

// TUI prompts through short-lived Bubble Tea programs, one per question.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

type outcome interface {
	interrupted() bool
}

func (t *TUI) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	if ctx.Err() != nil {
		return nil, core.ErrInterrupted
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil, core.ErrInterrupted
		}
		return nil, fmt.Errorf("%w: %v", core.ErrClosed, err)
	}

	if o, ok := final.(outcome); ok && o.interrupted() {
		return nil, core.ErrInterrupted
	}
	return final, nil
}

func (t *TUI) Input(ctx context.Context, label, def string) (string, error) {
	final, err := t.run(ctx, newInputModel(label, def))
	if err != nil {
		return "", err
	}
	return final.(inputModel).value, nil
}

func (t *TUI) Confirm(ctx context.Context, label string) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(label))
	if err != nil {
		return false, err
	}
	return final.(confirmModel).value, nil
}

func (t *TUI) Select(ctx context.Context, label string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("select %q: no items", label)
	}
	final, err := t.run(ctx, newSelectModel(label, items, def))
	if err != nil {
		return 0, err
	}
	return final.(selectModel).cursor, nil
}

// inputModel collects one line of text
type inputModel struct {
	label   string
	def     string
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newInputModel(label, def string) inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Prompt = ""
	ti.Placeholder = def

	return inputModel{label: label, def: def, input: ti}
}

func (m inputModel) interrupted() bool { return m.aborted }

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			if m.value == "" {
				m.value = m.def
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	switch {
	case m.aborted:
		return "\n"
	case m.done:
		return answered(m.label, m.value)
	}
	return ui.PromptStyle.Render(m.label) + ": " + m.input.View() + "\n"
}

// confirmModel waits for y or n; there is no default answer
type confirmModel struct {
	label   string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(label string) confirmModel {
	return confirmModel{label: label}
}

func (m confirmModel) interrupted() bool { return m.aborted }

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "y", "Y":
			m.value, m.done = true, true
			return m, tea.Quit
		case "n", "N":
			m.value, m.done = false, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	switch {
	case m.aborted:
		return "\n"
	case m.done:
		if m.value {
			return answered(m.label, "yes")
		}
		return answered(m.label, "no")
	}
	return ui.PromptStyle.Render(m.label) + " " + ui.DescStyle.Render("[y/n]") + "\n"
}

// selectModel is a cursor list over a fixed set of labels
type selectModel struct {
	label   string
	choices []string
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(label string, choices []string, def int) selectModel {
	if def < 0 || def >= len(choices) {
		def = 0
	}
	return selectModel{label: label, choices: choices, cursor: def}
}

func (m selectModel) interrupted() bool { return m.aborted }

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.choices) - 1
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// window returns the slice bounds of the visible choices around the cursor.
func (m selectModel) window() (int, int) {
	if len(m.choices) <= selectWindow {
		return 0, len(m.choices)
	}
	start := m.cursor - selectWindow/2
	if start < 0 {
		start = 0
	}
	if start+selectWindow > len(m.choices) {
		start = len(m.choices) - selectWindow
	}
	return start, start + selectWindow
}

func (m selectModel) View() string {
	switch {
	case m.aborted:
		return "\n"
	case m.done:
		return answered(m.label, m.choices[m.cursor])
	}

	var b strings.Builder
	b.WriteString(ui.PromptStyle.Render(m.label) + ":\n")
	start, end := m.window()
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(ui.CursorStyle.Render(fmt.Sprintf("%s %s", cursorMark, m.choices[i])) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", m.choices[i]))
		}
	}
	b.WriteString(ui.DescStyle.Render(fmt.Sprintf("(%d/%d, arrows to move, enter to select, ctrl+c to quit)", m.cursor+1, len(m.choices))) + "\n")
	return b.String()
}

func answered(label, value string) string {
	return ui.UsageStyle.Render(doneMark) + " " + ui.PromptStyle.Render(label) + " · " + ui.UsageStyle.Render(value) + "\n"
}
