package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/aurorashell/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInputModel(t *testing.T) {
	tests := []struct {
		name string
		def  string
		keys []tea.KeyMsg
		want string
	}{
		{"typed value", "", []tea.KeyMsg{runes("0xabc123"), enter}, "0xabc123"},
		{"surrounding spaces trimmed", "", []tea.KeyMsg{runes("  7 "), enter}, "7"},
		{"empty answer is empty", "", []tea.KeyMsg{enter}, ""},
		{"empty answer takes default", "testnet", []tea.KeyMsg{enter}, "testnet"},
		{"typed value beats default", "testnet", []tea.KeyMsg{runes("mainnet"), enter}, "mainnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, newInputModel("Please enter the address", tt.def), tt.keys...)
			im := m.(inputModel)

			assert.True(t, isQuit(cmd))
			assert.True(t, im.done)
			assert.False(t, im.interrupted())
			assert.Equal(t, tt.want, im.value)
			assert.Contains(t, im.View(), "Please enter the address")
		})
	}
}

func TestInputModel_CtrlC(t *testing.T) {
	m, cmd := press(t, newInputModel("label", ""), runes("half"), ctrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(inputModel).interrupted())
	assert.False(t, m.(inputModel).done)
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantDone bool
		want     bool
	}{
		{"yes", []tea.KeyMsg{runes("y")}, true, true},
		{"upper yes", []tea.KeyMsg{runes("Y")}, true, true},
		{"no", []tea.KeyMsg{runes("n")}, true, false},
		{"enter has no default", []tea.KeyMsg{enter}, false, false},
		{"other keys ignored", []tea.KeyMsg{runes("x"), runes("n")}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, newConfirmModel("Proceed?"), tt.keys...)
			cm := m.(confirmModel)

			assert.Equal(t, tt.wantDone, cm.done)
			assert.Equal(t, tt.wantDone, isQuit(cmd))
			assert.Equal(t, tt.want, cm.value)
		})
	}
}

func TestConfirmModel_CtrlC(t *testing.T) {
	m, cmd := press(t, newConfirmModel("Proceed?"), ctrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(confirmModel).interrupted())
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "item" + strings.Repeat("x", i)
	}
	return out
}

func TestSelectModel_Navigation(t *testing.T) {
	items := []string{"CreateAccount", "ViewAccount", "DeployAurora"}

	m, cmd := press(t, newSelectModel("Please select a command", items, 0), up, down, down, down)
	sm := m.(selectModel)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, sm.cursor, "cursor stays within bounds")

	m, cmd = press(t, sm, runes("k"), enter)
	sm = m.(selectModel)
	assert.True(t, isQuit(cmd))
	assert.True(t, sm.done)
	assert.Equal(t, 1, sm.cursor)
	assert.Contains(t, sm.View(), "ViewAccount")
}

func TestSelectModel_Default(t *testing.T) {
	assert.Equal(t, 2, newSelectModel("l", labels(3), 2).cursor)
	assert.Equal(t, 0, newSelectModel("l", labels(3), 7).cursor)
	assert.Equal(t, 0, newSelectModel("l", labels(3), -1).cursor)
}

func TestSelectModel_Window(t *testing.T) {
	items := labels(29)

	m := newSelectModel("l", items, 0)
	start, end := m.window()
	assert.Equal(t, 0, start)
	assert.Equal(t, selectWindow, end)

	mm, _ := press(t, m, runes("G"))
	m = mm.(selectModel)
	start, end = m.window()
	assert.Equal(t, 28, m.cursor)
	assert.Equal(t, 29-selectWindow, start)
	assert.Equal(t, 29, end)

	m.cursor = 14
	start, end = m.window()
	assert.Equal(t, 9, start)
	assert.Equal(t, 19, end)

	small := newSelectModel("l", labels(3), 0)
	start, end = small.window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestSelectModel_CtrlC(t *testing.T) {
	m, cmd := press(t, newSelectModel("l", labels(3), 0), down, ctrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(selectModel).interrupted())
}

func TestTUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tui := NewTUI(strings.NewReader("y"), &bytes.Buffer{})

	_, err := tui.Confirm(ctx, "Proceed?")
	assert.ErrorIs(t, err, core.ErrInterrupted)

	_, err = tui.Input(ctx, "label", "")
	assert.ErrorIs(t, err, core.ErrInterrupted)
}

func TestTUI_SelectWithoutItems(t *testing.T) {
	tui := NewTUI(strings.NewReader(""), &bytes.Buffer{})
	_, err := tui.Select(context.Background(), "Please select a command", nil, 0)
	assert.Error(t, err)
}

func TestTUI_ConfirmFromReader(t *testing.T) {
	var out bytes.Buffer
	tui := NewTUI(strings.NewReader("y"), &out)

	ok, err := tui.Confirm(context.Background(), "Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Proceed?")
}

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		in     string
		want   bool
		wantOk bool
	}{
		{"y", true, true},
		{"YES", true, true},
		{"n", false, true},
		{"No", false, true},
		{"", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		got, ok := parseConfirm(tt.in)
		assert.Equal(t, tt.wantOk, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseSelection(t *testing.T) {
	items := []string{"CreateAccount", "ViewAccount", "GetBalance"}

	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{"", 1, true},
		{"1", 0, true},
		{"3", 2, true},
		{"0", 0, false},
		{"4", 0, false},
		{"getbalance", 2, true},
		{"ViewAccount", 1, true},
		{"Deploy", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseSelection(tt.in, items, 1)
		assert.Equal(t, tt.wantOk, ok, "input %q", tt.in)
		if tt.wantOk {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
