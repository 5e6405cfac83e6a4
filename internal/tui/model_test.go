package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestAdvanceKeys(t *testing.T) {
	machine := game.NewMachine(game.WithSeed(2), game.WithInterval(time.Hour))
	defer machine.Close()
	m := New(machine)

	m, cmd := press(t, m, key("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, models.StageJudgesRevealed, m.Snapshot().Stage)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.StageMinorityRevealed, m.Snapshot().Stage)
	assert.True(t, m.Snapshot().Animating)

	m, _ = press(t, m, key("r"))
	assert.Equal(t, models.StageInit, m.Snapshot().Stage)
	assert.False(t, machine.Animating())
}

func TestQuitClosesMachine(t *testing.T) {
	machine := game.NewMachine(game.WithSeed(2), game.WithInterval(time.Hour))
	m := New(machine)
	m, _ = press(t, m, key("n"))
	m, _ = press(t, m, key("n"))
	require.True(t, machine.Animating())

	_, cmd := press(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, machine.Animating())
}

func TestSnapshotMsgKeepsNewest(t *testing.T) {
	machine := game.NewMachine(game.WithSeed(2))
	defer machine.Close()
	m := New(machine)
	current := m.Snapshot()

	stale := current
	stale.Version--
	stale.Message = "stale"
	m, _ = press(t, m, SnapshotMsg(stale))
	assert.Equal(t, current.Message, m.Snapshot().Message)

	fresh := current
	fresh.Version++
	fresh.Message = "40 : 40"
	m, _ = press(t, m, SnapshotMsg(fresh))
	assert.Equal(t, "40 : 40", m.Snapshot().Message)
}

func TestViewDrawsGrid(t *testing.T) {
	machine := game.NewMachine(game.WithSeed(2))
	defer machine.Close()
	m := New(machine)
	m, _ = press(t, m, key("n"))

	view := m.View()
	assert.Equal(t, game.RosterSize, strings.Count(view, cell))
	assert.Contains(t, view, game.MessageJudges)
}
