// Package tui renders the reveal show in a terminal with Bubble Tea.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
	"github.com/yjb94/CulinaryClassWars/internal/render"
)

// SnapshotMsg carries a machine change into the program
type SnapshotMsg models.Snapshot

var (
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorHidden))
	blackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorBlack)).Background(lipgloss.Color("#3a3a3a"))
	whiteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorWhite))
	messageStyle = lipgloss.NewStyle().Bold(true).Height(1).MarginBottom(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")).MarginTop(1)
)

// cell is the glyph drawn for one participant
const cell = "█"

// Model is the Bubble Tea model of the reveal screen
type Model struct {
	reveal models.Revealer
	snap   models.Snapshot
}

// New returns a model showing r
func New(r models.Revealer) Model {
	return Model{reveal: r, snap: r.Snapshot()}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		// ticks may arrive after a newer snapshot was pulled synchronously
		if msg.Version > m.snap.Version {
			m.snap = models.Snapshot(msg)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter", "n":
			m.reveal.Advance()
			m.snap = m.reveal.Snapshot()
		case "r":
			m.reveal.Initialize()
			m.snap = m.reveal.Snapshot()
		case "q", "esc", "ctrl+c":
			m.reveal.Close()
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(messageStyle.Render(m.snap.Message))
	b.WriteString("\n")
	for row := range game.GridRows {
		cells := make([]string, 0, game.GridCols)
		for col := range game.GridCols {
			i := game.Position{Row: row, Col: col}.Index()
			if i >= len(m.snap.Participants) {
				break
			}
			cells = append(cells, styleFor(m.snap.Participants[i]).Render(cell))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space: 다음 단계 공개 • r: 새 판 • q: 종료"))
	b.WriteString("\n")
	return b.String()
}

// Snapshot returns the state currently on screen
func (m Model) Snapshot() models.Snapshot {
	return m.snap
}

func styleFor(p models.Participant) lipgloss.Style {
	switch render.CellColor(p) {
	case render.ColorBlack:
		return blackStyle
	case render.ColorWhite:
		return whiteStyle
	default:
		return hiddenStyle
	}
}
