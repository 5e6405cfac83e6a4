package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
	"github.com/yjb94/CulinaryClassWars/internal/tui"
)

func main() {
	machine := game.NewMachine()
	defer machine.Close()

	p := tea.NewProgram(tui.New(machine), tea.WithAltScreen())
	// Advance is called from Update, so Send must not block here
	machine.SetListener(func(snap models.Snapshot) {
		go p.Send(tui.SnapshotMsg(snap))
	})

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
