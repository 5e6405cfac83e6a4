package game

import (
	"math/rand/v2"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

// NewRoster draws RosterSize participants, each picking a side with a fair
// coin, all unrevealed
func NewRoster(r *rand.Rand) []models.Participant {
	roster := make([]models.Participant, RosterSize)
	for i := range roster {
		if r.Float64() < 0.5 {
			roster[i].Choice = models.Black
		} else {
			roster[i].Choice = models.White
		}
	}
	return roster
}

// RosterFromChoices builds an unrevealed roster with the given sides. It
// panics unless exactly RosterSize choices are given.
func RosterFromChoices(choices []models.Choice) []models.Participant {
	if len(choices) != RosterSize {
		panic("game: roster needs exactly RosterSize choices")
	}
	roster := make([]models.Participant, RosterSize)
	for i, c := range choices {
		roster[i].Choice = c
	}
	return roster
}

// shuffle permutes positions in place (Fisher-Yates via rand.Shuffle)
func shuffle(r *rand.Rand, positions []int) {
	r.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
}

// countChoices counts each side over the whole roster
func countChoices(roster []models.Participant) (black, white int) {
	for _, p := range roster {
		if p.Choice == models.Black {
			black++
		}
	}
	return black, len(roster) - black
}
