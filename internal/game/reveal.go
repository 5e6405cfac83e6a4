package game

import (
	"math/rand/v2"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

// minorityReveal is the plan for the second step: unrevealed seats of each
// side in shuffled order, revealed one per tick until both sides show
// target seats (judges included)
type minorityReveal struct {
	black, white           []int
	judgeBlack, judgeWhite int
	blackIndex, whiteIndex int
	revealed               int
	target                 int
}

func newMinorityReveal(r *rand.Rand, roster []models.Participant) *minorityReveal {
	m := &minorityReveal{}
	for i, p := range roster {
		if p.Revealed {
			continue
		}
		if p.Choice == models.Black {
			m.black = append(m.black, i)
		} else {
			m.white = append(m.white, i)
		}
	}
	shuffle(r, m.black)
	shuffle(r, m.white)

	for _, j := range Judges {
		if roster[j.Index()].Choice == models.Black {
			m.judgeBlack++
		}
	}
	m.judgeWhite = JudgeCount - m.judgeBlack
	m.revealed = JudgeCount

	m.target = min(len(m.black)+m.judgeBlack, len(m.white)+m.judgeWhite)
	return m
}

// done reports whether both sides have reached target
func (m *minorityReveal) done() bool {
	return m.revealed >= 2*m.target
}

// next returns the roster index to reveal on this tick. The side behind in
// revealed count goes next; on a tie white goes first. ok is false when
// neither side has anything left.
func (m *minorityReveal) next() (index int, ok bool) {
	defer func() { m.revealed++ }()
	if m.blackIndex < len(m.black) &&
		(m.whiteIndex >= len(m.white) || m.blackIndex+m.judgeBlack < m.whiteIndex+m.judgeWhite) {
		index = m.black[m.blackIndex]
		m.blackIndex++
		return index, true
	}
	if m.whiteIndex < len(m.white) {
		index = m.white[m.whiteIndex]
		m.whiteIndex++
		return index, true
	}
	return 0, false
}
