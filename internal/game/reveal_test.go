package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

func planFor(t *testing.T, black int, judgeA, judgeB models.Choice) (*minorityReveal, []models.Participant) {
	t.Helper()
	roster := splitRoster(black, judgeA, judgeB)(nil)
	for _, j := range Judges {
		roster[j.Index()].Revealed = true
	}
	return newMinorityReveal(rand.New(rand.NewPCG(1, 2)), roster), roster
}

func TestMinorityRevealPlanCounts(t *testing.T) {
	plan, _ := planFor(t, 60, models.Black, models.White)
	assert.Len(t, plan.black, 59)
	assert.Len(t, plan.white, 39)
	assert.Equal(t, 1, plan.judgeBlack)
	assert.Equal(t, 1, plan.judgeWhite)
	assert.Equal(t, 40, plan.target)
	assert.Equal(t, JudgeCount, plan.revealed)
	assert.False(t, plan.done())
}

func TestMinorityRevealPlanSkipsRevealed(t *testing.T) {
	plan, roster := planFor(t, 50, models.Black, models.White)
	for _, i := range append(append([]int{}, plan.black...), plan.white...) {
		assert.False(t, roster[i].Revealed)
		assert.False(t, IsJudge(i))
	}
}

func TestMinorityRevealOrderFollowsTheSideBehind(t *testing.T) {
	plan, roster := planFor(t, 50, models.Black, models.Black)

	// Judges put black two ahead, so white catches up first.
	var sides []models.Choice
	for range 6 {
		i, ok := plan.next()
		require.True(t, ok)
		sides = append(sides, roster[i].Choice)
	}
	assert.Equal(t, []models.Choice{
		models.White, models.White,
		models.White, models.Black,
		models.White, models.Black,
	}, sides)
	assert.Equal(t, JudgeCount+6, plan.revealed)
}

func TestMinorityRevealRunsToParity(t *testing.T) {
	plan, roster := planFor(t, 37, models.White, models.Black)
	require.Equal(t, 37, plan.target)

	black, white := 1, 1
	for !plan.done() {
		i, ok := plan.next()
		require.True(t, ok)
		if roster[i].Choice == models.Black {
			black++
		} else {
			white++
		}
		assert.LessOrEqual(t, black-white, 1)
		assert.LessOrEqual(t, white-black, 1)
	}
	assert.Equal(t, 37, black)
	assert.Equal(t, 37, white)
}

func TestMinorityRevealFallsBackWhenOneSideIsEmpty(t *testing.T) {
	plan, roster := planFor(t, 100, models.Black, models.Black)
	assert.Equal(t, 0, plan.target)
	assert.True(t, plan.done())

	i, ok := plan.next()
	require.True(t, ok)
	assert.Equal(t, models.Black, roster[i].Choice)
}

func TestPositionIndexRoundTrip(t *testing.T) {
	assert.Equal(t, 89, Judges[0].Index())
	assert.Equal(t, 90, Judges[1].Index())
	for i := range RosterSize {
		assert.Equal(t, i, PositionOf(i).Index())
	}
	assert.True(t, IsJudge(90))
	assert.False(t, IsJudge(0))
}

func TestNewRosterUsesBothSides(t *testing.T) {
	roster := NewRoster(rand.New(rand.NewPCG(9, 9)))
	require.Len(t, roster, RosterSize)
	black, white := countChoices(roster)
	assert.Equal(t, RosterSize, black+white)
	assert.Positive(t, black)
	assert.Positive(t, white)
}

func TestRosterFromChoicesPanicsOnWrongSize(t *testing.T) {
	assert.Panics(t, func() { RosterFromChoices(make([]models.Choice, 3)) })
}

func TestGenerateShowCode(t *testing.T) {
	code := GenerateShowCode()
	require.Len(t, code, ShowCodeLength)
	for _, c := range code {
		assert.Contains(t, ShowCodeChars, string(c))
	}
}
