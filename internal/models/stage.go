package models

// Stage is the cursor of the reveal sequence
type Stage int

const (
	StageInit Stage = iota
	StageJudgesRevealed
	StageMinorityRevealed
	StageMajorityRevealed
)

// Next returns the stage that follows s, wrapping back to StageInit
func (s Stage) Next() Stage {
	if s == StageMajorityRevealed {
		return StageInit
	}
	return s + 1
}

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageJudgesRevealed:
		return "judges_revealed"
	case StageMinorityRevealed:
		return "minority_revealed"
	case StageMajorityRevealed:
		return "majority_revealed"
	default:
		return "unknown"
	}
}
