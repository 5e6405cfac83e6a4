package game

import "time"

const (
	// RosterSize is the number of participants on screen
	RosterSize = GridRows * GridCols

	// GridRows is the number of rows of the roster grid
	GridRows = 5

	// GridCols is the number of columns of the roster grid
	GridCols = 20

	// JudgeCount is the number of judges revealed in the first step
	JudgeCount = 2

	// RevealInterval is the pause between two reveals of the minority animation
	RevealInterval = 100 * time.Millisecond

	// SSEBufferSize is the buffer size for SSE message channels
	SSEBufferSize = 32

	// SSETimeout is the timeout for sending messages to SSE clients
	SSETimeoutSeconds = 1

	// ShowCodeLength is the length of generated show codes
	ShowCodeLength = 6

	// ShowCodeChars are the characters used for generating show codes (excluding ambiguous chars)
	ShowCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Position is a cell of the grid
type Position struct {
	Row, Col int
}

// Index returns the row-major roster index of p
func (p Position) Index() int {
	return p.Row*GridCols + p.Col
}

// PositionOf returns the grid position of roster index i
func PositionOf(i int) Position {
	return Position{Row: i / GridCols, Col: i % GridCols}
}

// Judges are the two seats revealed first, bottom row centre
var Judges = [JudgeCount]Position{{Row: 4, Col: 9}, {Row: 4, Col: 10}}

// IsJudge reports whether roster index i is a judge seat
func IsJudge(i int) bool {
	for _, j := range Judges {
		if j.Index() == i {
			return true
		}
	}
	return false
}

// Status messages shown above the grid
const (
	MessageJudges       = "심사위원 두 분의 투표결과 공개"
	MessageTie          = "흑수저 팀 백수저 팀 동점"
	messageRevealAllFmt = "%d인의 결과 공개"
	messageParityFmt    = "%d : %d"
	messageMajorityFmt  = "%s수저 팀 %d표. 전원 생존!"
)
