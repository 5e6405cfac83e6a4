package models

// Choice is the side a participant secretly picked
type Choice int

const (
	Black Choice = iota // 흑수저
	White               // 백수저
)

// Label returns the Korean one-letter name of the side
func (c Choice) Label() string {
	if c == Black {
		return "흑"
	}
	return "백"
}

// String implements fmt.Stringer
func (c Choice) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Participant is a single cell of the roster grid
type Participant struct {
	Choice   Choice
	Revealed bool
}
