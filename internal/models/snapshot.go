package models

// Snapshot is an immutable copy of the reveal state handed to views
type Snapshot struct {
	Stage        Stage
	Participants []Participant
	Message      string
	Animating    bool
	Version      uint64 // bumped on every mutation
}

// Counts returns how many participants chose each side
func (s Snapshot) Counts() (black, white int) {
	for _, p := range s.Participants {
		if p.Choice == Black {
			black++
		} else {
			white++
		}
	}
	return black, white
}

// RevealedCounts returns how many revealed participants chose each side
func (s Snapshot) RevealedCounts() (black, white int) {
	for _, p := range s.Participants {
		if !p.Revealed {
			continue
		}
		if p.Choice == Black {
			black++
		} else {
			white++
		}
	}
	return black, white
}

// Revealer is the reveal state machine as seen by a presentation layer
type Revealer interface {
	Advance()
	Initialize()
	Snapshot() Snapshot
	Close()
}
