package models

// Kind discriminates the three importable record types.
type Kind string

const (
	KindMachine   Kind = "machine"
	KindChallenge Kind = "challenge"
	KindSherlock  Kind = "sherlock"
)

// Title returns the display name used in templates and notes.
func (k Kind) Title() string {
	switch k {
	case KindChallenge:
		return "Challenge"
	case KindSherlock:
		return "Sherlock"
	default:
		return "Machine"
	}
}
