package state

// Outcome is the result of a run
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the outcome is final
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// RunState holds the score and outcome of one run. It leaves Playing
// exactly once; every mutation after that is a no-op.
type RunState struct {
	Score   int
	Outcome Outcome
}

// NewRunState creates a fresh run
func NewRunState() *RunState {
	return &RunState{Outcome: Playing}
}

// AddScore adds points while the run is live
func (r *RunState) AddScore(points int) bool {
	if r.Outcome.Terminal() {
		return false
	}
	r.Score += points
	return true
}

// Win ends the run as Won. Returns false if the run was already over.
func (r *RunState) Win() bool {
	return r.finish(Won)
}

// Lose ends the run as Lost. Returns false if the run was already over.
func (r *RunState) Lose() bool {
	return r.finish(Lost)
}

func (r *RunState) finish(o Outcome) bool {
	if r.Outcome.Terminal() {
		return false
	}
	r.Outcome = o
	return true
}
