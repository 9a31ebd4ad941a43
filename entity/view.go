package entity

// State is where a table controller is in its load cycle.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Errored
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// View is what a rendering surface is given after each transition.
type View struct {
	Rows    []Row
	Loading bool
	Empty   bool
	Sort    Sort
	State   State
	Err     error
}
