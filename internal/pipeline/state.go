package pipeline

import "fmt"

// Position of a run in the build sequence.
type State int

const (
	Start State = iota
	PathsResolved
	EnvironmentReady
	Cleaned
	Bundled
	Reported
	Failed
)

var stateNames = map[State]string{
	Start:            "start",
	PathsResolved:    "paths-resolved",
	EnvironmentReady: "environment-ready",
	Cleaned:          "cleaned",
	Bundled:          "bundled",
	Reported:         "reported",
	Failed:           "failed",
}

// Successful transitions. Failed is reachable from every non-terminal state
// and is not listed.
var transitions = map[State][]State{
	Start:            {PathsResolved},
	PathsResolved:    {EnvironmentReady},
	EnvironmentReady: {Cleaned, Bundled},
	Cleaned:          {Bundled},
	Bundled:          {Reported},
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Reported || s == Failed
}

// Reports whether a run in state s may move to next.
func (s State) CanTransition(next State) bool {
	if s.Terminal() {
		return false
	}
	if next == Failed {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
