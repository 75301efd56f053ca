package parser

import "github.com/okian/benchtable/internal/domain/model"

// State is the parser's run-tracking state: NoActiveRun or ActiveRun.
type State interface {
	active() (ActiveRun, bool)
}

// NoActiveRun is the state before the first header.
type NoActiveRun struct{}

func (NoActiveRun) active() (ActiveRun, bool) { return ActiveRun{}, false }

// ActiveRun routes measurements into Score.
type ActiveRun struct {
	Name  string
	Score *model.Score
	// Measured is set once the run has received a time or memory reading.
	Measured bool
}

func (a ActiveRun) active() (ActiveRun, bool) { return a, true }

// Transition is what a header line does to the registry.
type Transition int

// Header transitions.
const (
	// NewLanguage registers a group for a name not seen before.
	NewLanguage Transition = iota
	// NewRun appends a fresh run to an existing group.
	NewRun
	// Continue keeps the active run; the header only restates it.
	Continue
)

func (t Transition) String() string {
	switch t {
	case NewLanguage:
		return "new_language"
	case NewRun:
		return "new_run"
	default:
		return "continue"
	}
}

// decide picks the transition for a header naming name. known reports
// whether name already has a group. A header repeating the active language
// before any measurement arrived is a continuation; any other header for a
// known language starts a new run.
func decide(prev State, name string, known bool) Transition {
	if !known {
		return NewLanguage
	}
	if run, ok := prev.active(); ok && run.Name == name && !run.Measured {
		return Continue
	}
	return NewRun
}
