// Package session models the lifecycle of one deck-generation session as an
// explicit reducer: a state value plus actions that produce the next state.
// The reducer is pure so the transitions can be tested without any transport
// or provider in the loop.
package session

import (
	"errors"

	"github.com/google/uuid"

	"deckgen/pkg/core/generate"
)

// Phase is where a session currently stands.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseGenerating Phase = "generating"
	PhaseReady      Phase = "ready"
	PhaseFailed     Phase = "failed"
)

var (
	ErrGenerationInFlight = errors.New("generation already in flight")
	ErrNoAnswers          = errors.New("no answers to generate from")
	ErrNotGenerating      = errors.New("no generation in flight")
	ErrUnknownAction      = errors.New("unknown action")
)

// State is one session's complete condition. Result survives a later
// failure so the client keeps showing the last good deck while displaying
// the error.
type State struct {
	ID         string
	Phase      Phase
	Day        int
	RawAnswers string
	Overrides  map[string]string
	Result     *generate.Result
	Err        *generate.Error
}

// New returns a fresh idle session.
func New() State {
	return State{ID: uuid.NewString(), Phase: PhaseIdle}
}

// Action is a session state transition request.
type Action interface{ isAction() }

// Generate starts a fresh generation from raw answers, discarding any
// previous overrides.
type Generate struct {
	Day        int
	RawAnswers string
}

// RegenerateWithOverrides re-runs the last generation with user-edited
// field values layered on top of the original answers.
type RegenerateWithOverrides struct {
	Overrides map[string]string
}

// Complete records a successful generation.
type Complete struct {
	Result *generate.Result
}

// Fail records a classified generation failure.
type Fail struct {
	Err *generate.Error
}

// Reset returns the session to idle, dropping all accumulated state.
type Reset struct{}

func (Generate) isAction()                {}
func (RegenerateWithOverrides) isAction() {}
func (Complete) isAction()                {}
func (Fail) isAction()                    {}
func (Reset) isAction()                   {}

// Apply computes the next state for an action. Invalid transitions return
// the input state unchanged along with the error.
func Apply(s State, a Action) (State, error) {
	switch act := a.(type) {
	case Generate:
		if s.Phase == PhaseGenerating {
			return s, ErrGenerationInFlight
		}
		if act.RawAnswers == "" {
			return s, ErrNoAnswers
		}
		next := s
		next.Phase = PhaseGenerating
		next.Day = act.Day
		next.RawAnswers = act.RawAnswers
		next.Overrides = nil
		next.Err = nil
		return next, nil

	case RegenerateWithOverrides:
		if s.Phase == PhaseGenerating {
			return s, ErrGenerationInFlight
		}
		if s.RawAnswers == "" {
			return s, ErrNoAnswers
		}
		next := s
		next.Phase = PhaseGenerating
		next.Overrides = copyOverrides(act.Overrides)
		next.Err = nil
		return next, nil

	case Complete:
		if s.Phase != PhaseGenerating {
			return s, ErrNotGenerating
		}
		next := s
		next.Phase = PhaseReady
		next.Result = act.Result
		next.Err = nil
		return next, nil

	case Fail:
		if s.Phase != PhaseGenerating {
			return s, ErrNotGenerating
		}
		next := s
		next.Phase = PhaseFailed
		next.Err = act.Err
		return next, nil

	case Reset:
		return State{ID: s.ID, Phase: PhaseIdle}, nil

	default:
		return s, ErrUnknownAction
	}
}

func copyOverrides(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
