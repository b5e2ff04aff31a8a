package browse

import "fmt"

// Phase is the primary status of the result store.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

// MarshalText renders the phase name in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*p = PhaseIdle
	case "loading":
		*p = PhaseLoading
	case "success":
		*p = PhaseSuccess
	case "failure":
		*p = PhaseFailure
	default:
		return fmt.Errorf("unknown phase %q", b)
	}
	return nil
}

// State is the result store. It is a value: transitions return a new State
// and never mutate the Items of the receiver.
type State struct {
	Phase   Phase
	Items   []ResultItem
	Message string
}

// Action is a transition of the result store.
type Action interface {
	apply(State) State
}

// Request starts a fresh search: any phase -> loading, clearing items and message.
type Request struct{}

// Success installs page 1: loading -> success.
type Success struct {
	Items []ResultItem
}

// Append concatenates a later page: success -> success.
type Append struct {
	Items []ResultItem
}

// Failure records an error: any phase -> failure, clearing items.
type Failure struct {
	Message string
}

// Fallback installs the offline dataset while keeping an advisory message:
// loading -> success.
type Fallback struct {
	Items   []ResultItem
	Message string
}

// Apply returns the state after a.
// Transitions not allowed from the current phase leave the state unchanged.
func (s State) Apply(a Action) State {
	return a.apply(s)
}

func (Request) apply(State) State {
	return State{Phase: PhaseLoading}
}

func (a Success) apply(s State) State {
	if s.Phase != PhaseLoading {
		return s
	}
	return State{Phase: PhaseSuccess, Items: a.Items, Message: s.Message}
}

func (a Append) apply(s State) State {
	if s.Phase != PhaseSuccess {
		return s
	}
	items := make([]ResultItem, 0, len(s.Items)+len(a.Items))
	items = append(items, s.Items...)
	items = append(items, a.Items...)
	return State{Phase: PhaseSuccess, Items: items, Message: s.Message}
}

func (a Failure) apply(State) State {
	return State{Phase: PhaseFailure, Message: a.Message}
}

func (a Fallback) apply(s State) State {
	if s.Phase != PhaseLoading {
		return s
	}
	return State{Phase: PhaseSuccess, Items: a.Items, Message: a.Message}
}
