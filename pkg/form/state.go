package form

// Phase is a state of the form state machine.
type Phase string

const (
	// PhaseIdle means no attempt has been made yet.
	PhaseIdle Phase = "idle"
	// PhaseLoading means an encode call is in flight.
	PhaseLoading Phase = "loading"
	// PhaseSuccess is the settled phase holding a Result.
	PhaseSuccess Phase = "success"
	// PhaseFailed is the settled phase holding an error.
	PhaseFailed Phase = "failed"
)

// Name returns the phase as a string.
func (p Phase) Name() string {
	return string(p)
}

// Settled reports whether p is Success or Failed.
func (p Phase) Settled() bool {
	return p == PhaseSuccess || p == PhaseFailed
}

// Result is a successfully encoded text and its image.
type Result struct {
	// Text is the trimmed input that was encoded.
	Text string
	// Image is the encoder output, usually a data URI. It is never inspected.
	Image string
}

// State is the session state of one form.
type State struct {
	Phase Phase
	// Input is the raw text as typed, never trimmed.
	Input string
	// Result is set only after a successful attempt.
	Result *Result
	// Err is a *ValidationError or *EncodeError after a failed attempt.
	Err error
	// Loading is true only while the encoder runs.
	Loading bool
}

// ErrorMessage returns the user-visible message of Err or an empty string.
func (s State) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// ShowResult reports whether the result region should be displayed.
func (s State) ShowResult() bool {
	return s.Result != nil && s.Err == nil
}

// Event triggers a transition.
type Event interface {
	Name() string
}

// Submit starts an attempt.
type Submit struct{}

// Name implements Event.
func (Submit) Name() string { return "submit" }

// Encoded settles an attempt with a result.
type Encoded struct {
	Result Result
}

// Name implements Event.
func (Encoded) Name() string { return "encoded" }

// Rejected settles an attempt with an error.
type Rejected struct {
	Err error
}

// Name implements Event.
func (Rejected) Name() string { return "rejected" }

// Transition computes the state that follows s on ev. It does not mutate s.
//
//	idle | success | failed --submit-->   loading
//	loading                 --encoded-->  success
//	loading                 --rejected--> failed
func Transition(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case Submit:
		if s.Phase == PhaseLoading {
			return s, noTransition(s.Phase, ev)
		}
		s.Phase = PhaseLoading
		s.Loading = true
		s.Err = nil
		return s, nil

	case Encoded:
		if s.Phase != PhaseLoading {
			return s, noTransition(s.Phase, ev)
		}
		r := e.Result
		s.Phase = PhaseSuccess
		s.Result = &r
		s.Err = nil
		s.Loading = false
		return s, nil

	case Rejected:
		if s.Phase != PhaseLoading {
			return s, noTransition(s.Phase, ev)
		}
		s.Phase = PhaseFailed
		s.Result = nil
		s.Err = e.Err
		s.Loading = false
		return s, nil

	case nil:
		return s, ErrNoTransition
	}

	return s, noTransition(s.Phase, ev)
}
