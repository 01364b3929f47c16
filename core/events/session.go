package events

// State is the live session lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
	StateDraining  State = "draining"
)

const (
	// KindSessionStateChanged identifies live session state transitions.
	KindSessionStateChanged Kind = "session.state_changed"
	// KindSessionFailed identifies a non-retryable session failure.
	KindSessionFailed Kind = "session.failed"
)

// SessionStateChanged marks a live session lifecycle transition.
type SessionStateChanged struct {
	Base
	SessionID string
	State     State
}

// NewSessionStateChanged creates a session state transition event.
func NewSessionStateChanged(sessionID string, state State) SessionStateChanged {
	return SessionStateChanged{Base: NewBase(KindSessionStateChanged), SessionID: sessionID, State: state}
}

// SessionFailed carries a non-retryable session failure.
type SessionFailed struct {
	Base
	SessionID string
	Err       error
}

// NewSessionFailed creates a session failed event.
func NewSessionFailed(sessionID string, err error) SessionFailed {
	return SessionFailed{Base: NewBase(KindSessionFailed), SessionID: sessionID, Err: err}
}
