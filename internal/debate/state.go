package debate

import "github.com/google/uuid"

// Phase is the observable state of the turn-taking machine.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseAwaitingNova Phase = "awaiting_nova"
	PhaseAwaitingSage Phase = "awaiting_sage"
	PhaseEnded        Phase = "ended"
)

// State is the mutable session record for one debate. It is created when the
// student submits an idea and owned by a single engine for its lifetime; a
// new debate means a fresh State.
type State struct {
	ID         string
	Transcript Transcript
	Turn       Role // RoleNova or RoleSage
	Ended      bool
	EndReason  EndReason // set exactly once, when Ended flips true
}

// EndReason records which termination condition fired.
type EndReason string

const (
	EndConcession      EndReason = "concession"
	EndMutualRejection EndReason = "mutual_rejection"
	EndGenerateError   EndReason = "generate_error"
)

// NewState returns an empty session with a fresh session ID, waiting for the
// initial student idea.
func NewState() *State {
	return &State{ID: uuid.NewString(), Turn: RoleNova}
}

// Phase derives the machine state from the session fields.
func (s *State) Phase() Phase {
	switch {
	case s.Ended:
		return PhaseEnded
	case s.Transcript.Len() == 0:
		return PhaseIdle
	case s.Turn == RoleSage:
		return PhaseAwaitingSage
	default:
		return PhaseAwaitingNova
	}
}
