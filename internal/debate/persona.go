package debate

// Persona describes one advisor: the system instructions sent on every call
// and the fixed phrase that, appearing anywhere in the advisor's own
// response, concedes the debate.
type Persona struct {
	Role         Role
	Instructions string
	Concession   string
}

// The concession phrases are matched as exact, case-sensitive substrings.
// They must stay byte-for-byte as given here, punctuation included.
const (
	NovaConcession = "I concede — Dr Sage’s argument prevails."
	SageConcession = "I concede — Dr Nova’s argument prevails."
)

var Nova = Persona{
	Role:         RoleNova,
	Instructions: "You are Dr. Nova, a doctoral supervisor. Your persona is sharp, critical, and focused on practical execution. You are debating a student's idea with Dr. Sage.",
	Concession:   NovaConcession,
}

var Sage = Persona{
	Role:         RoleSage,
	Instructions: "You are Dr. Sage, a doctoral supervisor. Your persona is insightful, constructive, and ever-so-slightly academic. You are debating a student's idea with Dr. Nova.",
	Concession:   SageConcession,
}
