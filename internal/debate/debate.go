package debate

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser   Role = "user"
	RoleNova   Role = "Dr. Nova"
	RoleSage   Role = "Dr. Sage"
	RoleSystem Role = "system"
)

// IsPersona reports whether the role belongs to one of the two advisors.
func (r Role) IsPersona() bool {
	return r == RoleNova || r == RoleSage
}

// Message is a single conversation turn. Immutable once appended.
type Message struct {
	Role    Role
	Content string
}

// Transcript is the ordered, append-only record of a debate.
// The zero value is an empty transcript ready for use.
type Transcript struct {
	msgs []Message
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(m Message) {
	t.msgs = append(t.msgs, m)
}

// Messages returns a copy of the transcript; callers cannot mutate the record.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len returns the number of messages appended so far.
func (t *Transcript) Len() int { return len(t.msgs) }

// LastN returns up to the n newest messages, oldest first.
func (t *Transcript) LastN(n int) []Message {
	if n <= 0 || len(t.msgs) == 0 {
		return nil
	}
	if n > len(t.msgs) {
		n = len(t.msgs)
	}
	out := make([]Message, n)
	copy(out, t.msgs[len(t.msgs)-n:])
	return out
}

// PersonaTurns counts how many advisor responses the transcript holds.
func (t *Transcript) PersonaTurns() int {
	n := 0
	for _, m := range t.msgs {
		if m.Role.IsPersona() {
			n++
		}
	}
	return n
}
