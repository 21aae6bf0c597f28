package provider

import (
	"context"
	"fmt"

	"github.com/dualai/debate-agent/internal/debate"
)

// ModelClient is the capability both advisor backends satisfy: send the
// conversation so far plus persona instructions, get back the persona's next
// utterance. Calls are stateless; the full history is resent every turn.
type ModelClient interface {
	Generate(ctx context.Context, history []debate.Message, personaInstructions string) (string, error)
}

// Error is a failed generate call: which persona's backend failed and why.
type Error struct {
	Persona string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: generate: %v", e.Persona, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
