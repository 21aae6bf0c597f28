package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dualai/debate-agent/internal/debate"
	"github.com/dualai/debate-agent/internal/metrics"
	"github.com/dualai/debate-agent/internal/provider"
	"github.com/dualai/debate-agent/internal/telemetry"
)

// ErrNotStarted is returned when a turn is requested before Start appended
// the student idea.
var ErrNotStarted = errors.New("engine: debate not started")

// Phrases that signal an advisor considers the idea dead. Matched
// case-insensitively; the debate ends when both of the two newest advisor
// turns contain one.
var rejectionPhrases = []string{"not viable", "unviable"}

// Engine drives one debate session at a time. It owns no session state
// itself; the caller supplies the State and keeps it for rendering.
type Engine struct {
	nova        provider.ModelClient
	sage        provider.ModelClient
	turnTimeout time.Duration
}

type Option func(*Engine)

// WithTurnTimeout bounds each generate call. Zero means no bound beyond the
// transport's own.
func WithTurnTimeout(d time.Duration) Option {
	return func(e *Engine) { e.turnTimeout = d }
}

func New(nova, sage provider.ModelClient, opts ...Option) *Engine {
	e := &Engine{nova: nova, sage: sage}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start opens a session: the student idea becomes the first transcript entry
// and Dr. Nova gets the opening turn. Calling Start on a session that
// already holds messages is a no-op.
func (e *Engine) Start(st *debate.State, idea string) {
	if st.Ended || st.Transcript.Len() > 0 {
		return
	}
	st.Transcript.Append(debate.Message{Role: debate.RoleUser, Content: "Student Idea: " + idea})
	st.Turn = debate.RoleNova
	telemetry.Emit("debate_started", map[string]any{
		"session_id": st.ID,
		"idea_words": metrics.CountFeatures(idea).Words,
	})
}

// RunTurn executes a single advisor turn: dispatch to whichever backend's
// turn it is, append the response, then check termination. On an ended
// session it is a no-op. A generate failure ends the session; the transcript
// keeps every turn that succeeded.
func (e *Engine) RunTurn(ctx context.Context, st *debate.State) (debate.Message, error) {
	if st.Ended {
		return debate.Message{}, nil
	}
	if st.Transcript.Len() == 0 {
		return debate.Message{}, ErrNotStarted
	}

	persona, client := debate.Nova, e.nova
	if st.Turn == debate.RoleSage {
		persona, client = debate.Sage, e.sage
	}

	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
	}

	tctx := ctx
	if e.turnTimeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, e.turnTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := client.Generate(tctx, st.Transcript.Messages(), persona.Instructions)
	if err != nil {
		telemetry.Emit("generate_error", map[string]any{
			"session_id": st.ID,
			"turn_id":    turnID,
			"persona":    string(persona.Role),
			"error":      err.Error(),
		})
		e.end(st, debate.EndGenerateError)
		return debate.Message{}, err
	}

	msg := debate.Message{Role: persona.Role, Content: text}
	st.Transcript.Append(msg)

	f := metrics.CountFeatures(text)
	telemetry.Emit("turn_completed", map[string]any{
		"session_id":  st.ID,
		"turn_id":     turnID,
		"persona":     string(persona.Role),
		"duration_ms": time.Since(start).Milliseconds(),
		"bytes":       f.Bytes,
		"runes":       f.Runes,
		"words":       f.Words,
		"lines":       f.Lines,
	})

	// Concession is an exact, case-sensitive substring of the advisor's own
	// fixed phrase; no rephrasing is recognized.
	if strings.Contains(text, persona.Concession) {
		e.end(st, debate.EndConcession)
		return msg, nil
	}

	if st.Turn == debate.RoleNova {
		st.Turn = debate.RoleSage
	} else {
		st.Turn = debate.RoleNova
	}

	if mutualRejection(&st.Transcript) {
		e.end(st, debate.EndMutualRejection)
	}
	return msg, nil
}

// Run drives the session to completion. onTurn fires after each successful
// advisor turn so the caller can render it before the next backend call.
func (e *Engine) Run(ctx context.Context, st *debate.State, onTurn func(debate.Message)) error {
	for !st.Ended {
		msg, err := e.RunTurn(ctx, st)
		if err != nil {
			return err
		}
		if msg.Role != "" && onTurn != nil {
			onTurn(msg)
		}
	}
	return nil
}

func (e *Engine) end(st *debate.State, reason debate.EndReason) {
	st.Ended = true
	st.EndReason = reason
	telemetry.Emit("debate_ended", map[string]any{
		"session_id":    st.ID,
		"reason":        string(reason),
		"advisor_turns": st.Transcript.PersonaTurns(),
	})
}

// mutualRejection reports whether both of the two newest transcript entries
// are advisor turns that each signal non-viability.
func mutualRejection(t *debate.Transcript) bool {
	if t.PersonaTurns() < 2 {
		return false
	}
	for _, m := range t.LastN(2) {
		if !m.Role.IsPersona() || !signalsRejection(m.Content) {
			return false
		}
	}
	return true
}

func signalsRejection(s string) bool {
	s = strings.ToLower(s)
	for _, p := range rejectionPhrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
