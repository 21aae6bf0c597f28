package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dualai/debate-agent/internal/debate"
	"github.com/dualai/debate-agent/internal/provider"
	"github.com/dualai/debate-agent/internal/telemetry"
)

// Criteria are the nine rubric keys a summary must score, in render order.
var Criteria = []string{
	"publishability",
	"distinction_potential",
	"data_availability",
	"practical_impact",
	"methodological_soundness",
	"ethical_considerations",
	"time_to_completion",
	"innovation_revolutionary",
	"incremental_contribution",
}

// Record is the structured joint evaluation produced after a debate ends.
type Record struct {
	Rubric        map[string]int `json:"rubric"`
	KeyPoints     string         `json:"key_points"`
	AdvisorAdvice string         `json:"advisor_advice"`
}

// Generator requests the joint summary of a finished debate from a model.
type Generator struct {
	client provider.ModelClient
}

func NewGenerator(client provider.ModelClient) *Generator {
	return &Generator{client: client}
}

// Summarize serializes the transcript into a single instruction carrying the
// JSON schema, requests the summary, and validates the response. The call is
// side-effect-free and may be repeated, though the model is not
// deterministic.
func (g *Generator) Summarize(ctx context.Context, t *debate.Transcript) (*Record, error) {
	text, err := g.client.Generate(ctx, nil, buildPrompt(t))
	if err != nil {
		telemetry.Emit("summary_failed", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("summary: %w", err)
	}
	rec, err := parseRecord(text)
	if err != nil {
		telemetry.Emit("summary_failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	telemetry.Emit("summary_generated", map[string]any{"criteria": len(rec.Rubric)})
	return rec, nil
}

// RenderTranscript flattens the conversation into one "**role:** content"
// line per message.
func RenderTranscript(t *debate.Transcript) string {
	lines := make([]string, 0, t.Len())
	for _, m := range t.Messages() {
		lines = append(lines, fmt.Sprintf("**%s:** %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}

func buildPrompt(t *debate.Transcript) string {
	var b strings.Builder
	b.WriteString("Based on the following debate transcript, provide a joint JSON summary in the specified format.\n")
	b.WriteString("The idea is considered viable unless both advisors explicitly agreed it was \"not viable\".\n\n")
	b.WriteString("Transcript:\n")
	b.WriteString(RenderTranscript(t))
	b.WriteString("\n\nRespond with a single JSON object conforming to this schema, and nothing else:\n")
	b.WriteString(schemaJSON)
	return b.String()
}

// parseRecord validates the model's reply against the fixed schema. Every
// criterion must be present with an integer score in [1,5]; both free-text
// fields must be present.
func parseRecord(text string) (*Record, error) {
	raw := stripFences(strings.TrimSpace(text))
	var out struct {
		Rubric        map[string]int `json:"rubric"`
		KeyPoints     *string        `json:"key_points"`
		AdvisorAdvice *string        `json:"advisor_advice"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("summary: parse response: %w", err)
	}
	if out.KeyPoints == nil {
		return nil, errors.New("summary: missing key_points")
	}
	if out.AdvisorAdvice == nil {
		return nil, errors.New("summary: missing advisor_advice")
	}
	if len(out.Rubric) != len(Criteria) {
		return nil, fmt.Errorf("summary: expected %d rubric criteria, got %d", len(Criteria), len(out.Rubric))
	}
	for _, c := range Criteria {
		v, ok := out.Rubric[c]
		if !ok {
			return nil, fmt.Errorf("summary: missing rubric criterion %q", c)
		}
		if v < 1 || v > 5 {
			return nil, fmt.Errorf("summary: rubric criterion %q out of range: %d", c, v)
		}
	}
	return &Record{Rubric: out.Rubric, KeyPoints: *out.KeyPoints, AdvisorAdvice: *out.AdvisorAdvice}, nil
}

// stripFences unwraps a Markdown code fence if the model added one.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
