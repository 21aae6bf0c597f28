package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dualai/debate-agent/internal/debate"
)

const DefaultNovaModel = anthropic.ModelClaude3_7SonnetLatest

// Cap on generated tokens per advisor turn.
const maxResponseTokens = 1024

// AnthropicClient backs Dr. Nova via the Anthropic Messages API.
type AnthropicClient struct {
	client  *anthropic.Client
	model   anthropic.Model
	persona string
}

// NewAnthropicClient returns a client using the API key from the env;
// opts can override transport and key (used by tests).
func NewAnthropicClient(model anthropic.Model, opts ...option.RequestOption) *AnthropicClient {
	c := anthropic.NewClient(opts...)
	return &AnthropicClient{client: &c, model: model, persona: string(debate.RoleNova)}
}

// Generate implements ModelClient.
//
// Formatting convention: student input maps to the user role, every advisor
// turn (own or opposing) maps to assistant; persona instructions travel as
// the system parameter. The Messages API rejects an empty message list, so
// with no history the instructions travel as the sole user turn instead.
func (c *AnthropicClient) Generate(ctx context.Context, history []debate.Message, personaInstructions string) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		if m.Role == debate.RoleUser {
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		} else {
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(maxResponseTokens),
	}
	if len(msgs) == 0 {
		params.Messages = []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(personaInstructions))}
	} else {
		params.Messages = msgs
		params.System = []anthropic.TextBlockParam{{Text: personaInstructions}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", &Error{Persona: c.persona, Err: err}
	}

	var parts []string
	for _, b := range msg.Content {
		if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			parts = append(parts, tb.Text)
		}
	}
	text := strings.Join(parts, "\n")
	if text == "" {
		return "", &Error{Persona: c.persona, Err: errors.New("empty response")}
	}
	return text, nil
}
