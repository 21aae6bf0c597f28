package provider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/dualai/debate-agent/internal/debate"
)

const DefaultSageModel = "gemini-2.5-flash"

// GeminiClient backs Dr. Sage via the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	persona string
}

// NewGeminiClient creates a Gemini-backed client with the given API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model, persona: string(debate.RoleSage)}, nil
}

// Generate implements ModelClient.
//
// Formatting convention: student input and Dr. Nova's turns map to the user
// role, Dr. Sage's own turns map to the model role; persona instructions
// travel as the system instruction. With no history the instructions travel
// as the sole user turn instead.
func (c *GeminiClient) Generate(ctx context.Context, history []debate.Message, personaInstructions string) (string, error) {
	contents := geminiContents(history)
	cfg := &genai.GenerateContentConfig{}
	if len(contents) == 0 {
		contents = []*genai.Content{genai.NewContentFromText(personaInstructions, genai.RoleUser)}
	} else {
		cfg.SystemInstruction = genai.NewContentFromText(personaInstructions, genai.RoleUser)
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", &Error{Persona: c.persona, Err: err}
	}
	text := res.Text()
	if text == "" {
		return "", &Error{Persona: c.persona, Err: errors.New("empty response")}
	}
	return text, nil
}

// geminiContents maps transcript roles onto the Gemini two-role convention.
func geminiContents(history []debate.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == debate.RoleSage {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}
