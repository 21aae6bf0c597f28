package provider

import (
	"testing"

	"google.golang.org/genai"

	"github.com/dualai/debate-agent/internal/debate"
)

func TestGeminiContents_RoleMapping(t *testing.T) {
	history := []debate.Message{
		{Role: debate.RoleUser, Content: "Student Idea: tidal microgrids"},
		{Role: debate.RoleNova, Content: "Costs are the issue."},
		{Role: debate.RoleSage, Content: "Costs are falling."},
	}

	contents := geminiContents(history)
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}

	// Student input and Dr. Nova map to user; Dr. Sage maps to model.
	wantRoles := []genai.Role{genai.RoleUser, genai.RoleUser, genai.RoleModel}
	for i, want := range wantRoles {
		if got := genai.Role(contents[i].Role); got != want {
			t.Fatalf("content %d: expected role %s, got %s", i, want, got)
		}
	}
	for i, m := range history {
		if len(contents[i].Parts) != 1 || contents[i].Parts[0].Text != m.Content {
			t.Fatalf("content %d: text not preserved: %+v", i, contents[i].Parts)
		}
	}
}

func TestGeminiContents_Empty(t *testing.T) {
	if got := geminiContents(nil); len(got) != 0 {
		t.Fatalf("expected no contents, got %d", len(got))
	}
}
