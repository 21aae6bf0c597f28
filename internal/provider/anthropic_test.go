package provider_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dualai/debate-agent/internal/debate"
	"github.com/dualai/debate-agent/internal/provider"
)

type capture struct {
	method string
	url    string
	body   []byte
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
		f.captured.body = b
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func newNovaClient(rt http.RoundTripper) *provider.AnthropicClient {
	return provider.NewAnthropicClient(
		provider.DefaultNovaModel,
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithAPIKey("test-key"),
	)
}

type reqBody struct {
	Model  string `json:"model"`
	System []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		} `json:"content"`
	} `json:"messages"`
}

const novaReply = `{"role":"assistant","content":[{"type":"text","text":"A sharp critique."}]}`

func TestAnthropicGenerate_RoleMappingAndSystem(t *testing.T) {
	capReq := &capture{}
	fake := &fakeTransport{respStatus: 200, respBody: []byte(novaReply), captured: capReq}
	c := newNovaClient(fake)

	history := []debate.Message{
		{Role: debate.RoleUser, Content: "Student Idea: tidal microgrids"},
		{Role: debate.RoleNova, Content: "Costs are the issue."},
		{Role: debate.RoleSage, Content: "Costs are falling."},
	}
	text, err := c.Generate(context.Background(), history, debate.Nova.Instructions)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "A sharp critique." {
		t.Fatalf("unexpected text: %q", text)
	}

	var rb reqBody
	if err := json.Unmarshal(capReq.body, &rb); err != nil {
		t.Fatalf("unmarshal body: %v\nbody=%s", err, string(capReq.body))
	}
	// Student input maps to user; both advisor turns map to assistant.
	wantRoles := []string{"user", "assistant", "assistant"}
	if len(rb.Messages) != len(wantRoles) {
		t.Fatalf("expected %d messages, got %d", len(wantRoles), len(rb.Messages))
	}
	for i, want := range wantRoles {
		if rb.Messages[i].Role != want {
			t.Fatalf("message %d: expected role %s, got %s", i, want, rb.Messages[i].Role)
		}
	}
	if len(rb.System) != 1 || !strings.Contains(rb.System[0].Text, "Dr. Nova") {
		t.Fatalf("persona instructions missing from system parameter: %+v", rb.System)
	}
	if rb.Model != string(provider.DefaultNovaModel) {
		t.Fatalf("unexpected model: %s", rb.Model)
	}
}

func TestAnthropicGenerate_EmptyHistorySendsInstructionAsUserTurn(t *testing.T) {
	capReq := &capture{}
	fake := &fakeTransport{respStatus: 200, respBody: []byte(novaReply), captured: capReq}
	c := newNovaClient(fake)

	if _, err := c.Generate(context.Background(), nil, "summarize the debate"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var rb reqBody
	if err := json.Unmarshal(capReq.body, &rb); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(rb.System) != 0 {
		t.Fatalf("expected no system parameter, got %+v", rb.System)
	}
	if len(rb.Messages) != 1 || rb.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", rb.Messages)
	}
	if rb.Messages[0].Content[0].Text != "summarize the debate" {
		t.Fatalf("instruction not carried as the user turn: %+v", rb.Messages[0])
	}
}

func TestAnthropicGenerate_TransportFailure(t *testing.T) {
	fake := &fakeTransport{respStatus: 500, respBody: []byte(`{"error":{"type":"api_error","message":"overloaded"}}`)}
	c := newNovaClient(fake)

	_, err := c.Generate(context.Background(), []debate.Message{
		{Role: debate.RoleUser, Content: "Student Idea: x"},
	}, debate.Nova.Instructions)
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *provider.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *provider.Error, got %T: %v", err, err)
	}
	if perr.Persona != string(debate.RoleNova) {
		t.Fatalf("unexpected persona: %s", perr.Persona)
	}
}

func TestAnthropicGenerate_EmptyResponse(t *testing.T) {
	fake := &fakeTransport{respStatus: 200, respBody: []byte(`{"role":"assistant","content":[]}`)}
	c := newNovaClient(fake)

	_, err := c.Generate(context.Background(), []debate.Message{
		{Role: debate.RoleUser, Content: "Student Idea: x"},
	}, debate.Nova.Instructions)
	if err == nil {
		t.Fatal("expected an error for an empty response")
	}
}
