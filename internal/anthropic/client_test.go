package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikeSquared-Agency/wisdom/internal/llm"
)

func TestInvoke_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("expected path /v1/messages, got %q", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected x-api-key test-key, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != "2023-06-01" {
			t.Errorf("expected anthropic-version 2023-06-01, got %q", r.Header.Get("anthropic-version"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", r.Header.Get("Content-Type"))
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %q", req.Model)
		}
		if req.System != "you are a test" {
			t.Errorf("expected system prompt, got %q", req.System)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if req.MaxTokens != 100 {
			t.Errorf("expected max_tokens 100, got %d", req.MaxTokens)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response{
			ID:    "msg_1",
			Model: "test-model",
			Content: []contentBlock{
				{Type: "text", Text: "world"},
				{Type: "tool_use"},
				{Type: "text", Text: "again"},
			},
			StopReason: "end_turn",
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model")
	c.SetTestTransport(server.URL)

	result, err := c.Invoke(context.Background(), llm.Params{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "you are a test"},
			{Role: llm.RoleUser, Content: "hello"},
		},
		Options: llm.Options{MaxTokens: 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts, ok := result.Choices[0].Message.Content.(llm.PartList)
	if !ok || len(parts) != 3 {
		t.Fatalf("expected 3 content parts, got %#v", result.Choices[0].Message.Content)
	}
	text, ok := result.Text()
	if !ok || text != "world\nagain" {
		t.Errorf("expected 'world\\nagain', got %q", text)
	}
	if result.Choices[0].FinishReason != "end_turn" {
		t.Errorf("expected finish reason end_turn, got %q", result.Choices[0].FinishReason)
	}
}

func TestInvoke_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "invalid_request_error",
				"message": "max_tokens is too large",
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model")
	c.SetTestTransport(server.URL)

	_, err := c.Invoke(context.Background(), llm.Params{Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}}})
	if err == nil {
		t.Fatal("expected error for API error response")
	}
}

func TestInvoke_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response{
			Content:    nil,
			StopReason: "end_turn",
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model")
	c.SetTestTransport(server.URL)

	_, err := c.Invoke(context.Background(), llm.Params{Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}}})
	if err == nil {
		t.Fatal("expected error for empty content response")
	}
}

func TestBuildRequest(t *testing.T) {
	c := NewClient("k", "default-model")

	req := c.buildRequest(llm.Params{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "persona"},
			{Role: llm.RoleSystem, Content: "correct the language"},
			{Role: llm.RoleUser, Content: "entry"},
		},
		Options: llm.Options{Model: "override", ResponseFormat: llm.ResponseFormatJSON, Temperature: 0.7},
	})

	if req.Model != "override" {
		t.Errorf("expected model override, got %q", req.Model)
	}
	if req.MaxTokens != defaultMaxTokens {
		t.Errorf("expected default max tokens, got %d", req.MaxTokens)
	}
	want := "persona\n\ncorrect the language\n\nRespond with a single valid JSON object and nothing else."
	if req.System != want {
		t.Errorf("unexpected system prompt: %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("expected only the user message inline, got %+v", req.Messages)
	}
	if req.Temperature == nil || *req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
}
