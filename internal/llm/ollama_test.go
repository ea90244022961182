package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Complete(t *testing.T) {
	var captured ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %s, want /api/chat", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaResponse{
			Message:         ollamaMessage{Role: "assistant", Content: "the reply"},
			Done:            true,
			PromptEvalCount: 12,
			EvalCount:       7,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(ProviderConfig{BaseURL: server.URL, Model: "testmodel"})
	if err != nil {
		t.Fatalf("NewOllamaProvider() error = %v", err)
	}

	resp, err := provider.Complete(context.Background(), CompletionRequest{
		Messages:    []Message{{Role: RoleUser, Content: "hello"}},
		MaxTokens:   64,
		Temperature: 0.3,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if resp.Content != "the reply" {
		t.Errorf("Content = %q, want the reply", resp.Content)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 7 {
		t.Errorf("Usage = %+v, want 12/7", resp.Usage)
	}

	if captured.Model != "testmodel" {
		t.Errorf("request model = %q", captured.Model)
	}
	if captured.Stream {
		t.Error("streaming should be disabled")
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Content != "hello" {
		t.Errorf("request messages = %+v", captured.Messages)
	}
	if captured.Options.NumPredict != 64 || captured.Options.Temperature != 0.3 {
		t.Errorf("request options = %+v", captured.Options)
	}
}

func TestOllamaProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(ProviderConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider() error = %v", err)
	}

	if _, err := provider.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}); err == nil {
		t.Error("Complete() should fail on a non-200 response")
	}
}

func TestOllamaProvider_Defaults(t *testing.T) {
	provider, err := NewOllamaProvider(ProviderConfig{})
	if err != nil {
		t.Fatalf("NewOllamaProvider() error = %v", err)
	}
	if provider.baseURL != "http://localhost:11434" {
		t.Errorf("baseURL = %q", provider.baseURL)
	}
	if provider.model != "llama3.2" {
		t.Errorf("model = %q", provider.model)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Name() = %q", provider.Name())
	}
}
