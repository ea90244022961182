package llm

import (
	"context"
	"testing"
)

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider("nope", ProviderConfig{}); err == nil {
		t.Error("NewProvider() should fail for an unregistered name")
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	provider, err := NewProvider("ollama", ProviderConfig{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Name() = %q, want ollama", provider.Name())
	}
}

type stubProvider struct{}

func (stubProvider) Complete(context.Context, CompletionRequest) (CompletionResponse, error) {
	return CompletionResponse{Content: "stub"}, nil
}
func (stubProvider) Name() string { return "stub" }

func TestRegisterProvider(t *testing.T) {
	RegisterProvider("stub", func(cfg ProviderConfig) (Provider, error) {
		return stubProvider{}, nil
	})
	defer delete(registry, "stub")

	provider, err := NewProvider("stub", ProviderConfig{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	resp, err := provider.Complete(context.Background(), CompletionRequest{})
	if err != nil || resp.Content != "stub" {
		t.Errorf("Complete() = %q, %v", resp.Content, err)
	}
}

func TestAvailableProviders(t *testing.T) {
	providers := AvailableProviders()
	for _, want := range []string{"anthropic", "openai", "ollama"} {
		found := false
		for _, name := range providers {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("AvailableProviders() missing %s", want)
		}
	}
}

func TestDetectProvider_Priority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("OPENAI_API_KEY", "ok")
	if name, key := DetectProvider(); name != "anthropic" || key != "ak" {
		t.Errorf("DetectProvider() = %s/%s, want anthropic/ak", name, key)
	}

	t.Setenv("ANTHROPIC_API_KEY", "")
	if name, key := DetectProvider(); name != "openai" || key != "ok" {
		t.Errorf("DetectProvider() = %s/%s, want openai/ok", name, key)
	}

	t.Setenv("OPENAI_API_KEY", "")
	if name, key := DetectProvider(); name != "ollama" || key != "" {
		t.Errorf("DetectProvider() = %s/%s, want ollama with no key", name, key)
	}
}

func TestGetDefaultModel(t *testing.T) {
	if got := GetDefaultModel("ollama"); got != "llama3.2" {
		t.Errorf("GetDefaultModel(ollama) = %q", got)
	}
	if got := GetDefaultModel("unknown"); got != "" {
		t.Errorf("GetDefaultModel(unknown) = %q, want empty", got)
	}
}
