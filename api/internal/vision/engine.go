package vision

import (
	"context"
	"fmt"
	"strings"
)

// Engine is a multimodal provider. Complete returns the assistant text as-is;
// recovering JSON from it is the caller's job.
type Engine interface {
	Name() string
	GetModel() string
	// CheckKey reports a *ConfigError when the provider secret is missing.
	CheckKey() error
	Complete(ctx context.Context, p Prompt) (string, error)
}

type Engines struct {
	Default string
	ZAI     Engine
	Gemini  Engine
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	name := strings.ToLower(strings.TrimSpace(llmName))
	if name == "" {
		name = e.Default
	}
	var eng Engine
	switch name {
	case "", "zai", "glm", "zhipu":
		eng = e.ZAI
	case "gemini":
		eng = e.Gemini
	default:
		return nil, fmt.Errorf("unknown llm_name %q; use 'zai' or 'gemini'", llmName)
	}
	if eng == nil {
		return nil, fmt.Errorf("llm %q is not wired", name)
	}
	return eng, nil
}

// ProviderError is a non-2xx reply from the provider. Body is kept verbatim.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Provider, e.Status, e.Body)
}

type ConfigError struct {
	Env string
}

func (e *ConfigError) Error() string { return e.Env + " not configured" }
