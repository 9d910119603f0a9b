package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"thermal-sense/api/internal/vision"
)

func TestCheckKey(t *testing.T) {
	e := New("  ", "")
	var ce *vision.ConfigError
	if err := e.CheckKey(); !errors.As(err, &ce) || ce.Env != "GEMINI_API_KEY" {
		t.Fatalf("CheckKey = %v", err)
	}
	if _, err := e.Complete(context.Background(), vision.DetectPrompt("QQ==")); !errors.As(err, &ce) {
		t.Errorf("Complete without key = %v", err)
	}
	if e.GetModel() != DefaultModel {
		t.Errorf("model = %q", e.GetModel())
	}
}

func TestCompleteBadBase64(t *testing.T) {
	e := New("key", "")
	if _, err := e.Complete(context.Background(), vision.DetectPrompt("%%%")); err == nil {
		t.Fatal("expected base64 error")
	}
}

func TestProviderError(t *testing.T) {
	wrapped := fmt.Errorf("rpc: %w", &googleapi.Error{Code: 429, Body: `{"error":"quota"}`})
	var pe *vision.ProviderError
	if !errors.As(providerError(wrapped), &pe) {
		t.Fatal("expected *vision.ProviderError")
	}
	if pe.Status != 429 || pe.Body != `{"error":"quota"}` {
		t.Errorf("got %+v", pe)
	}

	noBody := &googleapi.Error{Code: 500, Message: "internal"}
	if !errors.As(providerError(noBody), &pe) || pe.Body != "internal" {
		t.Errorf("got %+v", pe)
	}

	other := errors.New("dial tcp: timeout")
	if errors.As(providerError(other), &pe) {
		t.Error("plain errors must not become provider errors")
	}
}

func TestFirstText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("```json\n"), genai.Text("[]\n```")}},
		}},
	}
	if got := firstText(resp); got != "```json\n[]\n```" {
		t.Errorf("got %q", got)
	}
	if got := firstText(nil); got != "" {
		t.Errorf("nil: got %q", got)
	}
	if got := firstText(&genai.GenerateContentResponse{}); got != "" {
		t.Errorf("empty: got %q", got)
	}
}
