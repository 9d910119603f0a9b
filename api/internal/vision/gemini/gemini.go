package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"thermal-sense/api/internal/util"
	"thermal-sense/api/internal/vision"
)

const DefaultModel = "gemini-2.5-flash"

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) CheckKey() error {
	if e.APIKey == "" {
		return &vision.ConfigError{Env: "GEMINI_API_KEY"}
	}
	return nil
}

func (e *Engine) Complete(ctx context.Context, p vision.Prompt) (string, error) {
	if err := e.CheckKey(); err != nil {
		return "", err
	}
	img, err := util.DecodeBase64(p.ImageB64)
	if err != nil {
		return "", fmt.Errorf("gemini: bad base64: %w", err)
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.SetTemperature(p.Temperature)
	if p.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(p.MaxTokens))
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(p.Text),
		genai.Blob{MIMEType: util.PickMIME(p.MIME, img), Data: img},
	)
	if err != nil {
		return "", providerError(err)
	}
	return firstText(resp), nil
}

// providerError maps an HTTP-level Google API failure onto *vision.ProviderError
// so callers see the upstream status; anything else is returned wrapped.
func providerError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code != 0 {
		body := gerr.Body
		if strings.TrimSpace(body) == "" {
			body = gerr.Message
		}
		return &vision.ProviderError{Provider: "gemini", Status: gerr.Code, Body: body}
	}
	return fmt.Errorf("gemini: generate: %w", err)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
