package zai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"thermal-sense/api/internal/util"
	"thermal-sense/api/internal/vision"
)

const (
	DefaultBaseURL = "https://open.bigmodel.cn/api/paas/v4"
	DefaultModel   = "glm-4v"
)

// Engine talks to the Zhipu GLM-4V chat-completions API.
type Engine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func New(key, model, baseURL string, timeout time.Duration) *Engine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Engine{
		APIKey:  strings.TrimSpace(key),
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient overrides the internal HTTP client.
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

func (e *Engine) Name() string     { return "zai" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) CheckKey() error {
	if e.APIKey == "" {
		return &vision.ConfigError{Env: "ZAI_API_KEY"}
	}
	return nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

// contentPart: текст или картинка в одном user-сообщении.
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func buildRequest(model string, p vision.Prompt) chatRequest {
	mime := p.MIME
	if mime == "" {
		mime = vision.DefaultImageMIME
	}
	return chatRequest{
		Model: model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: p.Text},
				{Type: "image_url", ImageURL: &imageURL{URL: util.MakeDataURL(mime, p.ImageB64)}},
			},
		}},
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	}
}

func (e *Engine) Complete(ctx context.Context, p vision.Prompt) (string, error) {
	if err := e.CheckKey(); err != nil {
		return "", err
	}

	payload, err := json.Marshal(buildRequest(e.Model, p))
	if err != nil {
		return "", fmt.Errorf("zai: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("zai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("zai: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("zai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &vision.ProviderError{Provider: e.Name(), Status: resp.StatusCode, Body: string(raw)}
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("zai: bad response envelope: %w", err)
	}
	if len(out.Choices) == 0 {
		log.Printf("zai: no choices in reply; body=%s", util.Truncate(string(raw), 512))
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
