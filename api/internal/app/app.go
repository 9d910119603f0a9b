package app

import (
	"thermal-sense/api/internal/config"
	"thermal-sense/api/internal/detect"
	"thermal-sense/api/internal/vision"
	"thermal-sense/api/internal/vision/gemini"
	"thermal-sense/api/internal/vision/zai"
)

func NewEngines(cfg *config.Config) *vision.Engines {
	return &vision.Engines{
		Default: cfg.DefaultLLM,
		ZAI:     zai.New(cfg.ZAIAPIKey, cfg.ZAIModel, cfg.ZAIBaseURL, cfg.ProviderTimeout),
		Gemini:  gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
}

// NewDetectService wires the detection pipeline from configuration. Every
// entry point (HTTP server, serverless function, bot) goes through here.
func NewDetectService(cfg *config.Config) *detect.Service {
	return detect.NewService(NewEngines(cfg), cfg.ProviderTimeout)
}
