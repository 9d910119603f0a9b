package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	ZAIAPIKey  string
	ZAIBaseURL string
	ZAIModel   string

	GeminiAPIKey string
	GeminiModel  string

	// DefaultLLM: движок, если в запросе нет llm_name ("zai" | "gemini").
	DefaultLLM      string
	ProviderTimeout time.Duration

	TelegramBotToken string
	WebhookURL       string
	HotThresholdC    float64
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getFloat(k string, def float64) float64 {
	s := getEnv(k, "")
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("config: bad %s=%q, using %v", k, s, def)
		return def
	}
	return v
}

func getSeconds(k string, def time.Duration) time.Duration {
	s := getEnv(k, "")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("config: bad %s=%q, using %v", k, s, def)
		return def
	}
	return time.Duration(n) * time.Second
}

// Load reads the proxy configuration. Provider keys are optional here:
// a missing key is reported per request, not at startup.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		ZAIAPIKey:  getEnv("ZAI_API_KEY", ""),
		ZAIBaseURL: getEnv("ZAI_BASE_URL", "https://open.bigmodel.cn/api/paas/v4"),
		ZAIModel:   getEnv("ZAI_MODEL", "glm-4v"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DefaultLLM:      strings.ToLower(getEnv("DEFAULT_LLM", "zai")),
		ProviderTimeout: getSeconds("PROVIDER_TIMEOUT_SEC", 30*time.Second),

		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		HotThresholdC: getFloat("HOT_THRESHOLD_C", 40),
	}
}

// LoadBot is Load plus the settings the Telegram bot cannot run without.
func LoadBot() *Config {
	cfg := Load()
	cfg.TelegramBotToken = mustEnv("TELEGRAM_BOT_TOKEN")
	return cfg
}
