package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"thermal-sense/api/internal/app"
	"thermal-sense/api/internal/config"
	"thermal-sense/api/internal/handle"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}
	if cfg.ZAIAPIKey == "" {
		log.Printf("warning: ZAI_API_KEY is empty; /detect will answer 500 until it is set")
	}

	h := handle.New(app.NewDetectService(cfg))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/detect", h.Detect)
	// путь, на который ходит фронтенд при деплое функции на Netlify
	mux.HandleFunc("/.netlify/functions/detect", h.Detect)

	addr := ":" + cfg.Port
	log.Printf("detect-proxy listening on %s (default llm=%s)", addr, cfg.DefaultLLM)
	log.Fatal(http.ListenAndServe(addr, handle.CORS(mux)))
}
