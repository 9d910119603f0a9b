package httpserver

import (
	"log"
	"net/http"
)

// Register mounts /healthz and a plain banner on mux. The bot passes
// http.DefaultServeMux because tgbotapi.ListenForWebhook registers there.
func Register(mux *http.ServeMux, banner string) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(banner))
	})
}

func StartHTTP(addr string, h http.Handler) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, h)
}
