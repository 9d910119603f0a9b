package handle

import (
	"encoding/json"
	"net/http"

	"thermal-sense/api/internal/detect"
)

type Handle struct {
	svc *detect.Service
}

func New(svc *detect.Service) *Handle {
	return &Handle{
		svc: svc,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// CORS lets the camera page call the endpoint from another origin.
// Only a browser preflight is answered here; any other OPTIONS request
// reaches the handler and gets its 405.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
