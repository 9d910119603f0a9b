package handle

import (
	"io"
	"net/http"
)

// maxBody caps the inbound JSON; a phone camera frame in base64 fits easily.
const maxBody = 16 << 20

func (h *Handle) Detect(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Method == http.MethodPost {
		defer r.Body.Close()
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
			return
		}
		if len(b) > maxBody {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		body = b
	}

	out := h.svc.Handle(r.Context(), r.Method, body)
	writeJSON(w, out.Status, out.Body())
}

func (h *Handle) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
