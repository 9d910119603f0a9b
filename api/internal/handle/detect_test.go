package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"thermal-sense/api/internal/detect"
	"thermal-sense/api/internal/vision"
)

type replyEngine struct {
	reply string
	err   error
}

func (e replyEngine) Name() string     { return "fake" }
func (e replyEngine) GetModel() string { return "fake" }
func (e replyEngine) CheckKey() error  { return nil }
func (e replyEngine) Complete(context.Context, vision.Prompt) (string, error) {
	return e.reply, e.err
}

func newHandle(eng vision.Engine) *Handle {
	return New(detect.NewService(&vision.Engines{ZAI: eng}, time.Second))
}

func do(t *testing.T, h http.Handler, method, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, "/detect", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var m map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
			t.Fatalf("response is not JSON: %q", rec.Body.String())
		}
	}
	return rec, m
}

func TestDetectHTTPSuccess(t *testing.T) {
	h := newHandle(replyEngine{reply: "```json\n[{\"label\":\"cup\",\"x\":1,\"y\":2,\"w\":3,\"h\":4,\"temp\":42.5}]\n```"})
	rec, m := do(t, http.HandlerFunc(h.Detect), http.MethodPost, `{"image":"data:image/jpeg;base64,QQ=="}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	items, _ := m["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %#v", m["items"])
	}
	first := items[0].(map[string]any)
	if first["label"] != "cup" || first["temp"] != 42.5 {
		t.Errorf("item = %#v", first)
	}
	if m["message"] != "Detection successful" {
		t.Errorf("message = %v", m["message"])
	}
}

func TestDetectHTTPMethodNotAllowed(t *testing.T) {
	h := newHandle(replyEngine{reply: "[]"})
	rec, m := do(t, http.HandlerFunc(h.Detect), http.MethodGet, "")
	if rec.Code != http.StatusMethodNotAllowed || m["error"] != "Method not allowed" {
		t.Errorf("got %d %v", rec.Code, m)
	}
}

func TestDetectHTTPNoImage(t *testing.T) {
	h := newHandle(replyEngine{reply: "[]"})
	rec, m := do(t, http.HandlerFunc(h.Detect), http.MethodPost, `{"image":""}`)
	if rec.Code != http.StatusBadRequest || m["error"] != "No image provided" {
		t.Errorf("got %d %v", rec.Code, m)
	}
}

func TestDetectHTTPUpstreamStatus(t *testing.T) {
	h := newHandle(replyEngine{err: &vision.ProviderError{Provider: "zai", Status: 503, Body: "rate limited"}})
	rec, m := do(t, http.HandlerFunc(h.Detect), http.MethodPost, `{"image":"QQ=="}`)
	if rec.Code != 503 {
		t.Fatalf("status = %d", rec.Code)
	}
	if m["error"] != "Provider API Error: rate limited" {
		t.Errorf("error = %v", m["error"])
	}
}

func TestDetectHTTPSoftSuccess(t *testing.T) {
	h := newHandle(replyEngine{reply: "I see a cup."})
	rec, m := do(t, http.HandlerFunc(h.Detect), http.MethodPost, `{"image":"QQ=="}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if m["debug_raw"] != "I see a cup." || m["error"] != "Failed to parse AI response" {
		t.Errorf("body = %v", m)
	}
}

func TestDetectHTTPTooLarge(t *testing.T) {
	h := newHandle(replyEngine{reply: "[]"})
	big := `{"image":"` + strings.Repeat("A", maxBody) + `"}`
	rec, _ := do(t, http.HandlerFunc(h.Detect), http.MethodPost, big)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newHandle(replyEngine{reply: "[]"})
	req := httptest.NewRequest(http.MethodOptions, "/detect", nil)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	CORS(http.HandlerFunc(h.Detect)).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func TestCORSNonPreflightIsNotAllowed(t *testing.T) {
	h := CORS(http.HandlerFunc(newHandle(replyEngine{reply: "[]"}).Detect))
	for _, m := range []string{http.MethodOptions, http.MethodGet} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(m, "/detect", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: status = %d", m, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Method not allowed") {
			t.Errorf("%s: body = %q", m, rec.Body.String())
		}
	}
}

func TestHealthz(t *testing.T) {
	h := newHandle(replyEngine{})
	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}
