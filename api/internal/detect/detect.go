package detect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"thermal-sense/api/internal/util"
	"thermal-sense/api/internal/vision"
)

const DefaultTimeout = 30 * time.Second

// Service runs Validate → CheckCredential → BuildPayload → CallProvider →
// RecoverJSON for one request. It holds no per-request state.
type Service struct {
	engs    *vision.Engines
	timeout time.Duration
}

func NewService(engs *vision.Engines, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{engs: engs, timeout: timeout}
}

// Handle takes a raw inbound call. No panic escapes it.
func (s *Service) Handle(ctx context.Context, method string, body []byte) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("detect: recovered panic: %v", r)
			out = fail(errUnhandled(fmt.Sprint(r), nil))
		}
	}()

	if method != http.MethodPost {
		return fail(errMethodNotAllowed())
	}
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return fail(errBadRequest("bad json: "+err.Error(), err))
	}
	return s.detect(ctx, req)
}

// Detect runs the pipeline on an already decoded request.
func (s *Service) Detect(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("detect: recovered panic: %v", r)
			out = fail(errUnhandled(fmt.Sprint(r), nil))
		}
	}()
	return s.detect(ctx, req)
}

func (s *Service) detect(ctx context.Context, req Request) Outcome {
	image := util.StripBase64Prefix(req.Image)
	if image == "" {
		return fail(errMissingImage())
	}

	eng, err := s.engs.GetEngine(req.LLMName)
	if err != nil {
		return fail(errBadRequest(err.Error(), err))
	}
	if err := eng.CheckKey(); err != nil {
		return fail(errConfiguration(err))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := eng.Complete(ctx, vision.DetectPrompt(image))
	log.Printf("detect time: %d ms (engine=%s model=%s)", time.Since(start).Milliseconds(), eng.Name(), eng.GetModel())
	if err != nil {
		return fail(classify(err))
	}

	items, err := ParseItems(text)
	if err != nil {
		raw := strings.TrimSpace(text)
		log.Printf("detect: %v; raw=%q", err, util.Truncate(raw, 256))
		return Outcome{Status: http.StatusOK, Items: []Item{}, Raw: raw, Err: errParse(err)}
	}
	return success(items)
}

func classify(err error) *Error {
	var pe *vision.ProviderError
	if errors.As(err, &pe) {
		log.Printf("detect: provider %s returned %d", pe.Provider, pe.Status)
		return errProvider(pe.Status, pe.Body, err)
	}
	var ce *vision.ConfigError
	if errors.As(err, &ce) {
		return errConfiguration(err)
	}
	log.Printf("detect: provider call failed: %v", err)
	return errUnhandled(err.Error(), err)
}
