package container_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/container"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
)

func testSettings() *config.Settings {
	return &config.Settings{
		LLM:   config.LLMSettings{Provider: "openai", Timeout: time.Second},
		Teach: config.TeachSettings{ChatMode: "structured"},
		CORS: config.CORSSettings{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		},
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rr
}

func TestMissingCredential(t *testing.T) {
	c := container.Build(testSettings(), nil)
	h := c.Router()

	assert.False(t, c.Configured)

	for _, path := range []string{"/dino/generate", "/mole/generate"} {
		rr := do(t, h, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, path)
		assert.JSONEq(t, `{"detail": "API key not configured"}`, rr.Body.String(), path)
	}

	rr := do(t, h, http.MethodPost, "/teach/chat", `{"message": "Salut"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail": "API key not configured"}`, rr.Body.String())
}

func TestDummiesNeedNoCredential(t *testing.T) {
	h := container.Build(testSettings(), nil).Router()

	for _, path := range []string{"/dino/generate_dummy", "/mole/generate_dummy", "/teach/chat_dummy"} {
		rr := do(t, h, http.MethodPost, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRootAndHealth(t *testing.T) {
	var calls atomic.Int32
	gw := llm.GatewayFunc(func(ctx context.Context, req llm.Request) (string, error) {
		calls.Add(1)
		return "", nil
	})
	h := container.Build(testSettings(), gw).Router()

	rr := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "French Vocabulary Exercise Generator API"}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "openai", health["provider"])
	assert.Equal(t, true, health["configured"])
	assert.Zero(t, calls.Load())
}
