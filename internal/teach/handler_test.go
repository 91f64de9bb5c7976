package teach_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/teach"
)

func serve(t *testing.T, gw llm.Gateway, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := teach.Routes(teach.NewHandler(newService(gw, prompt.ChatStructured)))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandler_Chat(t *testing.T) {
	rr := serve(t, replying(`{"response": "Bonjour!", "translation": null, "audioText": null}`), "/chat", `{"message": "Salut"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"response": "Bonjour!", "translation": null, "audioText": null}`, rr.Body.String())
}

func TestHandler_ChatDummy(t *testing.T) {
	rr := serve(t, nil, "/chat_dummy", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Bonjour", body["audioText"])
}

func TestHandler_ChatErrors(t *testing.T) {
	failing := llm.GatewayFunc(func(ctx context.Context, req llm.Request) (string, error) {
		return "", &llm.TransportError{Provider: "openai", StatusCode: 502, Err: context.DeadlineExceeded}
	})

	tests := []struct {
		name       string
		gw         llm.Gateway
		body       string
		wantStatus int
		wantDetail string
	}{
		{"blank message", replying("x"), `{"message": "   "}`, http.StatusBadRequest, "message must not be blank"},
		{"missing message", replying("x"), `{}`, http.StatusBadRequest, "message is required"},
		{"missing credential", nil, `{"message": "Salut"}`, http.StatusInternalServerError, "API key not configured"},
		{"gateway failure", failing, `{"message": "Salut"}`, http.StatusInternalServerError, "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, tt.gw, "/chat", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.True(t, strings.HasPrefix(body["detail"], tt.wantDetail), "detail %q", body["detail"])
		})
	}
}
