package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicGateway(t *testing.T, handler http.HandlerFunc) *AnthropicGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := NewAnthropicGateway(Config{APIKey: "test-key", BaseURL: server.URL + "/", Model: "claude-sonnet-4-20250514"})
	require.NoError(t, err)
	return gw
}

func writeAnthropicContent(w http.ResponseWriter, content []map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":            "msg_test",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-sonnet-4-20250514",
		"content":       content,
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"usage":         map[string]any{"input_tokens": 10, "output_tokens": 5},
	})
}

func TestAnthropicGateway_Complete(t *testing.T) {
	type block struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	var got struct {
		Model     string  `json:"model"`
		MaxTokens int     `json:"max_tokens"`
		System    []block `json:"system"`
		Messages  []struct {
			Role    string  `json:"role"`
			Content []block `json:"content"`
		} `json:"messages"`
	}

	gw := newTestAnthropicGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeAnthropicContent(w, []map[string]any{{"type": "text", "text": "Bonjour!"}})
	})

	raw, err := gw.Complete(context.Background(), Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "be a teacher"},
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "bonjour"},
			{Role: RoleUser, Content: "again"},
		},
		MaxTokens: 800,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour!", raw)

	assert.Equal(t, "claude-sonnet-4-20250514", got.Model)
	assert.Equal(t, 800, got.MaxTokens)
	require.Len(t, got.System, 1)
	assert.Equal(t, "be a teacher", got.System[0].Text)

	require.Len(t, got.Messages, 3)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content[0].Text)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Equal(t, "user", got.Messages[2].Role)
}

func TestAnthropicGateway_NoSystem(t *testing.T) {
	gw := newTestAnthropicGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "system")

		writeAnthropicContent(w, []map[string]any{{"type": "text", "text": "ok"}})
	})

	raw, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "ok", raw)
}

func TestAnthropicGateway_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		wantAs any
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantAs: new(*AuthError)},
		{name: "forbidden", status: http.StatusForbidden, wantAs: new(*AuthError)},
		{name: "server error", status: http.StatusInternalServerError, wantAs: new(*TransportError)},
		{name: "overloaded", status: 529, wantAs: new(*TransportError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestAnthropicGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": "api_error", "message": "nope"},
				})
			})

			_, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 100})
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.wantAs)
		})
	}
}

func TestAnthropicGateway_NoTextBlock(t *testing.T) {
	gw := newTestAnthropicGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeAnthropicContent(w, []map[string]any{})
	})

	_, err := gw.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 100})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, ProviderAnthropic, transportErr.Provider)
}
