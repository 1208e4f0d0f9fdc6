package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"id":"1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n", content)
}

func TestOpenAIService_StreamCompletion(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var body struct {
			Model  string `json:"model"`
			Stream bool   `json:"stream"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Stream)
		gotModel = body.Model

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, sseChunk(`{"businessName":"A"}`+"\n"))
		fmt.Fprint(w, sseChunk(`{"businessName":`))
		fmt.Fprint(w, sseChunk(`"B"}`))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	svc, err := NewOpenAIService("test-key", "", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o-mini", svc.Name())

	var chunks []string
	err = svc.StreamCompletion(context.Background(), CompletionRequest{
		Model:        "custom-model",
		SystemPrompt: "system",
		UserPrompt:   "user",
	}, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-model", gotModel)
	assert.Equal(t, `{"businessName":"A"}`+"\n"+`{"businessName":"B"}`, strings.Join(chunks, ""))
}

func TestOpenAIService_QuotaError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`)
	}))
	defer server.Close()

	svc, err := NewOpenAIService("test-key", "gpt-4o-mini", server.URL)
	require.NoError(t, err)

	err = svc.StreamCompletion(context.Background(), CompletionRequest{UserPrompt: "user"}, func(string) error { return nil })
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestOpenAIService_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer server.Close()

	svc, err := NewOpenAIService("test-key", "gpt-4o-mini", server.URL)
	require.NoError(t, err)

	err = svc.StreamCompletion(context.Background(), CompletionRequest{UserPrompt: "user"}, func(string) error { return nil })
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
}

func TestNewOpenAIService_RequiresKey(t *testing.T) {
	_, err := NewOpenAIService("", "", "")
	assert.Error(t, err)
}
