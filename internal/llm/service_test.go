package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

const completionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "done"}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
}`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	catalog, err := NewCatalog()
	require.NoError(t, err)

	return NewService(Config{
		APIKey:      "sk-test",
		BaseURL:     server.URL + "/v1/",
		Model:       "gpt-4o",
		MaxTokens:   2000,
		Temperature: 0.3,
	}, catalog, zaptest.NewLogger(t))
}

func TestCatalog(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, p := range catalog.List() {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.SystemPrompt, p.ID)
		assert.NotEmpty(t, p.Title, p.ID)
	}
	assert.Equal(t, []string{
		"gae-terraform",
		"gae-cicd-pipeline",
		"sonarqube-integration",
		"artifact-registry-integration",
	}, ids)

	_, err = catalog.Get("nope")
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, err = parseCatalog([]byte("- id: a\n  template: x\n- id: a\n  template: y\n"))
	assert.Error(t, err)
}

func TestService_NotConfigured(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	svc := NewService(Config{Model: "gpt-4o"}, catalog, zaptest.NewLogger(t))
	assert.False(t, svc.Configured())

	_, err = svc.Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.ChatCompletions(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.ExecutePrompt(context.Background(), "gae-terraform", ExecuteRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.Len(t, svc.Prompts(), 4)
}

func TestService_ExecutePrompt(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "gpt-4o", gjson.GetBytes(body, "model").String())
		assert.InDelta(t, 0.3, gjson.GetBytes(body, "temperature").Float(), 1e-9)
		assert.Equal(t, int64(3000), gjson.GetBytes(body, "max_tokens").Int())
		assert.InDelta(t, 0.1, gjson.GetBytes(body, "presence_penalty").Float(), 1e-9)
		assert.InDelta(t, 0.1, gjson.GetBytes(body, "frequency_penalty").Float(), 1e-9)
		assert.Equal(t, "system", gjson.GetBytes(body, "messages.0.role").String())
		assert.True(t, strings.HasSuffix(
			gjson.GetBytes(body, "messages.1.content").String(),
			"\n\nAdditional requirements: use us-central1",
		))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionJSON)
	})

	exec, err := svc.ExecutePrompt(context.Background(), "gae-terraform", ExecuteRequest{
		UserInput:  "use us-central1",
		Repository: "acme/infra",
		Branch:     "main",
	})
	require.NoError(t, err)

	assert.Equal(t, "gae-terraform", exec.PromptID)
	assert.Equal(t, "done", exec.Response)
	assert.Equal(t, "acme/infra", exec.Metadata.Repository)
	assert.Equal(t, "DevOps automation and infrastructure management", exec.Metadata.Context)

	_, err = svc.ExecutePrompt(context.Background(), "missing", ExecuteRequest{})
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestService_ChatCompletionsProxy(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "gpt-4o", gjson.GetBytes(body, "model").String())
		assert.Equal(t, "hi", gjson.GetBytes(body, "messages.0.content").String())

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionJSON)
	})

	raw, err := svc.ChatCompletions(context.Background(), []byte(`{"messages":[{"role":"user","content":"hi"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "done", gjson.GetBytes(raw, "choices.0.message.content").String())

	_, err = svc.ChatCompletions(context.Background(), []byte(`not json`))
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestService_ErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{status: http.StatusUnauthorized, expected: ErrInvalidAPIKey},
		{status: http.StatusTooManyRequests, expected: ErrRateLimited},
		{status: http.StatusInternalServerError, expected: ErrUpstream},
		{status: http.StatusBadRequest, expected: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"error":{"message":"upstream says no","type":"invalid_request_error"}}`)
			})

			_, err := svc.Complete(context.Background(), CompletionRequest{
				Messages: []Message{{Role: RoleUser, Content: "hi"}},
			})
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
