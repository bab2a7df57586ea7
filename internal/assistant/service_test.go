package assistant

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apiarycd/assistd/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T, reply string, inspect func(body []byte)) *Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if inspect != nil {
			inspect(body)
		}

		resp, _ := sjson.Set(`{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o",`+
			`"choices":[{"index":0,"message":{"role":"assistant"},"finish_reason":"stop"}]}`,
			"choices.0.message.content", reply)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(server.Close)

	catalog, err := llm.NewCatalog()
	require.NoError(t, err)

	completions := llm.NewService(llm.Config{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1/",
		Model:   "gpt-4o",
	}, catalog, zaptest.NewLogger(t))

	return NewService(completions, zaptest.NewLogger(t))
}

func TestService_ChatGenerates(t *testing.T) {
	reply := "Added Terraform.\nFILE_START: infra/main.tf\n```hcl\nterraform {}\n```\nFILE_END"

	svc := newTestService(t, reply, func(body []byte) {
		system := gjson.GetBytes(body, "messages.0.content").String()
		assert.Contains(t, system, "FILE_START: path/to/file.ext")
		assert.Contains(t, system, "acme/infra")
		assert.Equal(t, "assistant", gjson.GetBytes(body, "messages.1.role").String())
		assert.Equal(t, "create a terraform template", gjson.GetBytes(body, "messages.2.content").String())
	})

	resp, err := svc.Chat(context.Background(), ChatRequest{
		Repository: "acme/infra",
		Branch:     "main",
		Prompt:     "create a terraform template",
		History:    []llm.Message{{Role: llm.RoleAssistant, Content: "Hi"}},
	}, func(string) bool { return false })
	require.NoError(t, err)

	assert.Equal(t, IntentGenerate, resp.Classification.Intent)
	require.Equal(t, KindFiles, resp.Result.Kind)
	assert.Equal(t, "Added Terraform.", resp.Result.Message)
	assert.Equal(t, "terraform {}\n", resp.Result.Files[0].Content)
	assert.True(t, resp.Result.Files[0].IsNew)
}

func TestService_ChatConversationIgnoresMarkers(t *testing.T) {
	reply := "It deploys on push.\nFILE_START: x.yml\na: b\nFILE_END"

	svc := newTestService(t, reply, func(body []byte) {
		system := gjson.GetBytes(body, "messages.0.content").String()
		assert.True(t, strings.Contains(system, "CONVERSATION-ONLY"))
	})

	resp, err := svc.Chat(context.Background(), ChatRequest{Prompt: "explain what this does"}, nil)
	require.NoError(t, err)

	assert.Equal(t, IntentAnalyze, resp.Classification.Intent)
	assert.Equal(t, KindText, resp.Result.Kind)
	assert.Equal(t, reply, resp.Result.Message)
	assert.Empty(t, resp.Result.Files)
}

func TestService_ChatEmptyPrompt(t *testing.T) {
	svc := newTestService(t, "", nil)

	_, err := svc.Chat(context.Background(), ChatRequest{Prompt: "  "}, nil)
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}
