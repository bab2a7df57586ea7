package git

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m, err := newMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	svc, err := NewService(Config{APIURL: server.URL, Token: "config-token"}, m, zaptest.NewLogger(t))
	require.NoError(t, err)

	return svc.Client("", Repository{Owner: "acme", Name: "app"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestBlobSHA(t *testing.T) {
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", BlobSHA("hello\n"))
	assert.Equal(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391", BlobSHA(""))
	assert.Equal(t, "b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0", BlobSHA("hello"))
}

func TestValidatePath(t *testing.T) {
	valid := []string{"main.tf", "infra/main.tf", ".github/workflows/ci.yml"}
	for _, p := range valid {
		assert.NoError(t, ValidatePath(p), p)
	}

	invalid := []string{"", "/etc/passwd", "../secret", "a/../b", "a//b", "a/./b", "dir/", `a\b`}
	for _, p := range invalid {
		assert.ErrorIs(t, ValidatePath(p), ErrInvalidPath, p)
	}
}

func TestParseRepository(t *testing.T) {
	repo, err := ParseRepository("acme/app")
	require.NoError(t, err)
	assert.Equal(t, Repository{Owner: "acme", Name: "app"}, repo)

	for _, bad := range []string{"acme", "acme/", "/app", "a/b/c"} {
		_, err := ParseRepository(bad)
		assert.ErrorIs(t, err, ErrMalformedRequest, bad)
	}
}

func TestClient_ResolveTip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer config-token", r.Header.Get("Authorization"))
		switch {
		case strings.HasSuffix(r.URL.Path, "/heads/main"):
			writeJSON(w, http.StatusOK, map[string]any{
				"ref":    "refs/heads/main",
				"object": map[string]any{"sha": "c1", "type": "commit"},
			})
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
		}
	})

	sha, err := client.ResolveTip(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "c1", sha)

	_, err = client.ResolveTip(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestClient_CreateBranchConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/repos/acme/app/git/refs"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refs/heads/feature", body["ref"])
		assert.Equal(t, "c1", body["sha"])

		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "Reference already exists"})
	})

	err := client.CreateBranch(context.Background(), "feature", "c1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClient_CheckPushAccess(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     map[string]any
		expected error
	}{
		{
			name:   "push granted",
			status: http.StatusOK,
			body:   map[string]any{"full_name": "acme/app", "permissions": map[string]bool{"pull": true, "push": true}},
		},
		{
			name:     "read only",
			status:   http.StatusOK,
			body:     map[string]any{"full_name": "acme/app", "permissions": map[string]bool{"pull": true}},
			expected: ErrForbidden,
		},
		{
			name:   "oauth restricted",
			status: http.StatusForbidden,
			body: map[string]any{
				"message": "Although you appear to have the correct authorization credentials, the `acme` organization has enabled OAuth App access restrictions",
			},
			expected: ErrOAuthRestricted,
		},
		{
			name:     "bad credentials",
			status:   http.StatusUnauthorized,
			body:     map[string]any{"message": "Bad credentials"},
			expected: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			err := client.CheckPushAccess(context.Background())
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
			assert.NotEmpty(t, Guidance(err))
		})
	}
}

func TestClient_CreateBlobVerifiesHash(t *testing.T) {
	returned := BlobSHA("hello\n")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "base64", body["encoding"])
		decoded, err := base64.StdEncoding.DecodeString(body["content"])
		assert.NoError(t, err)
		assert.Equal(t, "hello\n", string(decoded))
		writeJSON(w, http.StatusCreated, map[string]any{"sha": returned})
	})

	sha, err := client.CreateBlob(context.Background(), "hello\n")
	require.NoError(t, err)
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", sha)

	returned = "0000000000000000000000000000000000000000"
	_, err = client.CreateBlob(context.Background(), "hello\n")
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestClient_PutFileWorkflowScope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		writeJSON(w, http.StatusForbidden, map[string]any{
			"message": "refusing to allow an OAuth App to create or update workflow `.github/workflows/ci.yml`",
		})
	})

	_, err := client.PutFile(context.Background(), PutFileRequest{
		Branch:  "feature",
		Path:    ".github/workflows/ci.yml",
		Content: "on: push\n",
		Message: "Add CI - .github/workflows/ci.yml",
	})
	require.ErrorIs(t, err, ErrWorkflowScope)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, Guidance(err), "'workflow'")
}

func TestClient_PutFileSendsContentAndSHA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(raw, &body))

		decoded, err := base64.StdEncoding.DecodeString(body["content"])
		assert.NoError(t, err)
		assert.Equal(t, "x = 1\n", string(decoded))
		assert.Equal(t, "old-sha", body["sha"])
		assert.Equal(t, "feature", body["branch"])

		writeJSON(w, http.StatusOK, map[string]any{"commit": map[string]any{"sha": "commit-1"}})
	})

	sha, err := client.PutFile(context.Background(), PutFileRequest{
		Branch:  "feature",
		Path:    "vars.tf",
		Content: "x = 1\n",
		Message: "Update - vars.tf",
		SHA:     "old-sha",
	})
	require.NoError(t, err)
	assert.Equal(t, "commit-1", sha)
}

func TestClient_FileSHA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "feature", r.URL.Query().Get("ref"))
		if strings.HasSuffix(r.URL.Path, "/contents/present.txt") {
			writeJSON(w, http.StatusOK, map[string]any{
				"type":     "file",
				"path":     "present.txt",
				"sha":      BlobSHA("hello\n"),
				"encoding": "base64",
				"content":  base64.StdEncoding.EncodeToString([]byte("hello\n")),
			})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})

	sha, ok, err := client.FileSHA(context.Background(), "present.txt", "feature")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, BlobSHA("hello\n"), sha)

	file, err := client.FileContent(context.Background(), "present.txt", "feature")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", file.Content)

	_, ok, err = client.FileSHA(context.Background(), "absent.txt", "feature")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_RateLimitAndServerErrors(t *testing.T) {
	status := http.StatusTooManyRequests
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, map[string]any{"message": "slow down"})
	})

	_, err := client.CommitTree(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrRateLimited)

	status = http.StatusBadGateway
	_, err = client.CommitTree(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrUpstream)
}
