package workspace

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/apiarycd/assistd/internal/assistant"
	"github.com/apiarycd/assistd/internal/diff"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/staging"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
	"go.uber.org/zap/zaptest"
)

// memoryHost is an in-memory git host with a single base branch.
type memoryHost struct {
	mu sync.Mutex

	files     map[string]string
	committed []string
	token     string
	failPR    bool
	seq       int

	// runs before the pull request is opened
	beforePR func()
}

func newMemoryHost(files map[string]string) *memoryHost {
	return &memoryHost{files: files}
}

func (h *memoryHost) next(kind string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	return fmt.Sprintf("%s-%d", kind, h.seq)
}

func (h *memoryHost) Repository() git.Repository {
	return git.Repository{Owner: "acme", Name: "infra"}
}

func (h *memoryHost) CheckPushAccess(context.Context) error { return nil }

func (h *memoryHost) ResolveTip(_ context.Context, branch string) (string, error) {
	if branch != "main" {
		return "", &git.APIError{Kind: git.ErrNotFound, Op: "resolve_tip", Status: 404, Message: "Not Found"}
	}
	return "base-commit", nil
}

func (h *memoryHost) CreateBranch(context.Context, string, string) error { return nil }
func (h *memoryHost) DeleteBranch(context.Context, string) error         { return nil }

func (h *memoryHost) CommitTree(_ context.Context, sha string) (string, error) {
	return "tree-of-" + sha, nil
}

func (h *memoryHost) CreateBlob(_ context.Context, content string) (string, error) {
	return git.BlobSHA(content), nil
}

func (h *memoryHost) CreateTree(_ context.Context, _, path, _ string) (string, error) {
	h.mu.Lock()
	h.committed = append(h.committed, path)
	h.mu.Unlock()

	return h.next("tree"), nil
}

func (h *memoryHost) CreateCommit(context.Context, string, string, string) (string, error) {
	return h.next("commit"), nil
}

func (h *memoryHost) UpdateRef(context.Context, string, string) error { return nil }

func (h *memoryHost) FileSHA(_ context.Context, path, _ string) (string, bool, error) {
	content, ok := h.files[path]
	if !ok {
		return "", false, nil
	}
	return git.BlobSHA(content), true, nil
}

func (h *memoryHost) PutFile(context.Context, git.PutFileRequest) (string, error) {
	return h.next("commit"), nil
}

func (h *memoryHost) CreatePullRequest(context.Context, git.PullRequestDraft) (*git.PullRequest, error) {
	if h.beforePR != nil {
		h.beforePR()
	}
	if h.failPR {
		return nil, &git.APIError{Kind: git.ErrMalformedRequest, Op: "create_pull_request", Status: 422, Message: "Validation Failed"}
	}
	return &git.PullRequest{URL: "https://github.com/acme/infra/pull/7", Number: 7}, nil
}

func (h *memoryHost) ListBranches(context.Context) ([]git.Branch, error) {
	return []git.Branch{{Name: "main", SHA: "base-commit"}}, nil
}

func (h *memoryHost) Tree(context.Context, string) (*git.Tree, error) {
	tree := &git.Tree{SHA: "tree-of-base-commit"}
	for path, content := range h.files {
		tree.Entries = append(tree.Entries, git.TreeEntry{Path: path, Type: git.TreeEntryBlob, SHA: git.BlobSHA(content)})
	}
	tree.Entries = append(tree.Entries, git.TreeEntry{Path: "infra", Type: git.TreeEntryTree, SHA: "dir"})
	return tree, nil
}

func (h *memoryHost) FileContent(_ context.Context, path, _ string) (*git.FileContent, error) {
	content, ok := h.files[path]
	if !ok {
		return nil, &git.APIError{Kind: git.ErrNotFound, Op: "file_content", Status: 404, Message: "Not Found"}
	}
	return &git.FileContent{Path: path, SHA: git.BlobSHA(content), Content: content}, nil
}

func newTestService(t *testing.T, host *memoryHost, completion string) *Service {
	t.Helper()

	logger := zaptest.NewLogger(t)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	publisher := publish.NewService(publish.Config{BranchPrefix: "ai-assistant-updates-"}, publish.NewRepository(db), nil, logger)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp, _ := sjson.Set(`{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o",`+
			`"choices":[{"index":0,"message":{"role":"assistant"},"finish_reason":"stop"}]}`,
			"choices.0.message.content", completion)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(server.Close)

	catalog, err := llm.NewCatalog()
	require.NoError(t, err)
	completions := llm.NewService(llm.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1/", Model: "gpt-4o"}, catalog, logger)

	svc, err := NewService(
		Config{SessionTTL: time.Hour, DiffAlgorithm: diff.AlgorithmPositional},
		nil,
		publisher,
		assistant.NewService(completions, logger),
		logger,
	)
	require.NoError(t, err)

	svc.connect = func(token string, _ git.Repository) Host {
		host.token = token
		return host
	}

	return svc
}

func TestService_CreateAndSwitch(t *testing.T) {
	svc := newTestService(t, newMemoryHost(map[string]string{}), "")

	ws, err := svc.Create("acme/infra", "")
	require.NoError(t, err)
	assert.Equal(t, "acme/infra", ws.Repository)
	assert.Equal(t, "main", ws.BaseBranch)

	_, err = svc.StageManual(context.Background(), "", ws.ID, "notes.md", "hi")
	require.NoError(t, err)

	ws, err = svc.SwitchRepository(ws.ID, "acme/other", "develop")
	require.NoError(t, err)
	assert.Equal(t, "acme/other", ws.Repository)
	assert.Equal(t, "develop", ws.BaseBranch)
	assert.Empty(t, ws.Files)

	_, err = svc.Create("not-a-repo", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ws.ID))
	_, err = svc.Get(ws.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_StageExistingFileRecordsOriginal(t *testing.T) {
	host := newMemoryHost(map[string]string{"infra/main.tf": "a\nb\n"})
	svc := newTestService(t, host, "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	staged, err := svc.StageGenerated(context.Background(), "ghs_token", ws.ID, "infra/main.tf", "a\nc\n")
	require.NoError(t, err)
	assert.Equal(t, "ghs_token", host.token)
	assert.False(t, staged.IsNew)
	assert.Equal(t, "a\nb\n", staged.OriginalContent)
	assert.Equal(t, staging.OriginGenerated, staged.Origin)

	manual, err := svc.StageManual(context.Background(), "", ws.ID, "infra/main.tf", "a\nd\n")
	require.NoError(t, err)
	assert.Equal(t, staging.OriginManualEdit, manual.Origin)

	again, err := svc.StageGenerated(context.Background(), "", ws.ID, "infra/main.tf", "a\ne\n")
	require.NoError(t, err)
	assert.Equal(t, "a\nd\n", again.Content)
	assert.Equal(t, "a\nb\n", again.OriginalContent)

	fileDiff, err := svc.Diff(ws.ID, "infra/main.tf")
	require.NoError(t, err)
	assert.Equal(t, diff.Summary{Added: 1, Removed: 1, Unchanged: 1}, fileDiff.Summary)

	fresh, err := svc.StageGenerated(context.Background(), "", ws.ID, "infra/new.tf", "x\n")
	require.NoError(t, err)
	assert.True(t, fresh.IsNew)

	_, err = svc.StageGenerated(context.Background(), "", ws.ID, "../x", "x\n")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_PublishExcludesDeselectedFiles(t *testing.T) {
	host := newMemoryHost(map[string]string{})
	svc := newTestService(t, host, "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	for _, path := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err = svc.StageGenerated(context.Background(), "", ws.ID, path, path+"\n")
		require.NoError(t, err)
	}

	b, err := svc.ToggleSelection(ws.ID, "b.txt")
	require.NoError(t, err)
	assert.False(t, b.IsSelected)

	outcome, err := svc.Publish(context.Background(), "", ws.ID, PublishInput{Message: "Add files"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "c.txt"}, host.committed)
	assert.Equal(t, []string{"a.txt", "c.txt"}, outcome.Files)
	assert.Equal(t, "https://github.com/acme/infra/pull/7", outcome.PullRequestURL)

	after, err := svc.Get(ws.ID)
	require.NoError(t, err)
	require.Len(t, after.Files, 1)
	assert.Equal(t, "b.txt", after.Files[0].Path)
	assert.False(t, after.Files[0].IsSelected)
	assert.False(t, after.Publishing)
}

func TestService_PublishKeepsFilesEditedMeanwhile(t *testing.T) {
	host := newMemoryHost(map[string]string{})
	svc := newTestService(t, host, "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)
	for _, path := range []string{"a.txt", "b.txt"} {
		_, err = svc.StageManual(context.Background(), "", ws.ID, path, path+"\n")
		require.NoError(t, err)
	}

	host.beforePR = func() {
		_, stageErr := svc.StageManual(context.Background(), "", ws.ID, "b.txt", "edited\n")
		assert.NoError(t, stageErr)
		_, stageErr = svc.StageManual(context.Background(), "", ws.ID, "c.txt", "c\n")
		assert.NoError(t, stageErr)
	}

	_, err = svc.Publish(context.Background(), "", ws.ID, PublishInput{Message: "Add files"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, host.committed)

	after, err := svc.Get(ws.ID)
	require.NoError(t, err)
	paths := lo.Map(after.Files, func(f staging.StagedFile, _ int) string { return f.Path })
	assert.Equal(t, []string{"b.txt", "c.txt"}, paths)
	assert.Equal(t, "edited\n", after.Files[0].Content)
}

func TestService_SwitchRepositoryReleasesGuard(t *testing.T) {
	svc := newTestService(t, newMemoryHost(map[string]string{}), "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	switched, err := svc.SwitchRepository(ws.ID, "acme/other", "develop")
	require.NoError(t, err)
	assert.Equal(t, "acme/other", switched.Repository)
	assert.False(t, switched.Publishing)

	_, err = svc.SwitchRepository(ws.ID, "acme/infra", "")
	require.NoError(t, err)
}

func TestService_PublishFailureKeepsStore(t *testing.T) {
	host := newMemoryHost(map[string]string{})
	host.failPR = true
	svc := newTestService(t, host, "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)
	_, err = svc.StageManual(context.Background(), "", ws.ID, "a.txt", "a\n")
	require.NoError(t, err)

	outcome, err := svc.Publish(context.Background(), "", ws.ID, PublishInput{})
	require.Error(t, err)
	assert.Equal(t, publish.StageCreatePullRequest, outcome.Stage)

	after, err := svc.Get(ws.ID)
	require.NoError(t, err)
	assert.Len(t, after.Files, 1)
}

func TestService_PublishGuards(t *testing.T) {
	svc := newTestService(t, newMemoryHost(map[string]string{}), "")

	unbound, err := svc.Create("", "")
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), "", unbound.ID, PublishInput{})
	assert.ErrorIs(t, err, ErrNoRepository)

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), "", ws.ID, PublishInput{})
	assert.ErrorIs(t, err, publish.ErrNoFiles)

	sess, err := svc.session(ws.ID)
	require.NoError(t, err)
	sess.publishing.Store(true)

	_, err = svc.Publish(context.Background(), "", ws.ID, PublishInput{})
	assert.ErrorIs(t, err, ErrPublishInProgress)
	_, err = svc.SwitchRepository(ws.ID, "acme/other", "")
	assert.ErrorIs(t, err, ErrPublishInProgress)
}

func TestService_TreeAndSelectFile(t *testing.T) {
	host := newMemoryHost(map[string]string{"README.md": "# infra\n"})
	svc := newTestService(t, host, "")

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	tree, err := svc.Tree(context.Background(), "", ws.ID, "")
	require.NoError(t, err)
	assert.Len(t, tree.Entries, 2)

	sess, err := svc.session(ws.ID)
	require.NoError(t, err)
	assert.True(t, sess.store.Observed("README.md"))
	assert.False(t, sess.store.Observed("infra"))

	file, err := svc.SelectFile(context.Background(), "", ws.ID, "README.md")
	require.NoError(t, err)
	assert.Equal(t, staging.OriginRepository, file.Origin)
	assert.True(t, file.IsSelected)
	assert.False(t, file.IsNew)

	_, err = svc.SelectFile(context.Background(), "", ws.ID, "missing.md")
	assert.ErrorIs(t, err, git.ErrNotFound)
}

func TestService_ChatStagesFiles(t *testing.T) {
	reply := "Here you go.\nFILE_START: README.md\n# infra v2\nFILE_END\nFILE_START: ci/build.yml\nsteps: []\nFILE_END"
	host := newMemoryHost(map[string]string{"README.md": "# infra\n"})
	svc := newTestService(t, host, reply)

	ws, err := svc.Create("acme/infra", "main")
	require.NoError(t, err)

	res, err := svc.Chat(context.Background(), "", ws.ID, ChatInput{Prompt: "create a new build pipeline"})
	require.NoError(t, err)

	assert.Equal(t, assistant.KindFiles, res.Response.Result.Kind)
	require.Len(t, res.Staged, 2)
	assert.False(t, res.Staged[0].IsNew)
	assert.Equal(t, "# infra\n", res.Staged[0].OriginalContent)
	assert.True(t, res.Staged[1].IsNew)
	assert.True(t, res.Staged[1].IsSelected)
}

func TestService_Expire(t *testing.T) {
	svc := newTestService(t, newMemoryHost(map[string]string{}), "")

	now := time.Unix(1700000000, 0)
	svc.now = func() time.Time { return now }

	old, err := svc.Create("", "")
	require.NoError(t, err)

	now = now.Add(90 * time.Minute)
	fresh, err := svc.Create("", "")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Expire())

	_, err = svc.Get(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(fresh.ID)
	assert.NoError(t, err)
}
