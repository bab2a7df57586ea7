package publishes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apiarycd/assistd/internal/publish"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) (*fiber.App, *publish.Repository) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := zaptest.NewLogger(t)
	repo := publish.NewRepository(db)
	svc := publish.NewService(publish.Config{}, repo, nil, logger)

	app := fiber.New()
	NewHandler(svc, validator.New(), logger).Register(app)

	return app, repo
}

func seedOutcome(t *testing.T, repo *publish.Repository, workspaceID string, status publish.Status) *publish.Outcome {
	t.Helper()

	outcome := &publish.Outcome{
		ID:          uuid.Must(uuid.NewV7()),
		WorkspaceID: workspaceID,
		Repository:  "octo/app",
		BaseBranch:  "main",
		Branch:      "assistd/change",
		Files:       []string{"README.md"},
		Status:      status,
		Stage:       publish.StageDone,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), outcome))

	return outcome
}

func doGet(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestHandler_Get(t *testing.T) {
	app, repo := newTestApp(t)
	outcome := seedOutcome(t, repo, "ws-1", publish.StatusDone)

	status, body := doGet(t, app, "/publishes/"+outcome.ID.String())
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, outcome.ID.String(), gjson.Get(body, "id").String())
	assert.Equal(t, "ws-1", gjson.Get(body, "workspace_id").String())
	assert.Equal(t, "done", gjson.Get(body, "status").String())
	assert.True(t, gjson.Get(body, "partial.files_committed").IsArray())

	status, _ = doGet(t, app, "/publishes/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doGet(t, app, "/publishes/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_List(t *testing.T) {
	app, repo := newTestApp(t)
	first := seedOutcome(t, repo, "ws-1", publish.StatusFailed)
	second := seedOutcome(t, repo, "ws-1", publish.StatusDone)
	third := seedOutcome(t, repo, "ws-1", publish.StatusDone)
	seedOutcome(t, repo, "ws-2", publish.StatusDone)

	status, body := doGet(t, app, "/publishes?workspace_id=ws-1")
	require.Equal(t, http.StatusOK, status, body)
	ids := gjson.Get(body, "#.id").Array()
	require.Len(t, ids, 3)
	assert.Equal(t, third.ID.String(), ids[0].String())
	assert.Equal(t, second.ID.String(), ids[1].String())
	assert.Equal(t, first.ID.String(), ids[2].String())

	status, body = doGet(t, app, "/publishes?workspace_id=ws-1&limit=2")
	require.Equal(t, http.StatusOK, status, body)
	ids = gjson.Get(body, "#.id").Array()
	require.Len(t, ids, 2)
	assert.Equal(t, third.ID.String(), ids[0].String())

	status, body = doGet(t, app, "/publishes?workspace_id=ws-3")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestHandler_ListValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doGet(t, app, "/publishes")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doGet(t, app, "/publishes?workspace_id=ws-1&limit=500")
	assert.Equal(t, http.StatusBadRequest, status)
}
