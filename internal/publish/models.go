package publish

import (
	"encoding/json"

	"github.com/apiarycd/assistd/internal/storage"
	"github.com/apiarycd/assistd/pkg/badgerfx"
	"github.com/google/uuid"
)

const (
	prefix = "publish:"

	prefixByID        = prefix + "id:"
	prefixByWorkspace = prefix + "workspace:"
)

type partialModel struct {
	BranchCreated  bool     `json:"branch_created"`
	BranchDeleted  bool     `json:"branch_deleted"`
	FilesCommitted []string `json:"files_committed"`
}

// outcomeModel is the stored form of an Outcome.
type outcomeModel struct {
	storage.BaseEntity

	WorkspaceID string   `json:"workspace_id"`
	Repository  string   `json:"repository"`
	BaseBranch  string   `json:"base_branch"`
	Branch      string   `json:"branch"`
	Files       []string `json:"files"`

	Status   Status       `json:"status"`
	Stage    Stage        `json:"stage"`
	Reason   string       `json:"reason,omitempty"`
	Guidance string       `json:"guidance,omitempty"`
	Partial  partialModel `json:"partial"`

	PullRequestURL    string `json:"pull_request_url,omitempty"`
	PullRequestNumber int    `json:"pull_request_number,omitempty"`
	HeadSHA           string `json:"head_sha,omitempty"`
}

func newOutcomeModel(outcome *Outcome) *outcomeModel {
	if outcome == nil {
		return nil
	}

	return &outcomeModel{
		BaseEntity:  storage.NewBaseEntity(outcome.ID, outcome.CreatedAt),
		WorkspaceID: outcome.WorkspaceID,
		Repository:  outcome.Repository,
		BaseBranch:  outcome.BaseBranch,
		Branch:      outcome.Branch,
		Files:       outcome.Files,
		Status:      outcome.Status,
		Stage:       outcome.Stage,
		Reason:      outcome.Reason,
		Guidance:    outcome.Guidance,
		Partial: partialModel{
			BranchCreated:  outcome.Partial.BranchCreated,
			BranchDeleted:  outcome.Partial.BranchDeleted,
			FilesCommitted: outcome.Partial.FilesCommitted,
		},
		PullRequestURL:    outcome.PullRequestURL,
		PullRequestNumber: outcome.PullRequestNumber,
		HeadSHA:           outcome.HeadSHA,
	}
}

func newOutcome(model *outcomeModel) *Outcome {
	if model == nil {
		return nil
	}

	return &Outcome{
		ID:          model.ID,
		WorkspaceID: model.WorkspaceID,
		Repository:  model.Repository,
		BaseBranch:  model.BaseBranch,
		Branch:      model.Branch,
		Files:       model.Files,
		Status:      model.Status,
		Stage:       model.Stage,
		Reason:      model.Reason,
		Guidance:    model.Guidance,
		Partial: Partial{
			BranchCreated:  model.Partial.BranchCreated,
			BranchDeleted:  model.Partial.BranchDeleted,
			FilesCommitted: model.Partial.FilesCommitted,
		},
		PullRequestURL:    model.PullRequestURL,
		PullRequestNumber: model.PullRequestNumber,
		HeadSHA:           model.HeadSHA,
		CreatedAt:         model.CreatedAt,
	}
}

func idKey(id uuid.UUID) string {
	return prefixByID + id.String()
}

func workspacePrefix(workspaceID string) string {
	return prefixByWorkspace + workspaceID + ":"
}

// StorageKey implements badgerfx.Entity.
func (m *outcomeModel) StorageKey() string {
	return idKey(m.ID)
}

// StorageIndexes implements badgerfx.Entity.
func (m *outcomeModel) StorageIndexes() []string {
	if m.WorkspaceID == "" {
		return nil
	}
	return []string{workspacePrefix(m.WorkspaceID) + m.ID.String()}
}

// MarshalStorage implements badgerfx.Entity.
func (m *outcomeModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m) //nolint:wrapcheck //wrapped by caller
}

// UnmarshalStorage implements badgerfx.Entity.
func (m *outcomeModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m) //nolint:wrapcheck //wrapped by caller
}

var _ badgerfx.Entity = (*outcomeModel)(nil)
