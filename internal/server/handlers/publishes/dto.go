package publishes

import (
	"time"

	"github.com/apiarycd/assistd/internal/publish"
	"github.com/google/uuid"
)

type ListRequest struct {
	WorkspaceID string `query:"workspace_id" validate:"required"`
	Limit       int    `query:"limit"        validate:"omitempty,min=1,max=100"`
}

type PartialResponse struct {
	BranchCreated  bool     `json:"branch_created"`
	BranchDeleted  bool     `json:"branch_deleted"`
	FilesCommitted []string `json:"files_committed"`
}

// OutcomeResponse describes a finished publish, successful or not.
type OutcomeResponse struct {
	ID          uuid.UUID      `json:"id"`
	WorkspaceID string         `json:"workspace_id"`
	Repository  string         `json:"repository"`
	BaseBranch  string         `json:"base_branch"`
	Branch      string         `json:"branch"`
	Files       []string       `json:"files"`
	Status      publish.Status `json:"status"`
	Stage       publish.Stage  `json:"stage"`

	Reason   string          `json:"reason,omitempty"`
	Guidance string          `json:"guidance,omitempty"`
	Partial  PartialResponse `json:"partial"`

	PullRequestURL    string `json:"pull_request_url,omitempty"`
	PullRequestNumber int    `json:"pull_request_number,omitempty"`
	HeadSHA           string `json:"head_sha,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewOutcomeResponse(o *publish.Outcome) OutcomeResponse {
	committed := o.Partial.FilesCommitted
	if committed == nil {
		committed = []string{}
	}

	return OutcomeResponse{
		ID:          o.ID,
		WorkspaceID: o.WorkspaceID,
		Repository:  o.Repository,
		BaseBranch:  o.BaseBranch,
		Branch:      o.Branch,
		Files:       o.Files,
		Status:      o.Status,
		Stage:       o.Stage,

		Reason:   o.Reason,
		Guidance: o.Guidance,
		Partial: PartialResponse{
			BranchCreated:  o.Partial.BranchCreated,
			BranchDeleted:  o.Partial.BranchDeleted,
			FilesCommitted: committed,
		},

		PullRequestURL:    o.PullRequestURL,
		PullRequestNumber: o.PullRequestNumber,
		HeadSHA:           o.HeadSHA,

		CreatedAt: o.CreatedAt,
	}
}
