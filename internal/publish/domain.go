package publish

import (
	"context"
	"time"

	"github.com/apiarycd/assistd/internal/git"
	"github.com/google/uuid"
)

type Stage string

const (
	StageValidateAccess    Stage = "validate_access"
	StageCreateBranch      Stage = "create_branch"
	StageCommitFiles       Stage = "commit_files"
	StageCreatePullRequest Stage = "create_pull_request"
	StageDone              Stage = "done"
)

type Status string

const (
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)

// GitHost is the subset of git host operations a publish needs.
type GitHost interface {
	Repository() git.Repository

	CheckPushAccess(ctx context.Context) error
	ResolveTip(ctx context.Context, branch string) (string, error)
	CreateBranch(ctx context.Context, name, fromSHA string) error
	DeleteBranch(ctx context.Context, name string) error

	CommitTree(ctx context.Context, commitSHA string) (string, error)
	CreateBlob(ctx context.Context, content string) (string, error)
	CreateTree(ctx context.Context, baseTree, path, blobSHA string) (string, error)
	CreateCommit(ctx context.Context, message, tree, parent string) (string, error)
	UpdateRef(ctx context.Context, branch, sha string) error

	FileSHA(ctx context.Context, path, ref string) (string, bool, error)
	PutFile(ctx context.Context, req git.PutFileRequest) (string, error)

	CreatePullRequest(ctx context.Context, draft git.PullRequestDraft) (*git.PullRequest, error)
}

type File struct {
	Path    string
	Content string
	IsNew   bool
}

type Request struct {
	WorkspaceID string
	BaseBranch  string
	// Generated from the configured prefix when empty.
	BranchName string
	// Defaults to Message.
	Title   string
	Message string
	Files   []File
}

type Partial struct {
	BranchCreated  bool
	BranchDeleted  bool
	FilesCommitted []string
}

// Outcome is the recorded result of one publish attempt.
type Outcome struct {
	ID          uuid.UUID
	WorkspaceID string
	Repository  string
	BaseBranch  string
	Branch      string
	Files       []string

	Status   Status
	Stage    Stage
	Reason   string
	Guidance string
	Partial  Partial

	PullRequestURL    string
	PullRequestNumber int
	HeadSHA           string

	CreatedAt time.Time
}
