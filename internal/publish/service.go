package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apiarycd/assistd/internal/git"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMessage = "Update files via AI assistant"

type Service struct {
	config Config

	outcomes *Repository
	metrics  *metrics

	now    func() time.Time
	logger *zap.Logger
}

func NewService(config Config, outcomes *Repository, metrics *metrics, logger *zap.Logger) *Service {
	if config.Strategy == "" {
		config.Strategy = StrategyIncremental
	}

	return &Service{
		config: config,

		outcomes: outcomes,
		metrics:  metrics,

		now:    time.Now,
		logger: logger,
	}
}

// Publish creates a branch from req.BaseBranch, commits req.Files onto it in
// order and opens a pull request. Calls are strictly sequential and never
// retried. On failure the returned error is an *Error and the Outcome
// describes what was left on the remote.
func (s *Service) Publish(ctx context.Context, host GitHost, req Request) (*Outcome, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		ID:          uuid.Must(uuid.NewV7()),
		WorkspaceID: req.WorkspaceID,
		Repository:  host.Repository().String(),
		BaseBranch:  req.BaseBranch,
		Branch:      req.BranchName,
		Files:       make([]string, 0, len(req.Files)),
		CreatedAt:   s.now(),
	}
	for _, f := range req.Files {
		outcome.Files = append(outcome.Files, f.Path)
	}

	s.logger.Info("publishing",
		zap.String("repository", outcome.Repository),
		zap.String("base", req.BaseBranch),
		zap.String("branch", req.BranchName),
		zap.Int("files", len(req.Files)),
		zap.String("strategy", string(s.config.Strategy)))

	err := s.run(ctx, host, req, outcome)
	if err != nil {
		var pubErr *Error
		if errors.As(err, &pubErr) {
			outcome.Status = StatusFailed
			outcome.Stage = pubErr.Stage
			outcome.Reason = pubErr.Err.Error()
			outcome.Guidance = pubErr.Guidance
			pubErr.Partial = outcome.Partial
		}

		s.logger.Error("publish failed",
			zap.String("repository", outcome.Repository),
			zap.String("stage", string(outcome.Stage)),
			zap.Bool("branch_created", outcome.Partial.BranchCreated),
			zap.Strings("files_committed", outcome.Partial.FilesCommitted),
			zap.Error(err))
	} else {
		outcome.Status = StatusDone
		outcome.Stage = StageDone

		s.logger.Info("published",
			zap.String("repository", outcome.Repository),
			zap.String("pull_request", outcome.PullRequestURL))
	}

	s.metrics.record(outcome)
	if saveErr := s.outcomes.Create(ctx, outcome); saveErr != nil {
		s.logger.Error("failed to record publish outcome", zap.String("id", outcome.ID.String()), zap.Error(saveErr))
	}

	return outcome, err
}

// Get retrieves a recorded outcome.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Outcome, error) {
	s.logger.Debug("getting publish", zap.String("id", id.String()))

	outcome, err := s.outcomes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// ListByWorkspace returns recorded outcomes of a workspace, newest first.
func (s *Service) ListByWorkspace(ctx context.Context, workspaceID string, limit int) ([]Outcome, error) {
	s.logger.Debug("listing publishes", zap.String("workspace_id", workspaceID))

	outcomes, err := s.outcomes.ListByWorkspace(ctx, workspaceID, limit)
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (s *Service) normalize(req *Request) error {
	if len(req.Files) == 0 {
		return ErrNoFiles
	}
	if req.BaseBranch == "" {
		return fmt.Errorf("%w: base branch is required", ErrInvalidRequest)
	}

	seen := make(map[string]struct{}, len(req.Files))
	for _, f := range req.Files {
		if err := git.ValidatePath(f.Path); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		if _, ok := seen[f.Path]; ok {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidRequest, f.Path)
		}
		seen[f.Path] = struct{}{}
	}

	if req.BranchName == "" {
		req.BranchName = fmt.Sprintf("%s%d", s.config.BranchPrefix, s.now().UnixMilli())
	}
	if req.BranchName == req.BaseBranch {
		return fmt.Errorf("%w: branch %q is the base branch", ErrInvalidRequest, req.BranchName)
	}
	if req.Message == "" {
		req.Message = defaultMessage
	}
	if req.Title == "" {
		req.Title = req.Message
	}

	return nil
}

func (s *Service) run(ctx context.Context, host GitHost, req Request, outcome *Outcome) error {
	outcome.Stage = StageValidateAccess
	if err := host.CheckPushAccess(ctx); err != nil {
		return s.fail(StageValidateAccess, err)
	}

	outcome.Stage = StageCreateBranch
	tip, err := host.ResolveTip(ctx, req.BaseBranch)
	if err != nil {
		return s.fail(StageCreateBranch, fmt.Errorf("failed to resolve %s: %w", req.BaseBranch, err))
	}
	if err = host.CreateBranch(ctx, req.BranchName, tip); err != nil {
		return s.fail(StageCreateBranch, err)
	}
	outcome.Partial.BranchCreated = true

	outcome.Stage = StageCommitFiles
	if s.config.Strategy == StrategyContents {
		err = s.putFiles(ctx, host, req, outcome)
	} else {
		err = s.commitFiles(ctx, host, req, tip, outcome)
	}
	if err != nil {
		s.compensate(ctx, host, req, outcome)
		return s.fail(StageCommitFiles, err)
	}

	outcome.Stage = StageCreatePullRequest
	pr, err := host.CreatePullRequest(ctx, git.PullRequestDraft{
		Title: req.Title,
		Body:  pullRequestBody(outcome.Partial.FilesCommitted),
		Head:  req.BranchName,
		Base:  req.BaseBranch,
	})
	if err != nil {
		s.compensate(ctx, host, req, outcome)
		return s.fail(StageCreatePullRequest, err)
	}

	outcome.PullRequestURL = pr.URL
	outcome.PullRequestNumber = pr.Number

	return nil
}

// commitFiles chains one blob, tree, commit and ref update per file. Each
// commit's parent is the previous one.
func (s *Service) commitFiles(ctx context.Context, host GitHost, req Request, tip string, outcome *Outcome) error {
	head := tip
	tree, err := host.CommitTree(ctx, head)
	if err != nil {
		return fmt.Errorf("failed to read base tree: %w", err)
	}

	for _, f := range req.Files {
		blob, blobErr := host.CreateBlob(ctx, f.Content)
		if blobErr != nil {
			return fmt.Errorf("%s: %w", f.Path, blobErr)
		}

		if tree, err = host.CreateTree(ctx, tree, f.Path, blob); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}

		commit, commitErr := host.CreateCommit(ctx, commitMessage(req.Message, f), tree, head)
		if commitErr != nil {
			return fmt.Errorf("%s: %w", f.Path, commitErr)
		}

		if err = host.UpdateRef(ctx, req.BranchName, commit); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}

		head = commit
		outcome.HeadSHA = head
		outcome.Partial.FilesCommitted = append(outcome.Partial.FilesCommitted, f.Path)

		s.logger.Debug("file committed", zap.String("path", f.Path), zap.String("commit", commit))
	}

	return nil
}

// putFiles commits each file through the contents API, passing the existing
// blob SHA when the file is already on the branch.
func (s *Service) putFiles(ctx context.Context, host GitHost, req Request, outcome *Outcome) error {
	for _, f := range req.Files {
		sha, _, err := host.FileSHA(ctx, f.Path, req.BranchName)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}

		commit, err := host.PutFile(ctx, git.PutFileRequest{
			Branch:  req.BranchName,
			Path:    f.Path,
			Content: f.Content,
			Message: req.Message + " - " + f.Path,
			SHA:     sha,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}

		outcome.HeadSHA = commit
		outcome.Partial.FilesCommitted = append(outcome.Partial.FilesCommitted, f.Path)

		s.logger.Debug("file committed", zap.String("path", f.Path), zap.String("commit", commit))
	}

	return nil
}

// compensate deletes the created branch when configured to.
func (s *Service) compensate(ctx context.Context, host GitHost, req Request, outcome *Outcome) {
	if !s.config.DeleteBranchOnFailure || !outcome.Partial.BranchCreated {
		return
	}

	if err := host.DeleteBranch(ctx, req.BranchName); err != nil {
		s.logger.Error("failed to delete branch after failed publish",
			zap.String("branch", req.BranchName),
			zap.Error(err))
		return
	}

	outcome.Partial.BranchDeleted = true
}

func (s *Service) fail(stage Stage, err error) *Error {
	return &Error{
		Stage:    stage,
		Err:      err,
		Guidance: git.Guidance(err),
	}
}

func commitMessage(message string, f File) string {
	if message != "" && message != defaultMessage {
		return message + " - " + f.Path
	}
	if f.IsNew {
		return "Add " + f.Path
	}
	return "Update " + f.Path
}

func pullRequestBody(paths []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "AI-generated pull request with %d file updates:\n\n", len(paths))
	for _, p := range paths {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}
