package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apiarycd/assistd/internal/assistant"
	"github.com/apiarycd/assistd/internal/diff"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/staging"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Service struct {
	config   Config
	renderer diff.Renderer

	connect   func(token string, repo git.Repository) Host
	publisher *publish.Service
	assistant *assistant.Service

	mu       sync.Mutex
	sessions map[string]*session

	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	config Config,
	gitSvc *git.Service,
	publisher *publish.Service,
	assistantSvc *assistant.Service,
	logger *zap.Logger,
) (*Service, error) {
	renderer, err := diff.New(config.DiffAlgorithm)
	if err != nil {
		return nil, err
	}

	return &Service{
		config:   config,
		renderer: renderer,

		connect: func(token string, repo git.Repository) Host {
			return gitSvc.Client(token, repo)
		},
		publisher: publisher,
		assistant: assistantSvc,

		sessions: map[string]*session{},

		now:    time.Now,
		logger: logger,
	}, nil
}

// Create opens a session. repository may be empty and bound later.
func (s *Service) Create(repository, baseBranch string) (*Workspace, error) {
	sess := &session{
		id:        uuid.Must(uuid.NewV7()).String(),
		createdAt: s.now(),
		lastSeen:  s.now(),
		store:     staging.NewStore(staging.WithClock(s.now)),
	}

	if repository != "" {
		repo, err := git.ParseRepository(repository)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		sess.repository = &repo
		sess.baseBranch = lo.CoalesceOrEmpty(baseBranch, defaultBaseBranch)
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("workspace created", zap.String("id", sess.id), zap.String("repository", repository))

	return sess.snapshot(), nil
}

func (s *Service) Get(id string) (*Workspace, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	return sess.snapshot(), nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)

	s.logger.Info("workspace deleted", zap.String("id", id))

	return nil
}

// SwitchRepository binds the session to another repository and empties the
// store. It holds the publish guard while switching.
func (s *Service) SwitchRepository(id, repository, baseBranch string) (*Workspace, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	repo, err := git.ParseRepository(repository)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !sess.publishing.CompareAndSwap(false, true) {
		return nil, ErrPublishInProgress
	}

	base := lo.CoalesceOrEmpty(baseBranch, defaultBaseBranch)

	sess.mu.Lock()
	sess.repository = &repo
	sess.baseBranch = base
	sess.mu.Unlock()
	sess.store.Clear()
	sess.publishing.Store(false)

	s.logger.Info("workspace repository switched",
		zap.String("id", id),
		zap.String("repository", repo.String()),
		zap.String("base", base))

	return sess.snapshot(), nil
}

func (s *Service) Branches(ctx context.Context, token, id string) ([]git.Branch, error) {
	sess, host, _, err := s.bound(token, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listing branches", zap.String("id", sess.id))

	return host.ListBranches(ctx)
}

// Tree lists the repository tree at ref, or at the base branch when ref is
// empty, and records it as the upstream state.
func (s *Service) Tree(ctx context.Context, token, id, ref string) (*git.Tree, error) {
	sess, host, base, err := s.bound(token, id)
	if err != nil {
		return nil, err
	}

	tree, err := host.Tree(ctx, lo.CoalesceOrEmpty(ref, base))
	if err != nil {
		s.logger.Error("failed to load tree", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if ref == "" || ref == base {
		entries := lo.FilterMap(tree.Entries, func(e git.TreeEntry, _ int) (staging.TreeEntry, bool) {
			return staging.TreeEntry{Path: e.Path, SHA: e.SHA}, e.Type == git.TreeEntryBlob
		})
		sess.store.ObserveTree(entries)
	}

	return tree, nil
}

// SelectFile stages an existing repository file unchanged.
func (s *Service) SelectFile(ctx context.Context, token, id, path string) (staging.StagedFile, error) {
	if err := git.ValidatePath(path); err != nil {
		return staging.StagedFile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	sess, host, base, err := s.bound(token, id)
	if err != nil {
		return staging.StagedFile{}, err
	}

	file, err := host.FileContent(ctx, path, base)
	if err != nil {
		return staging.StagedFile{}, err
	}

	s.logger.Info("repository file selected", zap.String("id", id), zap.String("path", path))

	return sess.store.SelectRepositoryFile(path, file.Content, file.SHA), nil
}

func (s *Service) StageGenerated(ctx context.Context, token, id, path, content string) (staging.StagedFile, error) {
	sess, err := s.session(id)
	if err != nil {
		return staging.StagedFile{}, err
	}

	return s.stage(ctx, token, sess, path, content, sess.store.MergeGenerated)
}

func (s *Service) StageManual(ctx context.Context, token, id, path, content string) (staging.StagedFile, error) {
	sess, err := s.session(id)
	if err != nil {
		return staging.StagedFile{}, err
	}

	return s.stage(ctx, token, sess, path, content, sess.store.MergeManualEdit)
}

// stage merges content and, for a path not yet staged, looks up the base
// branch version to decide IsNew and record the original.
func (s *Service) stage(
	ctx context.Context,
	token string,
	sess *session,
	path, content string,
	merge func(path, content string, isNew bool) staging.StagedFile,
) (staging.StagedFile, error) {
	if err := git.ValidatePath(path); err != nil {
		return staging.StagedFile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if existing, ok := sess.store.Get(path); ok {
		return merge(path, content, existing.IsNew), nil
	}

	repo, base := sess.binding()
	if repo == nil {
		return merge(path, content, true), nil
	}

	original, err := s.connect(token, *repo).FileContent(ctx, path, base)
	if errors.Is(err, git.ErrNotFound) {
		return merge(path, content, true), nil
	}
	if err != nil {
		return staging.StagedFile{}, err
	}

	merge(path, content, false)
	staged, _ := sess.store.RecordOriginal(path, original.Content, original.SHA)

	return staged, nil
}

func (s *Service) ToggleSelection(id, path string) (staging.StagedFile, error) {
	sess, err := s.session(id)
	if err != nil {
		return staging.StagedFile{}, err
	}

	file, ok := sess.store.ToggleSelection(path)
	if !ok {
		return staging.StagedFile{}, ErrFileNotStaged
	}

	return file, nil
}

func (s *Service) SetSelection(id, path string, selected bool) (staging.StagedFile, error) {
	sess, err := s.session(id)
	if err != nil {
		return staging.StagedFile{}, err
	}

	file, ok := sess.store.SetSelection(path, selected)
	if !ok {
		return staging.StagedFile{}, ErrFileNotStaged
	}

	return file, nil
}

func (s *Service) RemoveFile(id, path string) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}

	if !sess.store.Remove(path) {
		return ErrFileNotStaged
	}

	return nil
}

// Clear empties the store ("start over").
func (s *Service) Clear(id string) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}

	sess.store.Clear()
	s.logger.Info("workspace cleared", zap.String("id", id))

	return nil
}

func (s *Service) Diff(id, path string) (*FileDiff, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	file, ok := sess.store.Get(path)
	if !ok {
		return nil, ErrFileNotStaged
	}

	lines := s.renderer.Render(file.OriginalContent, file.Content, file.IsNew)

	return &FileDiff{
		Path:    file.Path,
		IsNew:   file.IsNew,
		Origin:  file.Origin,
		Lines:   lines,
		Summary: diff.Summarize(lines),
	}, nil
}

// Chat asks the assistant and stages every file it returns as generated
// content.
func (s *Service) Chat(ctx context.Context, token, id string, in ChatInput) (*ChatResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	repo, base := sess.binding()
	req := assistant.ChatRequest{
		Branch:  base,
		Prompt:  in.Prompt,
		Context: in.Context,
		History: in.History,
		AvailableFiles: lo.Uniq(append(
			sess.store.ObservedPaths(),
			lo.Map(sess.store.Files(), func(f staging.StagedFile, _ int) string { return f.Path })...,
		)),
		Files: lo.Map(sess.store.Selected(), func(f staging.StagedFile, _ int) assistant.ContextFile {
			return assistant.ContextFile{Path: f.Path, Content: f.Content}
		}),
	}
	if repo != nil {
		req.Repository = repo.String()
	}

	resp, err := s.assistant.Chat(ctx, req, sess.store.Observed)
	if err != nil {
		return nil, err
	}

	result := &ChatResult{Response: resp, Staged: make([]staging.StagedFile, 0, len(resp.Result.Files))}
	for _, f := range resp.Result.Files {
		staged, stageErr := s.stage(ctx, token, sess, f.Path, f.Content, sess.store.MergeGenerated)
		if stageErr != nil {
			s.logger.Error("failed to stage generated file",
				zap.String("id", id),
				zap.String("path", f.Path),
				zap.Error(stageErr))
			return nil, stageErr
		}
		result.Staged = append(result.Staged, staged)
	}

	return result, nil
}

// Publish sends the selected files as one pull request. Only one publish per
// session runs at a time. On success the published files are unstaged unless
// they were edited while the publish ran.
func (s *Service) Publish(ctx context.Context, token, id string, in PublishInput) (*publish.Outcome, error) {
	sess, host, base, err := s.bound(token, id)
	if err != nil {
		return nil, err
	}

	if !sess.publishing.CompareAndSwap(false, true) {
		return nil, ErrPublishInProgress
	}
	defer sess.publishing.Store(false)

	selected := sess.store.Selected()
	files := lo.Map(selected, func(f staging.StagedFile, _ int) publish.File {
		return publish.File{Path: f.Path, Content: f.Content, IsNew: f.IsNew}
	})

	outcome, err := s.publisher.Publish(ctx, host, publish.Request{
		WorkspaceID: id,
		BaseBranch:  base,
		BranchName:  strings.TrimSpace(in.BranchName),
		Title:       in.Title,
		Message:     in.Message,
		Files:       files,
	})
	if err != nil {
		return outcome, err
	}

	removed := sess.store.RemovePublished(selected)
	if len(removed) < len(selected) {
		s.logger.Info("files changed during publish kept staged",
			zap.String("id", id),
			zap.Int("kept", len(selected)-len(removed)))
	}

	return outcome, nil
}

// Expire drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (s *Service) Expire() int {
	if s.config.SessionTTL <= 0 {
		return 0
	}

	deadline := s.now().Add(-s.config.SessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, sess := range s.sessions {
		if sess.publishing.Load() || !sess.idleSince().Before(deadline) {
			continue
		}
		delete(s.sessions, id)
		expired++
	}

	if expired > 0 {
		s.logger.Info("expired idle workspaces", zap.Int("count", expired))
	}

	return expired
}

func (s *Service) session(id string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	sess.touch(s.now())

	return sess, nil
}

func (s *Service) bound(token, id string) (*session, Host, string, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, nil, "", err
	}

	repo, base := sess.binding()
	if repo == nil {
		return nil, nil, "", ErrNoRepository
	}

	return sess, s.connect(token, *repo), base, nil
}
