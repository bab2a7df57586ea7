package workspace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apiarycd/assistd/internal/assistant"
	"github.com/apiarycd/assistd/internal/diff"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/staging"
)

const defaultBaseBranch = "main"

// Host is the git host surface a workspace uses.
type Host interface {
	publish.GitHost

	ListBranches(ctx context.Context) ([]git.Branch, error)
	Tree(ctx context.Context, ref string) (*git.Tree, error)
	FileContent(ctx context.Context, path, ref string) (*git.FileContent, error)
}

// Workspace is a snapshot of a session.
type Workspace struct {
	ID           string
	Repository   string
	BaseBranch   string
	Files        []staging.StagedFile
	Publishing   bool
	CreatedAt    time.Time
	LastActivity time.Time
}

type FileDiff struct {
	Path    string
	IsNew   bool
	Origin  staging.Origin
	Lines   []diff.Line
	Summary diff.Summary
}

type ChatInput struct {
	Prompt  string
	Context string
	History []llm.Message
}

type ChatResult struct {
	Response *assistant.ChatResponse
	// Staged holds the store entries produced from the response files.
	Staged []staging.StagedFile
}

type PublishInput struct {
	BranchName string
	Title      string
	Message    string
}

type session struct {
	id        string
	createdAt time.Time

	mu         sync.Mutex
	repository *git.Repository
	baseBranch string
	lastSeen   time.Time

	store      *staging.Store
	publishing atomic.Bool
}

func (s *session) binding() (*git.Repository, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repository, s.baseBranch
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

func (s *session) snapshot() *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := &Workspace{
		ID:           s.id,
		BaseBranch:   s.baseBranch,
		Files:        s.store.Files(),
		Publishing:   s.publishing.Load(),
		CreatedAt:    s.createdAt,
		LastActivity: s.lastSeen,
	}
	if s.repository != nil {
		ws.Repository = s.repository.String()
	}

	return ws
}
