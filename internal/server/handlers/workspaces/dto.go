package workspaces

import (
	"time"

	"github.com/apiarycd/assistd/internal/diff"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/staging"
	"github.com/apiarycd/assistd/internal/workspace"
)

type CreateRequest struct {
	Repository string `json:"repository"  validate:"omitempty,reponame"`
	BaseBranch string `json:"base_branch" validate:"omitempty,max=255"`
}

type RepositoryRequest struct {
	Repository string `json:"repository"  validate:"required,reponame"`
	BaseBranch string `json:"base_branch" validate:"omitempty,max=255"`
}

// FileRequest stages content at path.
type FileRequest struct {
	Path    string `json:"path"    validate:"required,repopath"`
	Content string `json:"content"`
}

type SelectFileRequest struct {
	Path string `json:"path" validate:"required,repopath"`
}

// SelectionRequest toggles the file when Selected is omitted.
type SelectionRequest struct {
	Path     string `json:"path"     validate:"required"`
	Selected *bool  `json:"selected"`
}

type PathQuery struct {
	Path string `query:"path" validate:"required"`
}

type TreeQuery struct {
	Ref string `query:"ref" validate:"omitempty,max=255"`
}

type MessageRequest struct {
	Role    string `json:"role"    validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Prompt  string           `json:"prompt"  validate:"required,max=20000"`
	Context string           `json:"context" validate:"max=20000"`
	History []MessageRequest `json:"history" validate:"max=50,dive"`
}

type PublishRequest struct {
	BranchName string `json:"branch_name" validate:"omitempty,max=255"`
	Title      string `json:"title"       validate:"max=256"`
	Message    string `json:"message"     validate:"max=1000"`
}

type StagedFileResponse struct {
	Path            string         `json:"path"`
	Content         string         `json:"content"`
	OriginalContent string         `json:"original_content"`
	Origin          staging.Origin `json:"origin"`
	IsNew           bool           `json:"is_new"`
	IsSelected      bool           `json:"is_selected"`
	Modified        bool           `json:"modified"`
	UpstreamSHA     string         `json:"upstream_sha,omitempty"`
	LastModified    time.Time      `json:"last_modified"`
}

type WorkspaceResponse struct {
	ID           string               `json:"id"`
	Repository   string               `json:"repository,omitempty"`
	BaseBranch   string               `json:"base_branch,omitempty"`
	Files        []StagedFileResponse `json:"files"`
	Publishing   bool                 `json:"publishing"`
	CreatedAt    time.Time            `json:"created_at"`
	LastActivity time.Time            `json:"last_activity"`
}

type BranchResponse struct {
	Name      string `json:"name"`
	SHA       string `json:"sha"`
	Protected bool   `json:"protected"`
}

type TreeEntryResponse struct {
	Path string            `json:"path"`
	Type git.TreeEntryType `json:"type"`
	SHA  string            `json:"sha"`
	Size int               `json:"size,omitempty"`
}

type TreeResponse struct {
	SHA       string              `json:"sha"`
	Truncated bool                `json:"truncated"`
	Entries   []TreeEntryResponse `json:"entries"`
}

type DiffLineResponse struct {
	Type    diff.LineType `json:"type"`
	Content string        `json:"content"`
	OldLine int           `json:"old_line,omitempty"`
	NewLine int           `json:"new_line,omitempty"`
}

type DiffResponse struct {
	Path    string             `json:"path"`
	IsNew   bool               `json:"is_new"`
	Origin  staging.Origin     `json:"origin"`
	Added   int                `json:"added"`
	Removed int                `json:"removed"`
	Lines   []DiffLineResponse `json:"lines"`
}

type GeneratedFileResponse struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	IsNew    bool   `json:"is_new"`
}

type ChatResponse struct {
	Intent     string `json:"intent"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
	Model      string `json:"model"`

	Kind    string                  `json:"kind"`
	Message string                  `json:"message"`
	Files   []GeneratedFileResponse `json:"files"`
	Skipped []string                `json:"skipped,omitempty"`

	Staged []StagedFileResponse `json:"staged"`
}

func newStagedFileResponse(f staging.StagedFile) StagedFileResponse {
	return StagedFileResponse{
		Path:            f.Path,
		Content:         f.Content,
		OriginalContent: f.OriginalContent,
		Origin:          f.Origin,
		IsNew:           f.IsNew,
		IsSelected:      f.IsSelected,
		Modified:        f.Modified(),
		UpstreamSHA:     f.UpstreamSHA,
		LastModified:    f.LastModified,
	}
}

func newStagedFilesResponse(files []staging.StagedFile) []StagedFileResponse {
	res := make([]StagedFileResponse, len(files))
	for i, f := range files {
		res[i] = newStagedFileResponse(f)
	}
	return res
}

func newWorkspaceResponse(ws *workspace.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:           ws.ID,
		Repository:   ws.Repository,
		BaseBranch:   ws.BaseBranch,
		Files:        newStagedFilesResponse(ws.Files),
		Publishing:   ws.Publishing,
		CreatedAt:    ws.CreatedAt,
		LastActivity: ws.LastActivity,
	}
}

func newDiffResponse(d *workspace.FileDiff) DiffResponse {
	lines := make([]DiffLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = DiffLineResponse{Type: l.Type, Content: l.Content, OldLine: l.OldLine, NewLine: l.NewLine}
	}

	return DiffResponse{
		Path:    d.Path,
		IsNew:   d.IsNew,
		Origin:  d.Origin,
		Added:   d.Summary.Added,
		Removed: d.Summary.Removed,
		Lines:   lines,
	}
}

func newChatResponse(res *workspace.ChatResult) ChatResponse {
	c := res.Response.Classification
	r := res.Response.Result

	files := make([]GeneratedFileResponse, len(r.Files))
	for i, f := range r.Files {
		files[i] = GeneratedFileResponse{Path: f.Path, Language: f.Language, IsNew: f.IsNew}
	}

	return ChatResponse{
		Intent:     string(c.Intent),
		Confidence: c.Confidence,
		Reasoning:  c.Reasoning,
		Model:      res.Response.Model,

		Kind:    string(r.Kind),
		Message: r.Message,
		Files:   files,
		Skipped: r.Skipped,

		Staged: newStagedFilesResponse(res.Staged),
	}
}
