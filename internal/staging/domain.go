package staging

import (
	"time"

	"github.com/apiarycd/assistd/internal/git"
)

// Origin records how a file entered the store.
type Origin string

const (
	OriginGenerated  Origin = "AI_GENERATED"
	OriginManualEdit Origin = "MANUAL_EDIT"
	OriginRepository Origin = "REPOSITORY_SELECTION"
)

// StagedFile is a candidate change to one repository path.
type StagedFile struct {
	Path    string
	Content string
	// Content at the base branch tip; empty for new files.
	OriginalContent string
	Origin          Origin
	IsNew           bool
	IsSelected      bool
	LastModified    time.Time

	// Blob SHA of the upstream version, when known.
	UpstreamSHA string
}

// Modified reports whether Content differs from the upstream version.
func (f StagedFile) Modified() bool {
	if f.IsNew {
		return true
	}
	if f.UpstreamSHA != "" {
		return git.BlobSHA(f.Content) != f.UpstreamSHA
	}
	return f.Content != f.OriginalContent
}

// TreeEntry is a path observed in the repository tree.
type TreeEntry struct {
	Path string
	SHA  string
}
