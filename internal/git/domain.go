package git

import (
	"fmt"
	"path"
	"strings"
)

// Repository identifies a repository on the git host as owner/name.
type Repository struct {
	Owner string
	Name  string
}

func ParseRepository(fullName string) (Repository, error) {
	owner, name, ok := strings.Cut(strings.Trim(fullName, "/"), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("%w: repository must be owner/name, got %q", ErrMalformedRequest, fullName)
	}

	return Repository{Owner: owner, Name: name}, nil
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ValidatePath checks that p is a relative, slash-separated path without
// parent segments.
func ValidatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	case strings.HasPrefix(p, "/"):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	case strings.Contains(p, "\\"):
		return fmt.Errorf("%w: %q contains a backslash", ErrInvalidPath, p)
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q has an empty or relative segment", ErrInvalidPath, p)
		}
	}

	if path.Clean(p) != p {
		return fmt.Errorf("%w: %q is not clean", ErrInvalidPath, p)
	}

	return nil
}

// IsWorkflowPath reports whether writing p requires the workflow scope.
func IsWorkflowPath(p string) bool {
	return strings.HasPrefix(p, ".github/workflows/")
}

type Branch struct {
	Name      string
	SHA       string
	Protected bool
}

type TreeEntryType string

const (
	TreeEntryBlob   TreeEntryType = "blob"
	TreeEntryTree   TreeEntryType = "tree"
	TreeEntryCommit TreeEntryType = "commit"
)

type TreeEntry struct {
	Path string
	Type TreeEntryType
	SHA  string
	Size int
}

type Tree struct {
	SHA       string
	Entries   []TreeEntry
	Truncated bool
}

type FileContent struct {
	Path    string
	SHA     string
	Content string
}

type PutFileRequest struct {
	Branch  string
	Path    string
	Content string
	Message string
	// SHA of the blob being replaced; empty when creating.
	SHA string
}

type PullRequestDraft struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

type PullRequest struct {
	URL    string
	Number int
}
