package git

import (
	"context"
	_ "crypto/sha1" // object hashing resolves SHA-1 through crypto.SHA1
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-git/go-git/v6/plumbing"
	format "github.com/go-git/go-git/v6/plumbing/format/config"
	"github.com/google/go-github/v72/github"
	"go.uber.org/zap"
)

const (
	blobEncoding = "base64"
	fileMode     = "100644"
)

// Client performs git host calls against a single repository with a single
// credential. It never retries.
type Client struct {
	gh   *github.Client
	repo Repository

	metrics *metrics
	logger  *zap.Logger
}

func (c *Client) Repository() Repository {
	return c.repo
}

// CheckPushAccess fails with ErrForbidden unless the credential may push.
func (c *Client) CheckPushAccess(ctx context.Context) (err error) {
	defer c.observe("check_push_access", time.Now(), &err)

	req, err := c.gh.NewRequest(http.MethodGet, fmt.Sprintf("repos/%s/%s", c.repo.Owner, c.repo.Name), nil)
	if err != nil {
		return fmt.Errorf("failed to build repository request: %w", err)
	}

	var repository struct {
		Permissions struct {
			Push bool `json:"push"`
		} `json:"permissions"`
	}
	if _, err = c.gh.Do(ctx, req, &repository); err != nil {
		return classify("check_push_access", "", err)
	}

	if !repository.Permissions.Push {
		return &APIError{
			Kind:   ErrForbidden,
			Op:     "check_push_access",
			Status: http.StatusForbidden,
			Message: fmt.Sprintf(
				"No push permission to repository %s. Token needs 'repo' or 'public_repo' scope with write access.",
				c.repo,
			),
		}
	}

	return nil
}

// ResolveTip returns the commit SHA at the tip of branch.
func (c *Client) ResolveTip(ctx context.Context, branch string) (sha string, err error) {
	defer c.observe("resolve_tip", time.Now(), &err)

	ref, _, err := c.gh.Git.GetRef(ctx, c.repo.Owner, c.repo.Name, "heads/"+branch)
	if err != nil {
		return "", classify("resolve_tip", "", err)
	}

	return ref.GetObject().GetSHA(), nil
}

// CreateBranch creates refs/heads/name pointing at fromSHA.
func (c *Client) CreateBranch(ctx context.Context, name, fromSHA string) (err error) {
	defer c.observe("create_branch", time.Now(), &err)

	c.logger.Info("creating branch",
		zap.Stringer("repository", c.repo),
		zap.String("branch", name),
		zap.String("from", fromSHA))

	_, _, err = c.gh.Git.CreateRef(ctx, c.repo.Owner, c.repo.Name, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + name),
		Object: &github.GitObject{SHA: github.Ptr(fromSHA)},
	})
	if err != nil {
		return classify("create_branch", "", err)
	}

	return nil
}

func (c *Client) DeleteBranch(ctx context.Context, name string) (err error) {
	defer c.observe("delete_branch", time.Now(), &err)

	c.logger.Info("deleting branch", zap.Stringer("repository", c.repo), zap.String("branch", name))

	if _, err = c.gh.Git.DeleteRef(ctx, c.repo.Owner, c.repo.Name, "heads/"+name); err != nil {
		return classify("delete_branch", "", err)
	}

	return nil
}

func (c *Client) ListBranches(ctx context.Context) (branches []Branch, err error) {
	defer c.observe("list_branches", time.Now(), &err)

	opts := &github.BranchListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		page, resp, listErr := c.gh.Repositories.ListBranches(ctx, c.repo.Owner, c.repo.Name, opts)
		if listErr != nil {
			return nil, classify("list_branches", "", listErr)
		}

		for _, b := range page {
			branches = append(branches, Branch{
				Name:      b.GetName(),
				SHA:       b.GetCommit().GetSHA(),
				Protected: b.GetProtected(),
			})
		}

		if resp.NextPage == 0 {
			return branches, nil
		}
		opts.Page = resp.NextPage
	}
}

// Tree lists the repository tree at ref recursively.
func (c *Client) Tree(ctx context.Context, ref string) (tree *Tree, err error) {
	defer c.observe("get_tree", time.Now(), &err)

	t, _, err := c.gh.Git.GetTree(ctx, c.repo.Owner, c.repo.Name, ref, true)
	if err != nil {
		return nil, classify("get_tree", "", err)
	}

	tree = &Tree{
		SHA:       t.GetSHA(),
		Entries:   make([]TreeEntry, 0, len(t.Entries)),
		Truncated: t.GetTruncated(),
	}
	for _, e := range t.Entries {
		tree.Entries = append(tree.Entries, TreeEntry{
			Path: e.GetPath(),
			Type: TreeEntryType(e.GetType()),
			SHA:  e.GetSHA(),
			Size: e.GetSize(),
		})
	}

	return tree, nil
}

// FileContent reads a text file at ref.
func (c *Client) FileContent(ctx context.Context, path, ref string) (file *FileContent, err error) {
	defer c.observe("get_contents", time.Now(), &err)

	if err = ValidatePath(path); err != nil {
		return nil, err
	}

	content, _, _, err := c.gh.Repositories.GetContents(ctx, c.repo.Owner, c.repo.Name, path,
		&github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return nil, classify("get_contents", "", err)
	}
	if content == nil {
		return nil, &APIError{Kind: ErrMalformedRequest, Op: "get_contents", Message: path + " is a directory"}
	}

	text, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &FileContent{Path: path, SHA: content.GetSHA(), Content: text}, nil
}

// FileSHA returns the blob SHA of path at ref and whether it exists.
func (c *Client) FileSHA(ctx context.Context, path, ref string) (string, bool, error) {
	file, err := c.FileContent(ctx, path, ref)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return file.SHA, true, nil
}

// PutFile creates or replaces a file with one commit through the contents API.
func (c *Client) PutFile(ctx context.Context, req PutFileRequest) (sha string, err error) {
	defer c.observe("put_file", time.Now(), &err)

	if err = ValidatePath(req.Path); err != nil {
		return "", err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(req.Message),
		Content: []byte(req.Content),
		Branch:  github.Ptr(req.Branch),
	}
	if req.SHA != "" {
		opts.SHA = github.Ptr(req.SHA)
	}

	res, _, err := c.gh.Repositories.CreateFile(ctx, c.repo.Owner, c.repo.Name, req.Path, opts)
	if err != nil {
		return "", classify("put_file", req.Path, err)
	}

	return res.Commit.GetSHA(), nil
}

// CommitTree returns the tree SHA of a commit.
func (c *Client) CommitTree(ctx context.Context, commitSHA string) (sha string, err error) {
	defer c.observe("get_commit", time.Now(), &err)

	commit, _, err := c.gh.Git.GetCommit(ctx, c.repo.Owner, c.repo.Name, commitSHA)
	if err != nil {
		return "", classify("get_commit", "", err)
	}

	return commit.GetTree().GetSHA(), nil
}

// CreateBlob uploads content base64-encoded and checks the returned SHA
// against the locally computed object hash.
func (c *Client) CreateBlob(ctx context.Context, content string) (sha string, err error) {
	defer c.observe("create_blob", time.Now(), &err)

	blob, _, err := c.gh.Git.CreateBlob(ctx, c.repo.Owner, c.repo.Name, &github.Blob{
		Content:  github.Ptr(base64.StdEncoding.EncodeToString([]byte(content))),
		Encoding: github.Ptr(blobEncoding),
	})
	if err != nil {
		return "", classify("create_blob", "", err)
	}

	if expected := BlobSHA(content); blob.GetSHA() != expected {
		return "", &APIError{
			Kind:    ErrIntegrity,
			Op:      "create_blob",
			Message: fmt.Sprintf("expected %s, got %s", expected, blob.GetSHA()),
		}
	}

	return blob.GetSHA(), nil
}

// CreateTree adds or replaces a single file entry on top of baseTree.
func (c *Client) CreateTree(ctx context.Context, baseTree, path, blobSHA string) (sha string, err error) {
	defer c.observe("create_tree", time.Now(), &err)

	if err = ValidatePath(path); err != nil {
		return "", err
	}

	tree, _, err := c.gh.Git.CreateTree(ctx, c.repo.Owner, c.repo.Name, baseTree, []*github.TreeEntry{{
		Path: github.Ptr(path),
		Mode: github.Ptr(fileMode),
		Type: github.Ptr(string(TreeEntryBlob)),
		SHA:  github.Ptr(blobSHA),
	}})
	if err != nil {
		return "", classify("create_tree", path, err)
	}

	return tree.GetSHA(), nil
}

func (c *Client) CreateCommit(ctx context.Context, message, tree, parent string) (sha string, err error) {
	defer c.observe("create_commit", time.Now(), &err)

	commit, _, err := c.gh.Git.CreateCommit(ctx, c.repo.Owner, c.repo.Name, &github.Commit{
		Message: github.Ptr(message),
		Tree:    &github.Tree{SHA: github.Ptr(tree)},
		Parents: []*github.Commit{{SHA: github.Ptr(parent)}},
	}, nil)
	if err != nil {
		return "", classify("create_commit", "", err)
	}

	return commit.GetSHA(), nil
}

// UpdateRef moves a branch to sha without forcing.
func (c *Client) UpdateRef(ctx context.Context, branch, sha string) (err error) {
	defer c.observe("update_ref", time.Now(), &err)

	_, _, err = c.gh.Git.UpdateRef(ctx, c.repo.Owner, c.repo.Name, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	}, false)
	if err != nil {
		return classify("update_ref", "", err)
	}

	return nil
}

func (c *Client) CreatePullRequest(ctx context.Context, draft PullRequestDraft) (pr *PullRequest, err error) {
	defer c.observe("create_pull_request", time.Now(), &err)

	c.logger.Info("creating pull request",
		zap.Stringer("repository", c.repo),
		zap.String("head", draft.Head),
		zap.String("base", draft.Base))

	created, _, err := c.gh.PullRequests.Create(ctx, c.repo.Owner, c.repo.Name, &github.NewPullRequest{
		Title: github.Ptr(draft.Title),
		Head:  github.Ptr(draft.Head),
		Base:  github.Ptr(draft.Base),
		Body:  github.Ptr(draft.Body),
		Draft: github.Ptr(draft.Draft),
	})
	if err != nil {
		return nil, classify("create_pull_request", "", err)
	}

	return &PullRequest{URL: created.GetHTMLURL(), Number: created.GetNumber()}, nil
}

func (c *Client) observe(op string, started time.Time, err *error) {
	c.metrics.observe(op, started, *err)
	if *err != nil {
		c.logger.Debug("git host call failed", zap.String("op", op), zap.Error(*err))
	}
}

// BlobSHA returns the SHA-1 git object id of content stored as a blob.
func BlobSHA(content string) string {
	h := plumbing.NewHasher(format.SHA1, plumbing.BlobObject, int64(len(content)))
	_, _ = h.Write([]byte(content))
	return h.Sum().String()
}
