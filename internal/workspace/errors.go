package workspace

import "errors"

var (
	ErrNotFound          = errors.New("workspace not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoRepository      = errors.New("no repository selected")
	ErrFileNotStaged     = errors.New("file is not staged")
	ErrPublishInProgress = errors.New("publish already in progress")
)
