package git

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized     = errors.New("git host rejected credentials")
	ErrForbidden        = errors.New("access to repository forbidden")
	ErrOAuthRestricted  = fmt.Errorf("%w: organization restricts OAuth app access", ErrForbidden)
	ErrWorkflowScope    = fmt.Errorf("%w: token lacks workflow scope", ErrForbidden)
	ErrNotFound         = errors.New("not found on git host")
	ErrConflict         = errors.New("conflicting state on git host")
	ErrRateLimited      = errors.New("git host rate limit exceeded")
	ErrUpstream         = errors.New("git host server error")
	ErrMalformedRequest = errors.New("git host rejected request")
	ErrIntegrity        = errors.New("object hash mismatch")
	ErrInvalidPath      = errors.New("invalid repository path")
)

// APIError carries the upstream status and message of a failed git host call.
type APIError struct {
	Kind    error
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// Guidance returns remediation text for errors a user can fix by re-authenticating.
func Guidance(err error) string {
	switch {
	case errors.Is(err, ErrOAuthRestricted):
		return "Organization has OAuth App access restrictions enabled. " +
			"Please sign in with GitHub OAuth for full access.\n" +
			"1. Click \"Sign in with GitHub\" to authorize with OAuth\n" +
			"2. Or ask your organization admin to enable OAuth App access"
	case errors.Is(err, ErrWorkflowScope):
		return "GitHub token needs 'workflow' scope to create or update workflow files. " +
			"Please sign out and sign in again, granting both 'repo' and 'workflow' permissions."
	case errors.Is(err, ErrUnauthorized):
		return "The GitHub token is invalid or expired. Please sign in again."
	case errors.Is(err, ErrForbidden):
		return "Token needs 'repo' or 'public_repo' scope with write access."
	}
	return ""
}
