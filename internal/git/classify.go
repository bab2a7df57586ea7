package git

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v72/github"
)

// classify converts a go-github error into an *APIError. path is the
// repository path the call was writing, if any.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		respErr  *github.ErrorResponse
	)

	switch {
	case errors.As(err, &rateErr):
		return &APIError{Kind: ErrRateLimited, Op: op, Status: statusOf(rateErr.Response), Message: rateErr.Message}
	case errors.As(err, &abuseErr):
		return &APIError{Kind: ErrRateLimited, Op: op, Status: statusOf(abuseErr.Response), Message: abuseErr.Message}
	case errors.As(err, &respErr):
		status := statusOf(respErr.Response)
		return &APIError{Kind: kindOf(status, respErr.Message, path), Op: op, Status: status, Message: respErr.Message}
	}

	return &APIError{Kind: ErrUpstream, Op: op, Message: err.Error()}
}

func kindOf(status int, message, path string) error {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "workflow") &&
		(status == http.StatusForbidden && IsWorkflowPath(path) || strings.Contains(lower, "scope")) {
		return ErrWorkflowScope
	}

	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden && strings.Contains(message, "OAuth App access restrictions"):
		return ErrOAuthRestricted
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusUnprocessableEntity && strings.Contains(lower, "already exists"):
		return ErrConflict
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= http.StatusInternalServerError:
		return ErrUpstream
	}

	return ErrMalformedRequest
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
