package jira

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("Jira is not configured. Please set jira.base_url, jira.email and jira.api_token")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUpstream      = errors.New("Jira API error")
)

// APIError is a non-2xx response from the Jira REST API.
type APIError struct {
	Status int
	Body   string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Jira API error: %d - %s", e.Status, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(status int, body string) *APIError {
	kind := ErrUpstream
	switch {
	case status == 401 || status == 403:
		kind = ErrUnauthorized
	case status == 404:
		kind = ErrNotFound
	case status == 400:
		kind = ErrInvalidInput
	}

	return &APIError{Status: status, Body: body, kind: kind}
}
