package llm

import "errors"

var (
	ErrNotConfigured  = errors.New("OpenAI service is not configured. Please set llm.api_key in your configuration")
	ErrInvalidAPIKey  = errors.New("invalid OpenAI API key")
	ErrRateLimited    = errors.New("OpenAI API rate limit exceeded")
	ErrUpstream       = errors.New("OpenAI API server error")
	ErrBadRequest     = errors.New("OpenAI API rejected request")
	ErrEmptyResponse  = errors.New("OpenAI API returned no choices")
	ErrPromptNotFound = errors.New("predefined prompt not found")
)
