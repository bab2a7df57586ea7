package workspaces

import (
	"errors"

	"github.com/apiarycd/assistd/internal/assistant"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/workspace"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, workspace.ErrNotFound), errors.Is(err, workspace.ErrFileNotStaged):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, workspace.ErrPublishInProgress):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, workspace.ErrInvalidInput),
		errors.Is(err, workspace.ErrNoRepository),
		errors.Is(err, publish.ErrInvalidRequest),
		errors.Is(err, assistant.ErrEmptyPrompt):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if status, ok := gitStatus(err); ok {
		return fiber.NewError(status, withGuidance(err))
	}
	if status, ok := llmStatus(err); ok {
		return fiber.NewError(status, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

// gitStatus maps git host failures onto response codes.
func gitStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, git.ErrUnauthorized):
		return fiber.StatusUnauthorized, true
	case errors.Is(err, git.ErrForbidden):
		return fiber.StatusForbidden, true
	case errors.Is(err, git.ErrNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, git.ErrConflict):
		return fiber.StatusConflict, true
	case errors.Is(err, git.ErrRateLimited):
		return fiber.StatusTooManyRequests, true
	case errors.Is(err, git.ErrMalformedRequest), errors.Is(err, git.ErrInvalidPath):
		return fiber.StatusBadRequest, true
	case errors.Is(err, git.ErrUpstream), errors.Is(err, git.ErrIntegrity):
		return fiber.StatusBadGateway, true
	}

	return 0, false
}

func llmStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return fiber.StatusServiceUnavailable, true
	case errors.Is(err, llm.ErrInvalidAPIKey):
		return fiber.StatusUnauthorized, true
	case errors.Is(err, llm.ErrRateLimited):
		return fiber.StatusTooManyRequests, true
	case errors.Is(err, llm.ErrBadRequest):
		return fiber.StatusBadRequest, true
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrEmptyResponse):
		return fiber.StatusBadGateway, true
	}

	return 0, false
}

func withGuidance(err error) string {
	if guidance := git.Guidance(err); guidance != "" {
		return err.Error() + ". " + guidance
	}
	return err.Error()
}
