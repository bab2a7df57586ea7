package ai

import (
	"errors"
	"fmt"

	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	llmSvc *llm.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(llmSvc *llm.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		llmSvc: llmSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/ai")

	r.Use(h.errorsHandler)
	r.Get("/health", h.health)
	r.Post("/openai/chat/completions", h.chatCompletions)
	r.Get("/predefined-prompts", h.prompts)
	r.Post("/predefined-prompts/:id/execute", validation.DecorateWithBodyEx(h.validator, h.execute))
}

//	@Summary	LLM proxy health
//	@Tags		ai
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/ai/health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:     "ok",
		Configured: h.llmSvc.Configured(),
		Model:      h.llmSvc.Model(),
	})
}

//	@Summary		Chat completions proxy
//	@Description	Forwards an OpenAI chat completion request and returns the upstream body unchanged.
//	@Description	The configured model is used when the request has none.
//	@Tags			ai
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		401	{object}	fiberfx.ErrorResponse
//	@Failure		429	{object}	fiberfx.ErrorResponse
//	@Failure		503	{object}	fiberfx.ErrorResponse
//	@Router			/ai/openai/chat/completions [post]
func (h *Handler) chatCompletions(c *fiber.Ctx) error {
	raw, err := h.llmSvc.ChatCompletions(c.Context(), append([]byte(nil), c.Body()...))
	if err != nil {
		return fmt.Errorf("chat completion failed: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

//	@Summary	List predefined prompts
//	@Tags		ai
//	@Produce	json
//	@Success	200	{object}	PromptsResponse
//	@Router		/ai/predefined-prompts [get]
func (h *Handler) prompts(c *fiber.Ctx) error {
	prompts := h.llmSvc.Prompts()

	res := PromptsResponse{Prompts: make([]PromptResponse, len(prompts))}
	for i, p := range prompts {
		res.Prompts[i] = PromptResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Icon:        p.Icon,
		}
	}

	return c.JSON(res)
}

//	@Summary	Execute predefined prompt
//	@Tags		ai
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Prompt ID"
//	@Param		request	body		ExecuteRequest	true	"Execution input"
//	@Success	200		{object}	ExecuteResponse
//	@Failure	404		{object}	fiberfx.ErrorResponse
//	@Failure	503		{object}	fiberfx.ErrorResponse
//	@Router		/ai/predefined-prompts/{id}/execute [post]
func (h *Handler) execute(c *fiber.Ctx, req *ExecuteRequest) error {
	exec, err := h.llmSvc.ExecutePrompt(c.Context(), c.Params("id"), llm.ExecuteRequest{
		UserInput:  req.UserInput,
		Repository: req.Repository,
		Branch:     req.Branch,
		Context:    req.Context,
	})
	if err != nil {
		return fmt.Errorf("failed to execute prompt: %w", err)
	}

	return c.JSON(ExecuteResponse{
		PromptID: exec.PromptID,
		Response: exec.Response,
		Metadata: ExecutionMetadata{
			Timestamp:  exec.Metadata.Timestamp,
			Repository: exec.Metadata.Repository,
			Branch:     exec.Metadata.Branch,
			Context:    exec.Metadata.Context,
		},
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, llm.ErrPromptNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, llm.ErrInvalidAPIKey):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid OpenAI API key. Please check your configuration.")
	case errors.Is(err, llm.ErrRateLimited):
		return fiber.NewError(fiber.StatusTooManyRequests, "OpenAI API rate limit exceeded. Please try again later.")
	case errors.Is(err, llm.ErrBadRequest):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrEmptyResponse):
		h.logger.Error("OpenAI request failed", zap.Error(err))
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
