package publishes

import (
	"errors"
	"fmt"

	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLimit = 20

type Handler struct {
	publishSvc *publish.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(publishSvc *publish.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		publishSvc: publishSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/publishes")

	r.Use(h.errorsHandler)
	r.Get("/", validation.DecorateWithQueryEx(h.validator, h.list))
	r.Get("/:id", h.get)
}

//	@Summary		List publish outcomes
//	@Description	Recorded publish outcomes of a workspace, newest first
//	@Tags			publishes
//	@Produce		json
//	@Param			workspace_id	query		string	true	"Workspace ID"
//	@Param			limit			query		int		false	"Maximum number of outcomes"
//	@Success		200				{array}		OutcomeResponse
//	@Failure		400				{object}	fiberfx.ErrorResponse
//	@Router			/publishes [get]
func (h *Handler) list(c *fiber.Ctx, req *ListRequest) error {
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	outcomes, err := h.publishSvc.ListByWorkspace(c.Context(), req.WorkspaceID, limit)
	if err != nil {
		return fmt.Errorf("failed to list publishes: %w", err)
	}

	responses := make([]OutcomeResponse, len(outcomes))
	for i := range outcomes {
		responses[i] = NewOutcomeResponse(&outcomes[i])
	}

	return c.JSON(responses)
}

//	@Summary		Get publish outcome
//	@Description	A recorded publish outcome, including partial state after a failure
//	@Tags			publishes
//	@Produce		json
//	@Param			id	path		string	true	"Publish ID"
//	@Success		200	{object}	OutcomeResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/publishes/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	outcome, err := h.publishSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get publish: %w", err)
	}

	return c.JSON(NewOutcomeResponse(outcome))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, publish.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
