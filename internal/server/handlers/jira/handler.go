package jira

import (
	"errors"
	"fmt"

	"github.com/apiarycd/assistd/internal/jira"
	"github.com/apiarycd/assistd/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	jiraSvc *jira.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(jiraSvc *jira.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		jiraSvc: jiraSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/jira")

	r.Use(h.errorsHandler)
	r.Get("/health", h.health)
	r.Get("/projects", h.projects)
	r.Get("/projects/:key/issue-types", h.issueTypes)
	r.Get("/issues", validation.DecorateWithQueryEx(h.validator, h.issues))
	r.Post("/issues", validation.DecorateWithBodyEx(h.validator, h.createIssue))
	r.Get("/issues/:key", h.issue)
	r.Put("/issues/:key", validation.DecorateWithBodyEx(h.validator, h.updateIssue))
	r.Get("/issues/:key/transitions", h.transitions)
	r.Post("/issues/:key/comments", validation.DecorateWithBodyEx(h.validator, h.addComment))
}

//	@Summary	Jira proxy health
//	@Tags		jira
//	@Produce	json
//	@Success	200	{object}	object
//	@Router		/jira/health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "configured": h.jiraSvc.Configured()})
}

//	@Summary	List projects
//	@Tags		jira
//	@Produce	json
//	@Success	200	{array}		ProjectResponse
//	@Failure	503	{object}	fiberfx.ErrorResponse
//	@Router		/jira/projects [get]
func (h *Handler) projects(c *fiber.Ctx) error {
	projects, err := h.jiraSvc.Projects(c.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = ProjectResponse{ID: p.ID, Key: p.Key, Name: p.Name, ProjectTypeKey: p.ProjectTypeKey}
	}

	return c.JSON(res)
}

//	@Summary	List issue types of a project
//	@Tags		jira
//	@Produce	json
//	@Param		key	path		string	true	"Project key"
//	@Success	200	{array}		IssueTypeResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/jira/projects/{key}/issue-types [get]
func (h *Handler) issueTypes(c *fiber.Ctx) error {
	types, err := h.jiraSvc.IssueTypes(c.Context(), c.Params("key"))
	if err != nil {
		return fmt.Errorf("failed to fetch issue types: %w", err)
	}

	res := make([]IssueTypeResponse, len(types))
	for i, t := range types {
		res[i] = IssueTypeResponse{ID: t.ID, Name: t.Name, IconURL: t.IconURL, Subtask: t.Subtask}
	}

	return c.JSON(res)
}

//	@Summary		Search issues
//	@Description	Filters are combined with AND, newest updates first
//	@Tags			jira
//	@Produce		json
//	@Param			projectKey	query		string	false	"Project key"
//	@Param			status		query		string	false	"Status name"
//	@Param			assignee	query		string	false	"Assignee"
//	@Success		200			{array}		IssueResponse
//	@Router			/jira/issues [get]
func (h *Handler) issues(c *fiber.Ctx, req *IssuesQuery) error {
	issues, err := h.jiraSvc.Issues(c.Context(), jira.IssueFilter{
		ProjectKey: req.ProjectKey,
		Status:     req.Status,
		Assignee:   req.Assignee,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch issues: %w", err)
	}

	res := make([]IssueResponse, len(issues))
	for i := range issues {
		res[i] = newIssueResponse(&issues[i])
	}

	return c.JSON(res)
}

//	@Summary	Get issue
//	@Tags		jira
//	@Produce	json
//	@Param		key	path		string	true	"Issue key"
//	@Success	200	{object}	IssueResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/jira/issues/{key} [get]
func (h *Handler) issue(c *fiber.Ctx) error {
	issue, err := h.jiraSvc.Issue(c.Context(), c.Params("key"))
	if err != nil {
		return fmt.Errorf("failed to fetch issue: %w", err)
	}

	return c.JSON(newIssueResponse(issue))
}

//	@Summary	Create issue
//	@Tags		jira
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateIssueRequest	true	"Issue"
//	@Success	201		{object}	IssueResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/jira/issues [post]
func (h *Handler) createIssue(c *fiber.Ctx, req *CreateIssueRequest) error {
	issue, err := h.jiraSvc.CreateIssue(c.Context(), jira.IssueDraft{
		ProjectKey:  req.ProjectKey,
		Summary:     req.Summary,
		Description: req.Description,
		IssueType:   req.IssueType,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
	})
	if err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newIssueResponse(issue))
}

//	@Summary		Update issue
//	@Description	Only the given fields change. A status change runs the matching transition.
//	@Tags			jira
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string				true	"Issue key"
//	@Param			request	body		UpdateIssueRequest	true	"Changes"
//	@Success		200		{object}	IssueResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/jira/issues/{key} [put]
func (h *Handler) updateIssue(c *fiber.Ctx, req *UpdateIssueRequest) error {
	issue, err := h.jiraSvc.UpdateIssue(c.Context(), c.Params("key"), jira.IssueUpdate{
		Summary:     req.Summary,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
	})
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}

	return c.JSON(newIssueResponse(issue))
}

//	@Summary	List transitions
//	@Tags		jira
//	@Produce	json
//	@Param		key	path		string	true	"Issue key"
//	@Success	200	{array}		TransitionResponse
//	@Router		/jira/issues/{key}/transitions [get]
func (h *Handler) transitions(c *fiber.Ctx) error {
	transitions, err := h.jiraSvc.Transitions(c.Context(), c.Params("key"))
	if err != nil {
		return fmt.Errorf("failed to fetch transitions: %w", err)
	}

	res := make([]TransitionResponse, len(transitions))
	for i, t := range transitions {
		res[i] = TransitionResponse{ID: t.ID, Name: t.Name, To: t.To}
	}

	return c.JSON(res)
}

//	@Summary	Add comment
//	@Tags		jira
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string			true	"Issue key"
//	@Param		request	body		CommentRequest	true	"Comment"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/jira/issues/{key}/comments [post]
func (h *Handler) addComment(c *fiber.Ctx, req *CommentRequest) error {
	if err := h.jiraSvc.AddComment(c.Context(), c.Params("key"), req.Comment); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: "Comment added successfully"})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, jira.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, jira.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, jira.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, jira.ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, jira.ErrUpstream):
		h.logger.Error("Jira request failed", zap.Error(err))
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
