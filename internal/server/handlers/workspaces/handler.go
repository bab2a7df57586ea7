package workspaces

import (
	"errors"
	"fmt"

	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/server/handlers/publishes"
	"github.com/apiarycd/assistd/internal/server/validation"
	"github.com/apiarycd/assistd/internal/staging"
	"github.com/apiarycd/assistd/internal/workspace"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenHeader carries the caller's git host token. It overrides the
// configured one.
const TokenHeader = "X-GitHub-Token"

type Handler struct {
	workspaceSvc *workspace.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(workspaceSvc *workspace.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		workspaceSvc: workspaceSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/workspaces")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/:id", h.get)
	r.Delete("/:id", h.delete)
	r.Put("/:id/repository", validation.DecorateWithBodyEx(h.validator, h.putRepository))

	r.Get("/:id/branches", h.branches)
	r.Get("/:id/tree", validation.DecorateWithQueryEx(h.validator, h.tree))

	r.Post("/:id/files/generated", validation.DecorateWithBodyEx(h.validator, h.postGenerated))
	r.Put("/:id/files/manual", validation.DecorateWithBodyEx(h.validator, h.putManual))
	r.Post("/:id/files/selected", validation.DecorateWithBodyEx(h.validator, h.postSelected))
	r.Patch("/:id/files/selection", validation.DecorateWithBodyEx(h.validator, h.patchSelection))
	r.Delete("/:id/files", validation.DecorateWithQueryEx(h.validator, h.deleteFile))
	r.Post("/:id/clear", h.clear)
	r.Get("/:id/diff", validation.DecorateWithQueryEx(h.validator, h.diff))

	r.Post("/:id/chat", validation.DecorateWithBodyEx(h.validator, h.chat))
	r.Post("/:id/publish", validation.DecorateWithBodyEx(h.validator, h.publish))
}

//	@Summary		Create workspace
//	@Description	Open a staging session, optionally bound to a repository
//	@Tags			workspaces
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequest	true	"Workspace"
//	@Success		201		{object}	WorkspaceResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/workspaces [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	ws, err := h.workspaceSvc.Create(req.Repository, req.BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newWorkspaceResponse(ws))
}

//	@Summary		Get workspace
//	@Description	Session state including every staged file
//	@Tags			workspaces
//	@Produce		json
//	@Param			id	path		string	true	"Workspace ID"
//	@Success		200	{object}	WorkspaceResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	ws, err := h.workspaceSvc.Get(c.Params("id"))
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	return c.JSON(newWorkspaceResponse(ws))
}

//	@Summary	Delete workspace
//	@Tags		workspaces
//	@Param		id	path	string	true	"Workspace ID"
//	@Success	204
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	if err := h.workspaceSvc.Delete(c.Params("id")); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

//	@Summary		Switch repository
//	@Description	Bind the workspace to another repository. Staged files are dropped.
//	@Tags			workspaces
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Workspace ID"
//	@Param			request	body		RepositoryRequest	true	"Repository"
//	@Success		200		{object}	WorkspaceResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Failure		409		{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id}/repository [put]
func (h *Handler) putRepository(c *fiber.Ctx, req *RepositoryRequest) error {
	ws, err := h.workspaceSvc.SwitchRepository(c.Params("id"), req.Repository, req.BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to switch repository: %w", err)
	}

	return c.JSON(newWorkspaceResponse(ws))
}

//	@Summary	List branches
//	@Tags		workspaces
//	@Produce	json
//	@Param		id				path		string	true	"Workspace ID"
//	@Param		X-GitHub-Token	header		string	false	"Git host token"
//	@Success	200				{array}		BranchResponse
//	@Failure	401				{object}	fiberfx.ErrorResponse
//	@Failure	404				{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/branches [get]
func (h *Handler) branches(c *fiber.Ctx) error {
	branches, err := h.workspaceSvc.Branches(c.Context(), c.Get(TokenHeader), c.Params("id"))
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}

	res := make([]BranchResponse, len(branches))
	for i, b := range branches {
		res[i] = BranchResponse{Name: b.Name, SHA: b.SHA, Protected: b.Protected}
	}

	return c.JSON(res)
}

//	@Summary		Repository tree
//	@Description	Recursive tree of the base branch or of ref
//	@Tags			workspaces
//	@Produce		json
//	@Param			id				path		string	true	"Workspace ID"
//	@Param			ref				query		string	false	"Branch or commit"
//	@Param			X-GitHub-Token	header		string	false	"Git host token"
//	@Success		200				{object}	TreeResponse
//	@Failure		404				{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id}/tree [get]
func (h *Handler) tree(c *fiber.Ctx, req *TreeQuery) error {
	tree, err := h.workspaceSvc.Tree(c.Context(), c.Get(TokenHeader), c.Params("id"), req.Ref)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	entries := make([]TreeEntryResponse, len(tree.Entries))
	for i, e := range tree.Entries {
		entries[i] = TreeEntryResponse{Path: e.Path, Type: e.Type, SHA: e.SHA, Size: e.Size}
	}

	return c.JSON(TreeResponse{SHA: tree.SHA, Truncated: tree.Truncated, Entries: entries})
}

//	@Summary		Stage generated file
//	@Description	Content does not replace a manual edit of the same path
//	@Tags			workspaces
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Workspace ID"
//	@Param			request	body		FileRequest	true	"File"
//	@Success		200		{object}	StagedFileResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id}/files/generated [post]
func (h *Handler) postGenerated(c *fiber.Ctx, req *FileRequest) error {
	file, err := h.workspaceSvc.StageGenerated(c.Context(), c.Get(TokenHeader), c.Params("id"), req.Path, req.Content)
	if err != nil {
		return fmt.Errorf("failed to stage file: %w", err)
	}

	return c.JSON(newStagedFileResponse(file))
}

//	@Summary	Stage manual edit
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Workspace ID"
//	@Param		request	body		FileRequest	true	"File"
//	@Success	200		{object}	StagedFileResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/files/manual [put]
func (h *Handler) putManual(c *fiber.Ctx, req *FileRequest) error {
	file, err := h.workspaceSvc.StageManual(c.Context(), c.Get(TokenHeader), c.Params("id"), req.Path, req.Content)
	if err != nil {
		return fmt.Errorf("failed to stage file: %w", err)
	}

	return c.JSON(newStagedFileResponse(file))
}

//	@Summary	Select repository file
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Workspace ID"
//	@Param		request	body		SelectFileRequest	true	"File"
//	@Success	200		{object}	StagedFileResponse
//	@Failure	404		{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/files/selected [post]
func (h *Handler) postSelected(c *fiber.Ctx, req *SelectFileRequest) error {
	file, err := h.workspaceSvc.SelectFile(c.Context(), c.Get(TokenHeader), c.Params("id"), req.Path)
	if err != nil {
		return fmt.Errorf("failed to select file: %w", err)
	}

	return c.JSON(newStagedFileResponse(file))
}

//	@Summary	Change selection
//	@Tags		workspaces
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Workspace ID"
//	@Param		request	body		SelectionRequest	true	"Selection"
//	@Success	200		{object}	StagedFileResponse
//	@Failure	404		{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/files/selection [patch]
func (h *Handler) patchSelection(c *fiber.Ctx, req *SelectionRequest) error {
	var (
		file staging.StagedFile
		err  error
	)
	if req.Selected == nil {
		file, err = h.workspaceSvc.ToggleSelection(c.Params("id"), req.Path)
	} else {
		file, err = h.workspaceSvc.SetSelection(c.Params("id"), req.Path, *req.Selected)
	}
	if err != nil {
		return fmt.Errorf("failed to change selection: %w", err)
	}

	return c.JSON(newStagedFileResponse(file))
}

//	@Summary	Remove staged file
//	@Tags		workspaces
//	@Param		id		path	string	true	"Workspace ID"
//	@Param		path	query	string	true	"File path"
//	@Success	204
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/files [delete]
func (h *Handler) deleteFile(c *fiber.Ctx, req *PathQuery) error {
	if err := h.workspaceSvc.RemoveFile(c.Params("id"), req.Path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

//	@Summary	Start over
//	@Tags		workspaces
//	@Param		id	path	string	true	"Workspace ID"
//	@Success	204
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/workspaces/{id}/clear [post]
func (h *Handler) clear(c *fiber.Ctx) error {
	if err := h.workspaceSvc.Clear(c.Params("id")); err != nil {
		return fmt.Errorf("failed to clear workspace: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

//	@Summary		Diff staged file
//	@Description	Line diff of the staged content against the upstream original
//	@Tags			workspaces
//	@Produce		json
//	@Param			id		path		string	true	"Workspace ID"
//	@Param			path	query		string	true	"File path"
//	@Success		200		{object}	DiffResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id}/diff [get]
func (h *Handler) diff(c *fiber.Ctx, req *PathQuery) error {
	d, err := h.workspaceSvc.Diff(c.Params("id"), req.Path)
	if err != nil {
		return fmt.Errorf("failed to render diff: %w", err)
	}

	return c.JSON(newDiffResponse(d))
}

//	@Summary		Chat with the assistant
//	@Description	Files in the answer are staged as generated content
//	@Tags			workspaces
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string		true	"Workspace ID"
//	@Param			X-GitHub-Token	header		string		false	"Git host token"
//	@Param			request			body		ChatRequest	true	"Prompt"
//	@Success		200				{object}	ChatResponse
//	@Failure		400				{object}	fiberfx.ErrorResponse
//	@Failure		503				{object}	fiberfx.ErrorResponse
//	@Router			/workspaces/{id}/chat [post]
func (h *Handler) chat(c *fiber.Ctx, req *ChatRequest) error {
	history := make([]llm.Message, len(req.History))
	for i, m := range req.History {
		history[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
	}

	res, err := h.workspaceSvc.Chat(c.Context(), c.Get(TokenHeader), c.Params("id"), workspace.ChatInput{
		Prompt:  req.Prompt,
		Context: req.Context,
		History: history,
	})
	if err != nil {
		return fmt.Errorf("failed to chat: %w", err)
	}

	return c.JSON(newChatResponse(res))
}

//	@Summary		Publish selected files
//	@Description	Creates a branch, commits every selected file and opens a pull request.
//	@Description	A failed publish still returns the outcome with its partial state.
//	@Tags			workspaces
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string			true	"Workspace ID"
//	@Param			X-GitHub-Token	header		string			false	"Git host token"
//	@Param			request			body		PublishRequest	true	"Publish options"
//	@Success		201				{object}	publishes.OutcomeResponse
//	@Failure		400				{object}	fiberfx.ErrorResponse
//	@Failure		403				{object}	publishes.OutcomeResponse
//	@Failure		409				{object}	fiberfx.ErrorResponse
//	@Failure		502				{object}	publishes.OutcomeResponse
//	@Router			/workspaces/{id}/publish [post]
func (h *Handler) publish(c *fiber.Ctx, req *PublishRequest) error {
	outcome, err := h.workspaceSvc.Publish(c.Context(), c.Get(TokenHeader), c.Params("id"), workspace.PublishInput{
		BranchName: req.BranchName,
		Title:      req.Title,
		Message:    req.Message,
	})

	var pubErr *publish.Error
	if errors.As(err, &pubErr) && outcome != nil {
		status, _ := gitStatus(pubErr.Err)
		if status == 0 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(publishes.NewOutcomeResponse(outcome))
	}
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(publishes.NewOutcomeResponse(outcome))
}
