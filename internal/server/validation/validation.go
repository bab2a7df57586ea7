package validation

import (
	"fmt"

	"github.com/apiarycd/assistd/internal/git"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DecorateWithBodyEx parses the JSON body into T, validates it and passes it
// to next. Both failures are 400.
func DecorateWithBodyEx[T any](v *validator.Validate, next func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse request: %s", err.Error()))
		}

		if err := v.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return next(c, req)
	}
}

// DecorateWithQueryEx is DecorateWithBodyEx for query parameters.
func DecorateWithQueryEx[T any](v *validator.Validate, next func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse query: %s", err.Error()))
		}

		if err := v.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return next(c, req)
	}
}

// RegisterRules adds the custom tags used by request DTOs:
// "repopath" for repository-relative file paths and "reponame" for
// owner/name pairs.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("repopath", func(fl validator.FieldLevel) bool {
		return git.ValidatePath(fl.Field().String()) == nil
	}); err != nil {
		return fmt.Errorf("failed to register repopath rule: %w", err)
	}

	if err := v.RegisterValidation("reponame", func(fl validator.FieldLevel) bool {
		_, err := git.ParseRepository(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register reponame rule: %w", err)
	}

	return nil
}
