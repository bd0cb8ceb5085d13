package serverutils

import (
	"ai-chartgen-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
)

// RequireIDParam extracts and validates a 32-char lowercase-hex path
// parameter. Malformed identifiers are rejected here and never reach the
// store.
func RequireIDParam(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if !memory.IsValidID(id) {
		return "", fiber.NewError(fiber.StatusBadRequest, "malformed identifier")
	}
	return id, nil
}
