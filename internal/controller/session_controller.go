package controller

import (
	"errors"

	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/pkg/serverutils"
	"ai-chartgen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("/:id", c.Show)
	h.Post("/:id/ask", c.Ask)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, found := c.sessionService.GetSession(id)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Ask(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Ask(ctx.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return fiber.NewError(fiber.StatusBadGateway, "failed to answer follow-up question")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}
