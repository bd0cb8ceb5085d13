package controller

import (
	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/pkg/serverutils"
	"ai-chartgen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type chartController struct {
	chartService service.IChartService
}

func NewChartController(chartService service.IChartService) IChartController {
	return &chartController{
		chartService: chartService,
	}
}

func (c *chartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chart/v1")
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *chartController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, found := c.chartService.GetChart(id)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "chart not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chart", res))
}

func (c *chartController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateChartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if !c.chartService.UpdateChart(id, &req) {
		return fiber.NewError(fiber.StatusNotFound, "chart not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update chart", nil))
}
