package controller

import (
	"fmt"
	"io"
	"strings"

	"ai-chartgen-be/internal/pkg/serverutils"
	"ai-chartgen-be/internal/service"
	"ai-chartgen-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
)

const maxUploadFiles = 10

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	GetJob(ctx *fiber.Ctx) error
}

type generationController struct {
	generationService service.IGenerationService
}

func NewGenerationController(generationService service.IGenerationService) IGenerationController {
	return &generationController{
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generation/v1")
	h.Post("/", c.Generate)
	h.Get("/job/:id", c.GetJob)
}

// Generate admits one generation request: extracts text from the uploaded
// documents, creates the job and returns its identifier without waiting for
// the pipeline.
func (c *generationController) Generate(ctx *fiber.Ctx) error {
	prompt := strings.TrimSpace(ctx.FormValue("prompt"))
	if prompt == "" {
		return fiber.NewError(fiber.StatusBadRequest, "prompt is required")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart form expected")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one file is required")
	}
	if len(files) > maxUploadFiles {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("at most %d files are accepted", maxUploadFiles))
	}

	var grounding strings.Builder
	fileNames := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("cannot read file %q", fh.Filename))
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("cannot read file %q", fh.Filename))
		}

		text, err := extract.Extract(fh.Filename, data)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		grounding.WriteString(fmt.Sprintf("### File: %s\n\n%s\n\n", fh.Filename, text))
		fileNames = append(fileNames, fh.Filename)
	}

	res, err := c.generationService.Admit(ctx.UserContext(), prompt, grounding.String(), fileNames)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Generation job accepted", res))
}

func (c *generationController) GetJob(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, found := c.generationService.GetJob(id)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show job", res))
}
