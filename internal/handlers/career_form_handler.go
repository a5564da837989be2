package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-mentor/internal/models"
	"alfredoptarigan/career-mentor/internal/pkg/logger"
	"alfredoptarigan/career-mentor/internal/repositories"
	"alfredoptarigan/career-mentor/internal/services"
)

type CareerFormHandler struct {
	formRepo    repositories.CareerFormRepository
	roadmapRepo repositories.RoadmapRepository
	generator   services.RoadmapGenerator
	log         *logger.Logger
}

func NewCareerFormHandler(
	formRepo repositories.CareerFormRepository,
	roadmapRepo repositories.RoadmapRepository,
	generator services.RoadmapGenerator,
	log *logger.Logger,
) *CareerFormHandler {
	return &CareerFormHandler{
		formRepo:    formRepo,
		roadmapRepo: roadmapRepo,
		generator:   generator,
		log:         log,
	}
}

// HandleSubmit handles POST /career-form. The request blocks until the
// roadmap is generated (or the fallback is chosen) and stored.
func (h *CareerFormHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.CareerFormRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	ctx := c.UserContext()
	form := models.NewCareerForm(req)

	if err := h.formRepo.Create(ctx, form); err != nil {
		h.log.Error("career form submission failed", "stage", "store_form", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to process career form: %v", err),
		})
	}

	payload := h.generator.Generate(ctx, form)

	roadmap := models.NewRoadmap(form.ID, payload)
	if err := h.roadmapRepo.Create(ctx, roadmap); err != nil {
		h.log.Error("career form submission failed", "stage", "store_roadmap", "form_id", form.ID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to process career form: %v", err),
		})
	}

	return c.JSON(models.CareerFormResponse{
		Success:   true,
		FormID:    form.ID.String(),
		RoadmapID: roadmap.ID.String(),
		Roadmap:   payload,
	})
}
