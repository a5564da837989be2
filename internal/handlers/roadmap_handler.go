package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/career-mentor/internal/models"
	"alfredoptarigan/career-mentor/internal/pkg/logger"
	"alfredoptarigan/career-mentor/internal/repositories"
)

type RoadmapHandler struct {
	roadmapRepo repositories.RoadmapRepository
	log         *logger.Logger
}

func NewRoadmapHandler(roadmapRepo repositories.RoadmapRepository, log *logger.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapRepo: roadmapRepo,
		log:         log,
	}
}

// HandleGetRoadmap handles GET /roadmap/:roadmap_id
func (h *RoadmapHandler) HandleGetRoadmap(c *fiber.Ctx) error {
	// Identifiers are always UUIDs, so anything else was never issued.
	roadmapID, err := uuid.Parse(c.Params("roadmap_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Roadmap not found",
		})
	}

	roadmap, err := h.roadmapRepo.FindByID(c.UserContext(), roadmapID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Roadmap not found",
			})
		}
		h.log.Error("failed to fetch roadmap", "roadmap_id", roadmapID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch roadmap",
		})
	}

	return c.JSON(models.NewRoadmapResponse(roadmap))
}
