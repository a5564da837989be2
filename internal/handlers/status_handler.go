package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-mentor/internal/models"
	"alfredoptarigan/career-mentor/internal/repositories"
)

type StatusHandler struct {
	statusRepo repositories.StatusCheckRepository
}

func NewStatusHandler(statusRepo repositories.StatusCheckRepository) *StatusHandler {
	return &StatusHandler{statusRepo: statusRepo}
}

// HandleCreate handles POST /status
func (h *StatusHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.StatusCheckRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	check := models.NewStatusCheck(req.ClientName)
	if err := h.statusRepo.Create(c.UserContext(), check); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to create status check: %v", err),
		})
	}

	return c.JSON(check)
}

// HandleList handles GET /status
func (h *StatusHandler) HandleList(c *fiber.Ctx) error {
	checks, err := h.statusRepo.List(c.UserContext(), repositories.MaxStatusChecks)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to list status checks: %v", err),
		})
	}

	return c.JSON(checks)
}
