package handler

import (
	"github.com/fadilmartias/submitme/internal/response"
	"github.com/fadilmartias/submitme/internal/util"
	"github.com/gofiber/fiber/v2"
)

const serviceName = "submitme-api"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return util.SuccessResponse(c, fiber.StatusOK, response.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}
