// FILE: internal/controller/analytics_controller.go
package controller

import (
	"dam-butler-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	GetAnalytics(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	r.Get("/analytics", c.GetAnalytics)
}

func (c *analyticsController) GetAnalytics(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Snapshot())
}
