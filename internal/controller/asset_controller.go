// FILE: internal/controller/asset_controller.go
package controller

import (
	"errors"

	"dam-butler-be/internal/dto"
	"dam-butler-be/internal/pkg/serverutils"
	"dam-butler-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAssetController interface {
	RegisterRoutes(r fiber.Router)
	FindBrandAssets(ctx *fiber.Ctx) error
}

type assetController struct {
	service service.IAssetService
}

func NewAssetController(service service.IAssetService) IAssetController {
	return &assetController{service: service}
}

func (c *assetController) RegisterRoutes(r fiber.Router) {
	r.Post("/find-brand-assets", c.FindBrandAssets)
}

func (c *assetController) FindBrandAssets(ctx *fiber.Ctx) error {
	var req dto.FindBrandAssetsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.FindBrandAssets(ctx.Context(), &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "request must be a string of 3 to 500 characters"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
