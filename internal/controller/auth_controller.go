// FILE: internal/controller/auth_controller.go
package controller

import (
	"fmt"

	"dam-butler-be/internal/pkg/serverutils"
	"dam-butler-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Authenticate(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IBrandfolderService
}

func NewAuthController(service service.IBrandfolderService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/authenticate", c.Authenticate)
	r.Get("/auth/callback", c.Callback)
}

// Authenticate starts the Brandfolder OAuth flow and hands the caller the
// authorization URL to open.
func (c *authController) Authenticate(ctx *fiber.Ctx) error {
	res, err := c.service.GetAuthURL()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if !res.Success {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(res)
}

// Callback receives the OAuth redirect. The response is a small HTML page
// because the browser lands here directly, not an API client.
func (c *authController) Callback(ctx *fiber.Ctx) error {
	if errParam := ctx.Query("error"); errParam != "" {
		desc := ctx.Query("error_description")
		return c.renderErrorPage(ctx, fmt.Sprintf("%s: %s", errParam, desc))
	}

	code := ctx.Query("code")
	if code == "" {
		return c.renderErrorPage(ctx, "missing authorization code")
	}

	token, err := c.service.ExchangeCode(ctx.Context(), code)
	if err != nil {
		return c.renderErrorPage(ctx, err.Error())
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Connected</title></head>
<body style="font-family: sans-serif; max-width: 40rem; margin: 4rem auto;">
  <h1>Brandfolder connected</h1>
  <p>Authentication succeeded. You can close this window.</p>
  <p>Token type: <code>%s</code>, expires in %d seconds.</p>
</body>
</html>`, token.TokenType, token.ExpiresIn)

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(page)
}

func (c *authController) renderErrorPage(ctx *fiber.Ctx, reason string) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Authentication failed</title></head>
<body style="font-family: sans-serif; max-width: 40rem; margin: 4rem auto;">
  <h1>Authentication failed</h1>
  <p>%s</p>
  <p>Close this window and try again.</p>
</body>
</html>`, reason)

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusBadRequest).SendString(page)
}
