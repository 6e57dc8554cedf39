// FILE: internal/controller/system_controller.go
package controller

import (
	"time"

	"dam-butler-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	RegisterRootRoutes(r fiber.Router)
	GetHealth(ctx *fiber.Ctx) error
	GetSchema(ctx *fiber.Ctx) error
	Landing(ctx *fiber.Ctx) error
}

type systemController struct {
	version          string
	oauthConfigured  bool
	openaiConfigured bool
}

func NewSystemController(version string, oauthConfigured, openaiConfigured bool) ISystemController {
	return &systemController{
		version:          version,
		oauthConfigured:  oauthConfigured,
		openaiConfigured: openaiConfigured,
	}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.GetHealth)
	r.Get("/schema", c.GetSchema)
}

// RegisterRootRoutes attaches routes that live outside the /api prefix.
func (c *systemController) RegisterRootRoutes(r fiber.Router) {
	r.Get("/", c.Landing)
}

func (c *systemController) GetHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:           "healthy",
		Version:          c.version,
		OAuthConfigured:  c.oauthConfigured,
		OpenAIConfigured: c.openaiConfigured,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}

// GetSchema serves a machine-readable description of the API so GPT-style
// actions and other integrations can discover the endpoints.
func (c *systemController) GetSchema(ctx *fiber.Ctx) error {
	return ctx.JSON(c.openAPISchema())
}

func (c *systemController) Landing(ctx *fiber.Ctx) error {
	page := `<!DOCTYPE html>
<html>
<head><title>DAM Butler</title></head>
<body style="font-family: sans-serif; max-width: 44rem; margin: 4rem auto;">
  <h1>DAM Butler</h1>
  <p>Natural language asset discovery for the Breville and Sage brand vault.</p>
  <ul>
    <li><code>POST /api/find-brand-assets</code> - find assets from a plain English request</li>
    <li><code>GET /api/mcp</code> - MCP capability discovery</li>
    <li><code>GET /api/schema</code> - OpenAPI schema</li>
    <li><code>GET /api/health</code> - health check</li>
  </ul>
</body>
</html>`

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(page)
}

func (c *systemController) openAPISchema() map[string]interface{} {
	return map[string]interface{}{
		"openapi": "3.1.0",
		"info": map[string]interface{}{
			"title":       "DAM Butler API",
			"description": "Natural language asset discovery for the Breville and Sage brand vault",
			"version":     c.version,
		},
		"paths": map[string]interface{}{
			"/api/find-brand-assets": map[string]interface{}{
				"post": map[string]interface{}{
					"operationId": "findBrandAssets",
					"summary":     "Find brand assets from a natural language request",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{
									"type":     "object",
									"required": []string{"request"},
									"properties": map[string]interface{}{
										"request": map[string]interface{}{
											"type":        "string",
											"minLength":   3,
											"maxLength":   500,
											"description": "Natural language description of the assets you need",
										},
										"context": map[string]interface{}{
											"type": "object",
											"properties": map[string]interface{}{
												"use_case": map[string]interface{}{"type": "string"},
												"region":   map[string]interface{}{"type": "string"},
											},
										},
									},
								},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Resolved intent, matching assets and suggestions",
						},
						"400": map[string]interface{}{
							"description": "Invalid request body",
						},
					},
				},
			},
			"/api/health": map[string]interface{}{
				"get": map[string]interface{}{
					"operationId": "getHealth",
					"summary":     "Service health and configuration status",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Health report"},
					},
				},
			},
			"/api/authenticate": map[string]interface{}{
				"post": map[string]interface{}{
					"operationId": "authenticate",
					"summary":     "Start the Brandfolder OAuth flow",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Authorization URL and state"},
						"503": map[string]interface{}{"description": "OAuth not configured"},
					},
				},
			},
			"/api/analytics": map[string]interface{}{
				"get": map[string]interface{}{
					"operationId": "getAnalytics",
					"summary":     "Aggregated search analytics",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Analytics snapshot"},
					},
				},
			},
		},
	}
}
