// FILE: internal/controller/mcp_controller.go
package controller

import (
	"encoding/json"
	"fmt"

	"dam-butler-be/internal/dto"
	"dam-butler-be/internal/pkg/serverutils"
	"dam-butler-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMCPController interface {
	RegisterRoutes(r fiber.Router)
	GetCapabilities(ctx *fiber.Ctx) error
	CallTool(ctx *fiber.Ctx) error
}

type mcpController struct {
	assetService service.IAssetService
	version      string
	oauthEnabled bool
}

func NewMCPController(assetService service.IAssetService, version string, oauthEnabled bool) IMCPController {
	return &mcpController{
		assetService: assetService,
		version:      version,
		oauthEnabled: oauthEnabled,
	}
}

func (c *mcpController) RegisterRoutes(r fiber.Router) {
	r.Get("/mcp", c.GetCapabilities)
	r.Post("/mcp", c.CallTool)
}

func (c *mcpController) GetCapabilities(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.MCPCapabilities{
		Name:        "dam-butler-mcp",
		Version:     c.version,
		Description: "Natural language asset discovery for the Breville and Sage brand vault",
		Tools: []dto.MCPTool{
			{
				Name:        "find_brand_assets",
				Description: "Find brand assets from a natural language request, e.g. 'Oracle Jet logo for a presentation'",
				InputSchema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"request": map[string]interface{}{
							"type":        "string",
							"description": "Natural language description of the assets you need",
						},
						"use_case": map[string]interface{}{
							"type":        "string",
							"description": "Optional use case hint (presentation, web, social, retail, amazon)",
						},
						"region": map[string]interface{}{
							"type":        "string",
							"description": "Optional region hint (AU, US, CA, GB, DE, EU)",
						},
					},
					"required": []string{"request"},
				},
			},
		},
		OAuthEnabled: c.oauthEnabled,
	})
}

func (c *mcpController) CallTool(ctx *fiber.Ctx) error {
	var req dto.MCPToolCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if req.Tool != "find_brand_assets" {
		return ctx.JSON(dto.MCPToolCallResponse{
			Content: []dto.MCPContent{{Type: "text", Text: fmt.Sprintf("unknown tool %q", req.Tool)}},
			IsError: true,
		})
	}

	searchReq := &dto.FindBrandAssetsRequest{
		Request: stringArg(req.Arguments, "request"),
		Context: dto.RequestContext{
			UseCase: stringArg(req.Arguments, "use_case"),
			Region:  stringArg(req.Arguments, "region"),
		},
	}

	res, err := c.assetService.FindBrandAssets(ctx.Context(), searchReq)
	if err != nil {
		return ctx.JSON(dto.MCPToolCallResponse{
			Content: []dto.MCPContent{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
	}

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(dto.MCPToolCallResponse{
		Content: []dto.MCPContent{{Type: "text", Text: string(payload)}},
	})
}

func stringArg(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}
