// FILE: internal/dto/mcp_dto.go
package dto

// MCP protocol DTOs

type MCPCapabilities struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Description  string    `json:"description"`
	Tools        []MCPTool `json:"tools"`
	OAuthEnabled bool      `json:"oauth_enabled"`
}

type MCPTool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

type MCPToolCallRequest struct {
	Tool      string                 `json:"tool" validate:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

type MCPToolCallResponse struct {
	Content []MCPContent `json:"content"`
	IsError bool         `json:"isError,omitempty"`
}

type MCPContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Health DTO

type HealthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	OAuthConfigured  bool   `json:"oauth_configured"`
	OpenAIConfigured bool   `json:"openai_configured"`
	Timestamp        string `json:"timestamp"`
}
