// FILE: internal/dto/asset_dto.go
package dto

import (
	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"
	"dam-butler-be/pkg/vault/suggest"
)

// Asset search DTOs

type FindBrandAssetsRequest struct {
	Request string         `json:"request" validate:"required,min=3,max=500"`
	Context RequestContext `json:"context"`
}

type RequestContext struct {
	UseCase string `json:"use_case,omitempty" validate:"omitempty,max=50"`
	Region  string `json:"region,omitempty" validate:"omitempty,max=10"`
}

type FindBrandAssetsResponse struct {
	Success      bool                 `json:"success"`
	Intent       intent.Intent        `json:"intent"`
	Results      []result.AssetResult `json:"results"`
	Suggestions  []suggest.Suggestion `json:"suggestions"`
	Intelligence Intelligence         `json:"intelligence"`
	Metadata     SearchMetadata       `json:"metadata"`
}

type Intelligence struct {
	ParsingMethod    string              `json:"parsing_method"`
	DetectedSections []string            `json:"detected_sections"`
	RegionalContext  *catalog.RegionInfo `json:"regional_context,omitempty"`
	ConfidenceScore  float64             `json:"confidence_score"`
	ModelEnhanced    bool                `json:"openai_enhanced"`
}

type SearchMetadata struct {
	Query        string `json:"query"`
	Timestamp    string `json:"timestamp"`
	ResponseTime string `json:"response_time"`
}
