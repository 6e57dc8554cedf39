// FILE: internal/service/asset_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"dam-butler-be/internal/dto"
	"dam-butler-be/internal/pkg/logger"
	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"
	"dam-butler-be/pkg/vault/suggest"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IAssetService interface {
	FindBrandAssets(ctx context.Context, req *dto.FindBrandAssetsRequest) (*dto.FindBrandAssetsResponse, error)
}

type assetService struct {
	resolver     *intent.Resolver
	synthesizer  *result.Synthesizer
	suggester    *suggest.Engine
	brandfolder  IBrandfolderService
	publisher    IPublisherService
	validate     *validator.Validate
	sysLogger    logger.ILogger
	modelEnabled bool
}

func NewAssetService(
	resolver *intent.Resolver,
	synthesizer *result.Synthesizer,
	suggester *suggest.Engine,
	brandfolder IBrandfolderService,
	publisher IPublisherService,
	sysLogger logger.ILogger,
	modelEnabled bool,
) IAssetService {
	return &assetService{
		resolver:     resolver,
		synthesizer:  synthesizer,
		suggester:    suggester,
		brandfolder:  brandfolder,
		publisher:    publisher,
		validate:     validator.New(),
		sysLogger:    sysLogger,
		modelEnabled: modelEnabled,
	}
}

func (s *assetService) FindBrandAssets(ctx context.Context, req *dto.FindBrandAssetsRequest) (*dto.FindBrandAssetsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	start := time.Now()

	resolved := s.resolver.Resolve(ctx, req.Request, intent.Context{
		UseCase: req.Context.UseCase,
		Region:  req.Context.Region,
	})

	results := s.findResults(ctx, resolved)
	suggestions := s.suggester.Suggest(resolved, results)

	s.sysLogger.Info("asset_service", "search completed", map[string]interface{}{
		"query":          req.Request,
		"parsing_method": resolved.ParsingMethod,
		"confidence":     resolved.Confidence,
		"result_count":   len(results),
	})

	s.publishSearchEvent(ctx, req.Request, resolved, len(results))

	response := &dto.FindBrandAssetsResponse{
		Success:     true,
		Intent:      resolved,
		Results:     results,
		Suggestions: suggestions,
		Intelligence: dto.Intelligence{
			ParsingMethod:    resolved.ParsingMethod,
			DetectedSections: sectionNames(resolved),
			ConfidenceScore:  resolved.Confidence,
			ModelEnhanced:    s.modelEnabled,
		},
		Metadata: dto.SearchMetadata{
			Query:        req.Request,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			ResponseTime: time.Since(start).Round(time.Millisecond).String(),
		},
	}
	if resolved.Region != catalog.RegionGlobal {
		rc := resolved.RegionalContext
		response.Intelligence.RegionalContext = &rc
	}

	return response, nil
}

// findResults prefers a live Brandfolder search when the integration is
// configured, falling back to synthesized results on any error or empty hit.
func (s *assetService) findResults(ctx context.Context, resolved intent.Intent) []result.AssetResult {
	if s.brandfolder != nil && s.brandfolder.IsConfigured() {
		live, err := s.brandfolder.SearchAssets(ctx, resolved)
		if err != nil {
			s.sysLogger.Warn("asset_service", "live search failed, synthesizing results", map[string]interface{}{
				"error": err.Error(),
			})
		} else if len(live) > 0 {
			if len(live) > 3 {
				live = live[:3]
			}
			return live
		}
	}
	return s.synthesizer.Synthesize(resolved)
}

func (s *assetService) publishSearchEvent(ctx context.Context, query string, resolved intent.Intent, resultCount int) {
	event := dto.SearchEvent{
		EventID:       uuid.New().String(),
		Query:         query,
		ParsingMethod: resolved.ParsingMethod,
		UseCase:       resolved.UseCase,
		Region:        resolved.Region,
		Confidence:    resolved.Confidence,
		ResultCount:   resultCount,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	if product, ok := resolved.PrimaryProduct(); ok {
		event.Product = product.Name
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.sysLogger.Warn("asset_service", "failed to publish search event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func sectionNames(resolved intent.Intent) []string {
	names := make([]string, len(resolved.Sections))
	for i, section := range resolved.Sections {
		names[i] = section.Name
	}
	return names
}
