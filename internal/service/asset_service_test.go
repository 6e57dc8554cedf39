// FILE: internal/service/asset_service_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dam-butler-be/internal/dto"
	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"
	"dam-butler-be/pkg/vault/suggest"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type stubBrandfolder struct {
	configured bool
	assets     []result.AssetResult
	err        error
}

func (s *stubBrandfolder) IsConfigured() bool { return s.configured }

func (s *stubBrandfolder) GetAuthURL() (*dto.AuthenticateResponse, error) {
	return &dto.AuthenticateResponse{Success: s.configured}, nil
}

func (s *stubBrandfolder) ExchangeCode(ctx context.Context, code string) (*dto.TokenExchangeResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBrandfolder) SearchAssets(ctx context.Context, resolved intent.Intent) ([]result.AssetResult, error) {
	return s.assets, s.err
}

func newTestAssetService(brandfolder IBrandfolderService, publisher IPublisherService) IAssetService {
	vaultCatalog := catalog.New()
	return NewAssetService(
		intent.NewResolver(vaultCatalog, nil, nil),
		result.NewSynthesizer(vaultCatalog),
		suggest.NewEngine(),
		brandfolder,
		publisher,
		nopLogger{},
		false,
	)
}

func TestFindBrandAssetsSynthesizesWhenNotConfigured(t *testing.T) {
	publisher := &capturePublisher{}
	svc := newTestAssetService(&stubBrandfolder{configured: false}, publisher)

	res, err := svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{
		Request: "I need the Oracle Jet logo for a presentation",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, intent.MethodPatternMatching, res.Intelligence.ParsingMethod)
	assert.InDelta(t, 0.95, res.Intelligence.ConfidenceScore, 1e-9)
	assert.Contains(t, res.Intelligence.DetectedSections, "Logos")
	assert.False(t, res.Intelligence.ModelEnhanced)
	require.NotEmpty(t, res.Results)
	assert.Equal(t, "asset_bes985_01", res.Results[0].ID)
	assert.NotEmpty(t, res.Metadata.ResponseTime)

	require.Len(t, publisher.payloads, 1)
	var event dto.SearchEvent
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Equal(t, "Oracle Jet", event.Product)
	assert.Equal(t, len(res.Results), event.ResultCount)
	assert.NotEmpty(t, event.EventID)
}

func TestFindBrandAssetsPrefersLiveResults(t *testing.T) {
	live := []result.AssetResult{
		{ID: "live_1", Name: "A", Confidence: 0.9},
		{ID: "live_2", Name: "B", Confidence: 0.8},
		{ID: "live_3", Name: "C", Confidence: 0.7},
		{ID: "live_4", Name: "D", Confidence: 0.6},
	}
	svc := newTestAssetService(&stubBrandfolder{configured: true, assets: live}, &capturePublisher{})

	res, err := svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{
		Request: "Oracle Jet photos",
	})
	require.NoError(t, err)

	require.Len(t, res.Results, 3)
	assert.Equal(t, "live_1", res.Results[0].ID)
}

func TestFindBrandAssetsFallsBackWhenLiveSearchFails(t *testing.T) {
	svc := newTestAssetService(&stubBrandfolder{configured: true, err: errors.New("upstream down")}, &capturePublisher{})

	res, err := svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{
		Request: "Oracle Jet logo for a presentation",
	})
	require.NoError(t, err)

	require.NotEmpty(t, res.Results)
	assert.Equal(t, "asset_bes985_01", res.Results[0].ID)
}

func TestFindBrandAssetsValidatesRequest(t *testing.T) {
	svc := newTestAssetService(&stubBrandfolder{}, &capturePublisher{})

	_, err := svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{Request: "ab"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestFindBrandAssetsOmitsRegionalContextForGlobal(t *testing.T) {
	svc := newTestAssetService(&stubBrandfolder{}, &capturePublisher{})

	res, err := svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{
		Request: "some brand assets please",
	})
	require.NoError(t, err)

	assert.Nil(t, res.Intelligence.RegionalContext)

	res, err = svc.FindBrandAssets(context.Background(), &dto.FindBrandAssetsRequest{
		Request: "Sage Oracle Jet photography for UK retail",
	})
	require.NoError(t, err)

	require.NotNil(t, res.Intelligence.RegionalContext)
	assert.Equal(t, catalog.BrandSage, res.Intelligence.RegionalContext.Brand)
}
