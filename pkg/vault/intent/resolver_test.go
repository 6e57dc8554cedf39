package intent

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"testing"

	"dam-butler-be/pkg/llm"
	"dam-butler-be/pkg/vault/catalog"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPatternResolution(t *testing.T) {
	r := NewResolver(catalog.New(), nil, testLogger())
	ctx := context.Background()

	t.Run("product section and use case", func(t *testing.T) {
		got := r.Resolve(ctx, "I need the Oracle Jet logo for my presentation", Context{})

		if got.ParsingMethod != MethodPatternMatching {
			t.Errorf("method = %s", got.ParsingMethod)
		}
		if len(got.Products) != 1 || got.Products[0].ModelCode != "BES985" {
			t.Fatalf("products = %+v", got.Products)
		}
		if got.UseCase != "presentation" {
			t.Errorf("useCase = %s", got.UseCase)
		}
		if len(got.Sections) != 1 || got.Sections[0].Name != "Logos" {
			t.Fatalf("sections = %+v", got.Sections)
		}
		if !almostEqual(got.Confidence, 0.95) {
			t.Errorf("confidence = %v, want 0.95", got.Confidence)
		}
		if got.Region != catalog.RegionGlobal || got.Brand != catalog.BrandBreville {
			t.Errorf("region/brand = %s/%s", got.Region, got.Brand)
		}
		if got.Formats[0] != "PNG" || got.Formats[1] != "SVG" {
			t.Errorf("formats = %v", got.Formats)
		}
	})

	t.Run("sage implies gb and emea", func(t *testing.T) {
		got := r.Resolve(ctx, "Sage product photos for UK market", Context{})

		if got.Region != "GB" || got.Brand != catalog.BrandSage {
			t.Errorf("region/brand = %s/%s, want GB/Sage", got.Region, got.Brand)
		}
		if got.RegionalContext.Theater != catalog.TheaterEMEA {
			t.Errorf("theater = %s", got.RegionalContext.Theater)
		}
		if len(got.Products) != 0 {
			t.Errorf("products = %+v, want none", got.Products)
		}
		if len(got.Sections) == 0 || got.Sections[0].Name != "Product Photography" {
			t.Fatalf("sections = %+v", got.Sections)
		}
		if !almostEqual(got.Confidence, 0.80) {
			t.Errorf("confidence = %v, want 0.80", got.Confidence)
		}
	})

	t.Run("total miss keeps base confidence", func(t *testing.T) {
		got := r.Resolve(ctx, "xyz", Context{})

		if len(got.Products) != 0 || len(got.Sections) != 0 {
			t.Errorf("unexpected matches: %+v %+v", got.Products, got.Sections)
		}
		if got.UseCase != catalog.UseCaseNone {
			t.Errorf("useCase = %s", got.UseCase)
		}
		if got.Confidence != 0.70 {
			t.Errorf("confidence = %v, want 0.70", got.Confidence)
		}
	})

	t.Run("context overrides inference", func(t *testing.T) {
		got := r.Resolve(ctx, "Oracle Jet banner for the website", Context{UseCase: "retail", Region: "au"})

		if got.UseCase != "retail" {
			t.Errorf("useCase = %s, want retail", got.UseCase)
		}
		if got.Region != "AU" || got.Brand != catalog.BrandBreville {
			t.Errorf("region/brand = %s/%s, want AU/Breville", got.Region, got.Brand)
		}
		if got.Formats[0] != "PDF" {
			t.Errorf("formats = %v, want retail profile", got.Formats)
		}
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		first := r.Resolve(ctx, "social video for the oracle touch", Context{})
		second := r.Resolve(ctx, "social video for the oracle touch", Context{})

		if first.Confidence != second.Confidence || first.Reasoning != second.Reasoning ||
			len(first.Sections) != len(second.Sections) {
			t.Errorf("resolution not stable:\n%+v\n%+v", first, second)
		}
	})

	t.Run("top two sections kept", func(t *testing.T) {
		got := r.Resolve(ctx, "logo, product photo, lifestyle and pos banner", Context{})
		if len(got.Sections) != 2 {
			t.Errorf("sections = %d, want 2", len(got.Sections))
		}
	})
}

func TestModelResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("valid model response", func(t *testing.T) {
		provider := &stubProvider{response: "```json\n{" +
			`"products": [{"name": "Oracle Jet", "modelNumber": "BES985", "sageModel": "SES985", "confidence": 0.95}],` +
			`"sections": [{"name": "Logos", "deliverables": ["Brands & Logos"], "confidence": 0.9}],` +
			`"specific_deliverables": ["Brands & Logos"],` +
			`"use_case": "presentation", "region": "AU", "formats": ["PNG", "SVG"],` +
			`"confidence": 0.95, "reasoning": "explicit product and section"}` + "\n```"}
		r := NewResolver(catalog.New(), provider, testLogger())

		got := r.Resolve(ctx, "Oracle Jet logo for my presentation", Context{})

		if got.ParsingMethod != MethodModelAssisted {
			t.Fatalf("method = %s", got.ParsingMethod)
		}
		if got.Products[0].ModelCode != "BES985" {
			t.Errorf("products = %+v", got.Products)
		}
		if got.Region != "AU" || got.Brand != catalog.BrandBreville || got.RegionalContext.Theater != catalog.TheaterAPAC {
			t.Errorf("region mapping = %s/%s/%s", got.Region, got.Brand, got.RegionalContext.Theater)
		}
		if !almostEqual(got.Confidence, 0.95) {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("confidence clamped to floor", func(t *testing.T) {
		provider := &stubProvider{response: `{"use_case": "web", "confidence": 0.0}`}
		r := NewResolver(catalog.New(), provider, testLogger())

		got := r.Resolve(ctx, "something", Context{})
		if got.ParsingMethod != MethodModelAssisted {
			t.Fatalf("method = %s", got.ParsingMethod)
		}
		if got.Confidence != 0.1 {
			t.Errorf("confidence = %v, want 0.1", got.Confidence)
		}
		if len(got.Products) != 0 || len(got.Sections) != 0 {
			t.Errorf("defaults not applied: %+v %+v", got.Products, got.Sections)
		}
		if got.Formats[0] != "PNG" {
			t.Errorf("formats = %v, want PNG default", got.Formats)
		}
	})

	t.Run("provider error falls back to patterns", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("upstream 500")}
		r := NewResolver(catalog.New(), provider, testLogger())

		got := r.Resolve(ctx, "Oracle Jet logo for my presentation", Context{})
		if got.ParsingMethod != MethodPatternMatching {
			t.Errorf("method = %s, want pattern_matching", got.ParsingMethod)
		}
		if !almostEqual(got.Confidence, 0.95) {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("malformed json falls back to patterns", func(t *testing.T) {
		provider := &stubProvider{response: "I could not parse that request, sorry."}
		r := NewResolver(catalog.New(), provider, testLogger())

		got := r.Resolve(ctx, "Oracle Jet logo", Context{})
		if got.ParsingMethod != MethodPatternMatching {
			t.Errorf("method = %s, want pattern_matching", got.ParsingMethod)
		}
	})
}

func TestMinimalFallback(t *testing.T) {
	r := NewResolver(nil, nil, testLogger())

	got := r.Resolve(context.Background(), "oracle jet logo", Context{Region: "us"})

	if got.ParsingMethod != MethodMinimalFallback {
		t.Fatalf("method = %s", got.ParsingMethod)
	}
	if len(got.Products) != 1 || got.Products[0].ModelCode != "BES985" {
		t.Errorf("products = %+v", got.Products)
	}
	if len(got.Sections) != 1 || got.Sections[0].Name != "Logos" {
		t.Errorf("sections = %+v", got.Sections)
	}
	if got.Region != "US" {
		t.Errorf("region = %s", got.Region)
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence = %v", got.Confidence)
	}
}
