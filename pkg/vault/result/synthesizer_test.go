package result

import (
	"strings"
	"testing"

	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
)

func presentationIntent() intent.Intent {
	return intent.Intent{
		OriginalRequest: "Oracle Jet logo for my presentation",
		Products: []intent.ProductMatch{
			{Name: "Oracle Jet", ModelCode: "BES985", SageModel: "SES985", Confidence: 0.9},
		},
		Sections: []intent.SectionMatch{
			{Name: "Logos", Deliverables: []string{"Brands & Logos", "Partner Logos"}, Confidence: 0.4},
		},
		SpecificDeliverables: []string{"Brands & Logos"},
		UseCase:              "presentation",
		Region:               catalog.RegionGlobal,
		Brand:                catalog.BrandBreville,
		RegionalContext:      catalog.RegionInfo{Brand: catalog.BrandBreville, Theater: catalog.TheaterGlobal},
		Formats:              []string{"PNG", "SVG"},
		Confidence:           0.95,
	}
}

func TestSynthesizeProductResults(t *testing.T) {
	s := NewSynthesizer(catalog.New())

	results := s.Synthesize(presentationIntent())

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	got := results[0]

	if got.ID != "asset_bes985_01" {
		t.Errorf("id = %s", got.ID)
	}
	if got.Name != "Oracle Jet - Breville Logo (Presentation Ready)" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Size != "4096x2048" {
		t.Errorf("size = %s, want presentation logo size", got.Size)
	}
	if got.Format != "PNG" {
		t.Errorf("format = %s", got.Format)
	}
	if got.DeliverableType != "Brands & Logos" {
		t.Errorf("deliverableType = %s", got.DeliverableType)
	}
	if got.RegionalContext != nil {
		t.Errorf("global request should carry no regional context: %+v", got.RegionalContext)
	}
	if got.Confidence != 0.4 {
		t.Errorf("confidence = %v", got.Confidence)
	}
	if !strings.Contains(got.Summary, "slide presentations") {
		t.Errorf("summary = %q", got.Summary)
	}

	wantNotes := []string{
		"PNG format with alpha channel transparency",
		"Vector format, scales without quality loss",
		"Transparent backgrounds ideal",
		"High resolution for projectors",
	}
	if len(got.UsageNotes) != len(wantNotes) {
		t.Fatalf("usageNotes = %v", got.UsageNotes)
	}
	for i, want := range wantNotes {
		if got.UsageNotes[i] != want {
			t.Errorf("usageNotes[%d] = %q, want %q", i, got.UsageNotes[i], want)
		}
	}
}

func TestSynthesizeSageModelSwap(t *testing.T) {
	s := NewSynthesizer(catalog.New())

	in := presentationIntent()
	in.UseCase = "web"
	in.Region = "GB"
	in.Brand = catalog.BrandSage
	in.RegionalContext = catalog.RegionInfo{Brand: catalog.BrandSage, Theater: catalog.TheaterEMEA}

	results := s.Synthesize(in)
	got := results[0]

	if got.ID != "asset_ses985_01" {
		t.Errorf("id = %s, want the Sage model code", got.ID)
	}
	if !strings.Contains(got.URL, "SES985_logos") {
		t.Errorf("url = %s", got.URL)
	}
	if got.Name != "Oracle Jet - Sage Logo" {
		t.Errorf("name = %q", got.Name)
	}
	if got.RegionalContext == nil || got.RegionalContext.Theater != catalog.TheaterEMEA {
		t.Errorf("regionalContext = %+v", got.RegionalContext)
	}
	if !strings.Contains(got.Summary, "Sage branding specifically for EMEA market compliance") {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestSynthesizeGenericFallback(t *testing.T) {
	s := NewSynthesizer(catalog.New())

	in := intent.Intent{
		OriginalRequest: "xyz",
		UseCase:         catalog.UseCaseNone,
		Region:          catalog.RegionGlobal,
		Brand:           catalog.BrandBreville,
		Formats:         []string{"PNG"},
		Confidence:      0.70,
	}

	results := s.Synthesize(in)
	if len(results) != 1 {
		t.Fatalf("got %d results, want exactly 1 generic", len(results))
	}
	got := results[0]

	if got.ID != "asset_generic_001" {
		t.Errorf("id = %s", got.ID)
	}
	if got.Name != "Breville Logo - Primary" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Section != "Logos" || got.DeliverableType != "Brands & Logos" {
		t.Errorf("section/deliverable = %s/%s", got.Section, got.DeliverableType)
	}
	if got.Size != "2048x1024" {
		t.Errorf("size = %s", got.Size)
	}
	if got.Confidence != 0.75 {
		t.Errorf("confidence = %v", got.Confidence)
	}
	if len(got.UsageNotes) != 0 {
		t.Errorf("general use case should add no notes: %v", got.UsageNotes)
	}
}

func TestSynthesizeCapsAtThree(t *testing.T) {
	s := NewSynthesizer(catalog.New())

	in := presentationIntent()
	in.Sections = []intent.SectionMatch{
		{Name: "Logos", Confidence: 0.8},
		{Name: "Product Photography", Confidence: 0.6},
		{Name: "Lifestyle Photography", Confidence: 0.5},
		{Name: "YouTube Videos", Confidence: 0.4},
	}

	results := s.Synthesize(in)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Section != "Logos" || results[2].Section != "Lifestyle Photography" {
		t.Errorf("section order = %s..%s", results[0].Section, results[2].Section)
	}
}

func TestOptimalSize(t *testing.T) {
	tests := []struct {
		section string
		useCase string
		want    string
	}{
		{"Logos", "presentation", "4096x2048"},
		{"Logos", "retail", "2048x1024"},
		{"Product Photography", "amazon", "2000x2000"},
		{"Product Photography", "general", "3000x3000"},
		{"Social (incl. Videos, Statics, Stories & Keynotes)", "social", "1080x1080"},
		{"Digital Assets (incl. Websites, Programmatic & EDM)", "web", "1920x1080"},
		{"Point of Sales (POS)", "retail", "2048x1024"},
	}

	for _, tt := range tests {
		if got := optimalSize(tt.section, tt.useCase); got != tt.want {
			t.Errorf("optimalSize(%q, %q) = %s, want %s", tt.section, tt.useCase, got, tt.want)
		}
	}
}
