package intent

import (
	"testing"

	"dam-butler-be/pkg/vault/catalog"
)

func TestProductExtraction(t *testing.T) {
	e := NewExtractor(catalog.New())

	tests := []struct {
		name      string
		text      string
		wantModel string
		wantOK    bool
	}{
		{name: "breville model code", text: "I need BES985 assets", wantModel: "BES985", wantOK: true},
		{name: "sage model code", text: "ses995 brochure please", wantModel: "BES995", wantOK: true},
		{name: "full alias", text: "oracle touch hero shot", wantModel: "BES990", wantOK: true},
		{name: "short alias", text: "the jet for our campaign", wantModel: "BES985", wantOK: true},
		{name: "model code beats later alias", text: "bes990 oracle jet", wantModel: "BES990", wantOK: true},
		{name: "bare oracle is not a product", text: "oracle assets", wantOK: false},
		{name: "no product", text: "some banner artwork", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := e.Product(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Product(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && p.ModelCode != tt.wantModel {
				t.Errorf("Product(%q) = %s, want %s", tt.text, p.ModelCode, tt.wantModel)
			}
		})
	}
}

func TestSectionScoring(t *testing.T) {
	e := NewExtractor(catalog.New())

	t.Run("keyword scores two points each", func(t *testing.T) {
		scored := e.Sections("need a logo", "")
		if len(scored) != 1 {
			t.Fatalf("got %d sections, want 1: %+v", len(scored), scored)
		}
		if scored[0].Section.Key != "logos" || scored[0].Score != 2 {
			t.Errorf("got %s score %d, want logos score 2", scored[0].Section.Key, scored[0].Score)
		}
	})

	t.Run("use case affinity adds three", func(t *testing.T) {
		scored := e.Sections("instagram stories assets", "social")
		if len(scored) == 0 {
			t.Fatal("no sections scored")
		}
		// social_media: keywords "social"? no. "instagram" +2, "stories" +2, affinity +3.
		if scored[0].Section.Key != "social_media" || scored[0].Score != 7 {
			t.Errorf("top = %s score %d, want social_media score 7", scored[0].Section.Key, scored[0].Score)
		}
	})

	t.Run("ties keep declaration order", func(t *testing.T) {
		// "digital" hits digital_assets, "pos" hits point_of_sale, both score 2.
		scored := e.Sections("digital and pos material", "")
		if len(scored) < 2 {
			t.Fatalf("got %d sections, want at least 2", len(scored))
		}
		if scored[0].Section.Key != "digital_assets" || scored[1].Section.Key != "point_of_sale" {
			t.Errorf("order = %s, %s; want digital_assets, point_of_sale",
				scored[0].Section.Key, scored[1].Section.Key)
		}
	})

	t.Run("zero score sections dropped", func(t *testing.T) {
		if scored := e.Sections("xyz", ""); len(scored) != 0 {
			t.Errorf("got %d sections for gibberish, want 0", len(scored))
		}
	})

	t.Run("confidence caps at one", func(t *testing.T) {
		s := ScoredSection{Score: 9}
		if got := s.Confidence(); got != 1 {
			t.Errorf("Confidence() = %v, want 1", got)
		}
		s = ScoredSection{Score: 2}
		if got := s.Confidence(); got != 0.4 {
			t.Errorf("Confidence() = %v, want 0.4", got)
		}
	})
}

func TestUseCaseExtraction(t *testing.T) {
	e := NewExtractor(catalog.New())

	tests := []struct {
		text string
		want string
	}{
		{"slides for the board meeting", "presentation"},
		{"homepage banner", "web"},
		{"tiktok clip", "social"},
		{"amazon a+ content", "amazon"},
		{"in-store display", "retail"},
		{"flyer for the event", "print"},
		{"edm header", "email"},
		{"tutorial footage", "video"},
		{"presentation for the website", "presentation"},
		{"just some assets", catalog.UseCaseNone},
	}

	for _, tt := range tests {
		if got := e.UseCase(tt.text); got != tt.want {
			t.Errorf("UseCase(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRegionExtraction(t *testing.T) {
	e := NewExtractor(catalog.New())

	tests := []struct {
		text string
		want string
	}{
		{"for the australian market", "AU"},
		{"launch in the USA", "US"},
		{"canadian retailers", "CA"},
		{"UK campaign", "GB"},
		{"für deutschland", "DE"},
		{"EMEA rollout", "EU"},
		{"sage branded assets", "GB"},
		{"no market named", catalog.RegionGlobal},
	}

	for _, tt := range tests {
		if got := e.Region(tt.text); got != tt.want {
			t.Errorf("Region(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
