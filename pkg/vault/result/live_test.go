package result

import (
	"testing"

	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
)

func liveIntent() intent.Intent {
	return intent.Intent{
		Products: []intent.ProductMatch{
			{Name: "Oracle Jet", ModelCode: "BES985"},
		},
		Sections: []intent.SectionMatch{{Name: "Product Photography"}},
		UseCase:  "web",
		Region:   "AU",
		Brand:    catalog.BrandBreville,
		RegionalContext: catalog.RegionInfo{
			Brand: catalog.BrandBreville, Theater: catalog.TheaterAPAC,
		},
		Formats: []string{"PNG"},
	}
}

func TestScoreLiveAsset(t *testing.T) {
	in := liveIntent()

	tests := []struct {
		name  string
		asset LiveAsset
		want  float64
	}{
		{
			name:  "no signals",
			asset: LiveAsset{Name: "Toaster manual", FileType: "pdf"},
			want:  0.5,
		},
		{
			name:  "product in name",
			asset: LiveAsset{Name: "Oracle Jet hero", FileType: "pdf"},
			want:  0.8,
		},
		{
			name:  "model code in tag",
			asset: LiveAsset{Name: "hero shot", FileType: "pdf", Tags: []string{"bes985"}},
			want:  0.8,
		},
		{
			name:  "format match case-insensitive",
			asset: LiveAsset{Name: "hero shot", FileType: "png"},
			want:  0.65,
		},
		{
			name:  "use case and brand tags",
			asset: LiveAsset{Name: "hero", FileType: "pdf", Tags: []string{"web", "breville"}},
			want:  0.7,
		},
		{
			name: "all signals cap at one",
			asset: LiveAsset{
				Name:     "Oracle Jet BES985 hero",
				FileType: "PNG",
				Tags:     []string{"web", "breville", "bes985"},
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreLiveAsset(tt.asset, in)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ScoreLiveAsset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapLiveResultsSorted(t *testing.T) {
	in := liveIntent()

	assets := []LiveAsset{
		{ID: "a1", Name: "random", FileType: "pdf"},
		{ID: "a2", Name: "Oracle Jet hero", FileType: "png", DownloadURL: "https://cdn/a2", Dimensions: "3000x3000"},
		{ID: "a3", Name: "another random", FileType: "pdf", URL: "https://cdn/a3"},
	}

	results := MapLiveResults(assets, in)

	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].ID != "a2" {
		t.Errorf("best result = %s, want a2", results[0].ID)
	}
	// Equal scores keep upstream order.
	if results[1].ID != "a1" || results[2].ID != "a3" {
		t.Errorf("tie order = %s, %s", results[1].ID, results[2].ID)
	}

	if results[0].URL != "https://cdn/a2" || results[0].Format != "PNG" || results[0].Size != "3000x3000" {
		t.Errorf("mapping = %+v", results[0])
	}
	if results[2].URL != "https://cdn/a3" {
		t.Errorf("url fallback = %s", results[2].URL)
	}
	if results[0].Section != "Product Photography" {
		t.Errorf("section = %s", results[0].Section)
	}
	if results[0].RegionalContext == nil || results[0].RegionalContext.Theater != catalog.TheaterAPAC {
		t.Errorf("regionalContext = %+v", results[0].RegionalContext)
	}
}
