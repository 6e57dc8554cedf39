package result

import (
	"sort"
	"strings"

	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
)

// LiveAsset is one asset as returned by the Brandfolder search API.
type LiveAsset struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	DownloadURL  string   `json:"download_url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	FileType     string   `json:"file_type"`
	FileSize     int64    `json:"file_size"`
	Dimensions   string   `json:"dimensions"`
	Tags         []string `json:"tags"`
}

// ScoreLiveAsset rates how well a live asset matches the intent. Base 0.5,
// +0.3 product match (name or tags), +0.15 exact format match, +0.1 use-case
// tag, +0.1 brand tag, capped at 1.0.
func ScoreLiveAsset(asset LiveAsset, in intent.Intent) float64 {
	confidence := 0.5

	name := strings.ToLower(asset.Name)
	tags := make([]string, len(asset.Tags))
	for i, tag := range asset.Tags {
		tags[i] = strings.ToLower(tag)
	}

	if productMatches(name, tags, in.Products) {
		confidence += 0.3
	}

	for _, format := range in.Formats {
		if strings.EqualFold(asset.FileType, format) {
			confidence += 0.15
			break
		}
	}

	if in.UseCase != "" && in.UseCase != catalog.UseCaseNone && tagContains(tags, in.UseCase) {
		confidence += 0.1
	}

	if in.Brand != "" && tagContains(tags, in.Brand) {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func productMatches(name string, tags []string, products []intent.ProductMatch) bool {
	for _, p := range products {
		needles := []string{strings.ToLower(p.Name), strings.ToLower(p.ModelCode)}
		for _, needle := range needles {
			if needle == "" {
				continue
			}
			if strings.Contains(name, needle) || tagContains(tags, needle) {
				return true
			}
		}
	}
	return false
}

func tagContains(tags []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, tag := range tags {
		if strings.Contains(tag, needle) {
			return true
		}
	}
	return false
}

// MapLiveResults converts live search hits into AssetResults, scored against
// the intent and sorted by descending confidence. Equal scores keep the
// upstream order.
func MapLiveResults(assets []LiveAsset, in intent.Intent) []AssetResult {
	results := make([]AssetResult, 0, len(assets))

	for _, asset := range assets {
		section := ""
		if len(in.Sections) > 0 {
			section = in.Sections[0].Name
		}

		url := asset.DownloadURL
		if url == "" {
			url = asset.URL
		}

		mapped := AssetResult{
			ID:              asset.ID,
			Name:            asset.Name,
			URL:             url,
			Thumbnail:       asset.ThumbnailURL,
			Format:          strings.ToUpper(asset.FileType),
			Size:            asset.Dimensions,
			Section:         section,
			DeliverableType: "Live Asset",
			Summary:         asset.Description,
			UsageNotes:      []string{},
			Confidence:      ScoreLiveAsset(asset, in),
		}
		if in.Region != catalog.RegionGlobal {
			rc := in.RegionalContext
			mapped.RegionalContext = &rc
		}
		results = append(results, mapped)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}
