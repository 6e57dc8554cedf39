// Package result turns a resolved intent into concrete asset results, either
// synthesized from the catalog or mapped from a live Brandfolder search.
package result

import (
	"fmt"
	"strings"

	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
)

// maxResults caps every response.
const maxResults = 3

// AssetResult is one asset returned to the requester.
type AssetResult struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	URL             string              `json:"url"`
	Thumbnail       string              `json:"thumbnail,omitempty"`
	Format          string              `json:"format"`
	Size            string              `json:"size,omitempty"`
	Section         string              `json:"section"`
	DeliverableType string              `json:"deliverableType"`
	Summary         string              `json:"aiSummary,omitempty"`
	UsageNotes      []string            `json:"usageNotes"`
	RegionalContext *catalog.RegionInfo `json:"regionalContext,omitempty"`
	Confidence      float64             `json:"confidenceScore"`
}

// Synthesizer builds asset results from an intent and the catalog's use-case
// profiles. It is deterministic: the same intent always yields the same
// results, IDs included.
type Synthesizer struct {
	catalog *catalog.Catalog
}

// NewSynthesizer creates a synthesizer backed by the given catalog.
func NewSynthesizer(c *catalog.Catalog) *Synthesizer {
	return &Synthesizer{catalog: c}
}

// Synthesize produces at most maxResults assets. One asset per matched
// section when a product was recognized; a single generic brand asset
// otherwise, so the response is never empty.
func (s *Synthesizer) Synthesize(in intent.Intent) []AssetResult {
	var results []AssetResult

	if product, ok := in.PrimaryProduct(); ok {
		model := product.ModelCode
		if in.Brand == catalog.BrandSage && product.SageModel != "" {
			model = product.SageModel
		}

		for idx, section := range in.Sections {
			slug := strings.ToLower(strings.ReplaceAll(section.Name, " ", "_"))

			confidence := section.Confidence
			if confidence == 0 {
				confidence = 0.85
			}

			asset := AssetResult{
				ID:              fmt.Sprintf("asset_%s_%02d", strings.ToLower(model), idx+1),
				Name:            assetName(product, section.Name, in),
				URL:             fmt.Sprintf("https://vault.breville.com/download/%s_%s", model, slug),
				Thumbnail:       fmt.Sprintf("https://vault.breville.com/thumb/%s_%s", model, slug),
				Format:          primaryFormat(in),
				Size:            optimalSize(section.Name, in.UseCase),
				Section:         section.Name,
				DeliverableType: deliverableType(in, section, idx),
				Summary:         s.summary(product, section.Name, in),
				UsageNotes:      s.usageNotes(section.Name, in),
				Confidence:      confidence,
			}
			if in.Region != catalog.RegionGlobal {
				rc := in.RegionalContext
				asset.RegionalContext = &rc
			}
			results = append(results, asset)
		}
	}

	if len(results) == 0 {
		results = append(results, s.genericResult(in))
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func primaryFormat(in intent.Intent) string {
	if len(in.Formats) > 0 {
		return in.Formats[0]
	}
	return "PNG"
}

func deliverableType(in intent.Intent, section intent.SectionMatch, idx int) string {
	if idx < len(in.SpecificDeliverables) {
		return in.SpecificDeliverables[idx]
	}
	if len(section.Deliverables) > 0 {
		return section.Deliverables[0]
	}
	return "Standard Asset"
}

func assetName(product intent.ProductMatch, sectionName string, in intent.Intent) string {
	brand := in.Brand
	if brand == "" {
		brand = catalog.BrandBreville
	}

	switch {
	case sectionName == "Logos":
		name := fmt.Sprintf("%s - %s Logo", product.Name, brand)
		if in.UseCase == "presentation" {
			name += " (Presentation Ready)"
		}
		return name
	case sectionName == "Product Photography":
		name := fmt.Sprintf("%s - Hero Photography", product.Name)
		if in.UseCase == "amazon" {
			name += " (Amazon Optimized)"
		}
		return name
	case sectionName == "Lifestyle Photography":
		name := fmt.Sprintf("%s - Lifestyle Shot", product.Name)
		if in.UseCase == "social" {
			name += " (Social Media Ready)"
		}
		return name
	case strings.Contains(sectionName, "Social"):
		return fmt.Sprintf("%s - Social Media Asset (%s Branding)", product.Name, brand)
	case strings.Contains(sectionName, "Digital"):
		if in.UseCase == "amazon" {
			return fmt.Sprintf("%s - Amazon A+ Asset", product.Name)
		}
		return fmt.Sprintf("%s - Digital Asset", product.Name)
	default:
		name := fmt.Sprintf("%s - %s", product.Name, sectionName)
		if in.Region != catalog.RegionGlobal {
			name += fmt.Sprintf(" (%s)", in.RegionalContext.Theater)
		}
		return name
	}
}

func (s *Synthesizer) summary(product intent.ProductMatch, sectionName string, in intent.Intent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s asset from %s section in %s format.", product.Name, sectionName, primaryFormat(in))

	switch in.UseCase {
	case "presentation":
		b.WriteString(" High-resolution with transparent background, perfect for slide presentations and corporate materials.")
	case "social":
		b.WriteString(" Social media optimized with engaging composition and platform-specific dimensions.")
	case "amazon":
		b.WriteString(" Amazon marketplace optimized meeting A+ content requirements and product listing guidelines.")
	case "retail":
		b.WriteString(" Print-ready with CMYK color profile for retail point-of-sale materials.")
	case "web":
		b.WriteString(" Web-optimized for fast loading and responsive design across devices.")
	}

	if in.Region != catalog.RegionGlobal {
		fmt.Fprintf(&b, " Features %s branding specifically for %s market compliance.", in.Brand, in.RegionalContext.Theater)
	}
	return b.String()
}

func (s *Synthesizer) usageNotes(sectionName string, in intent.Intent) []string {
	notes := []string{}

	for _, format := range in.Formats {
		switch format {
		case "PNG":
			notes = append(notes, "PNG format with alpha channel transparency")
		case "SVG":
			notes = append(notes, "Vector format, scales without quality loss")
		case "WebP":
			notes = append(notes, "WebP format for smaller file sizes")
		}
	}

	if profile, ok := s.catalog.UseCase(in.UseCase); ok {
		notes = append(notes, profile.Notes...)
	}

	switch {
	case sectionName == "Product Photography":
		notes = append(notes, "Professional studio photography with optimal lighting")
	case sectionName == "Lifestyle Photography":
		notes = append(notes, "Authentic kitchen environment showing product in real use")
	case strings.Contains(sectionName, "Social"):
		notes = append(notes, "Optimized for social media algorithms and engagement")
	case strings.Contains(sectionName, "Digital"):
		notes = append(notes, "Optimized for digital platforms and e-commerce")
	}

	if in.Region != catalog.RegionGlobal {
		notes = append(notes, fmt.Sprintf("%s branding compliant with %s market standards", in.Brand, in.RegionalContext.Theater))
	}
	return notes
}

func (s *Synthesizer) genericResult(in intent.Intent) AssetResult {
	brand := in.Brand
	if brand == "" {
		brand = catalog.BrandBreville
	}

	name := fmt.Sprintf("%s Logo - Primary", brand)
	if product, ok := in.PrimaryProduct(); ok {
		name = fmt.Sprintf("%s - %s Brand Asset", product.Name, brand)
	}

	return AssetResult{
		ID:              "asset_generic_001",
		Name:            name,
		URL:             "https://vault.breville.com/download/generic_brand_asset",
		Thumbnail:       "https://vault.breville.com/thumb/generic_brand_asset",
		Format:          primaryFormat(in),
		Size:            "2048x1024",
		Section:         "Logos",
		DeliverableType: "Brands & Logos",
		Summary:         fmt.Sprintf("%s brand asset in %s format. Optimized for %s use.", brand, primaryFormat(in), in.UseCase),
		UsageNotes:      genericUsageNotes(in),
		Confidence:      0.75,
	}
}

func genericUsageNotes(in intent.Intent) []string {
	switch in.UseCase {
	case "presentation":
		return []string{
			"Presentation-optimized with high DPI for projectors",
			"Transparent background for flexible slide layouts",
		}
	case "web":
		return []string{
			"Web-optimized with progressive loading",
			"Responsive design compatible",
		}
	case "social":
		return []string{
			"Social media algorithm optimized",
			"Engaging visual composition for maximum reach",
		}
	case "amazon":
		return []string{
			"Amazon A+ content guidelines compliant",
			"Optimized for marketplace conversion",
		}
	}
	return []string{}
}

// Size lookup keyed by (section family, use case); checked in order so the
// more specific families win.
var sizeFamilies = []struct {
	key      string
	byUse    map[string]string
	fallback string
}{
	{
		key:      "Logos",
		byUse:    map[string]string{"presentation": "4096x2048", "web": "2048x1024", "social": "1080x1080", "print": "5000x2500"},
		fallback: "2048x1024",
	},
	{
		key:      "Product Photography",
		byUse:    map[string]string{"amazon": "2000x2000", "web": "1920x1920", "social": "1080x1080", "print": "4000x4000"},
		fallback: "3000x3000",
	},
	{
		key:      "Social",
		byUse:    map[string]string{"social": "1080x1080"},
		fallback: "1080x1080",
	},
	{
		key:      "Digital",
		byUse:    map[string]string{"amazon": "2000x2000", "web": "1920x1080"},
		fallback: "1920x1080",
	},
}

func optimalSize(sectionName, useCase string) string {
	for _, family := range sizeFamilies {
		if !strings.Contains(strings.ToLower(sectionName), strings.ToLower(family.key)) {
			continue
		}
		if size, ok := family.byUse[useCase]; ok {
			return size
		}
		return family.fallback
	}
	return "2048x1024"
}
