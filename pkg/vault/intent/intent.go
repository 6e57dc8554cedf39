// Package intent turns a natural-language asset request into a structured
// Intent: which products, which Vault sections, which use case, region and
// formats the requester meant. Resolution is model-assisted when an LLM
// provider is configured and falls back to deterministic pattern matching,
// so callers always get an Intent, never an error.
package intent

import "dam-butler-be/pkg/vault/catalog"

// Parsing method tags carried on every Intent so callers can tell which
// strategy produced it.
const (
	MethodModelAssisted   = "model_assisted"
	MethodPatternMatching = "pattern_matching"
	MethodMinimalFallback = "minimal_fallback"
)

// ProductMatch is one recognized product with the extractor's (or the
// model's) confidence in the match.
type ProductMatch struct {
	Name       string  `json:"name"`
	ModelCode  string  `json:"modelNumber"`
	SageModel  string  `json:"sageModel,omitempty"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
}

// SectionMatch is one recognized Vault section. Deliverables carries the
// section's full deliverable list; SpecificDeliverables on the Intent holds
// the narrowed set.
type SectionMatch struct {
	Name         string   `json:"name"`
	Deliverables []string `json:"deliverables"`
	Confidence   float64  `json:"confidence"`
}

// Context is the optional request context supplied alongside the raw text.
// Explicit values always override inference.
type Context struct {
	UseCase string `json:"use_case,omitempty"`
	Region  string `json:"region,omitempty"`
}

// Intent is the resolved interpretation of one asset request.
type Intent struct {
	OriginalRequest      string             `json:"originalRequest"`
	Products             []ProductMatch     `json:"products"`
	Sections             []SectionMatch     `json:"sections"`
	SpecificDeliverables []string           `json:"specificDeliverables"`
	UseCase              string             `json:"useCase"`
	Region               string             `json:"region"`
	Brand                string             `json:"brand"`
	RegionalContext      catalog.RegionInfo `json:"regionalContext"`
	Formats              []string           `json:"formats"`
	UsageNotes           []string           `json:"usageNotes"`
	Confidence           float64            `json:"confidence"`
	Reasoning            string             `json:"reasoning"`
	ParsingMethod        string             `json:"parsingMethod"`
}

// HasProduct reports whether at least one product was recognized.
func (i Intent) HasProduct() bool {
	return len(i.Products) > 0
}

// PrimaryProduct returns the first recognized product.
func (i Intent) PrimaryProduct() (ProductMatch, bool) {
	if len(i.Products) == 0 {
		return ProductMatch{}, false
	}
	return i.Products[0], true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
