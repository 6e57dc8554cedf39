package intent

import (
	"regexp"
	"sort"
	"strings"

	"dam-butler-be/pkg/vault/catalog"
)

// Signal weights for section scoring.
const (
	keywordWeight        = 2
	useCaseAffinityBonus = 3
)

// Use-case patterns are checked in priority order; the first hit wins.
// "presentation" outranks "web" so that "slides for the website" still
// resolves to presentation.
var useCasePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"presentation", regexp.MustCompile(`(?i)presentation|slide|ppt|powerpoint|keynote`)},
	{"web", regexp.MustCompile(`(?i)web|website|online|digital|homepage`)},
	{"social", regexp.MustCompile(`(?i)social|instagram|facebook|twitter|linkedin|tiktok`)},
	{"amazon", regexp.MustCompile(`(?i)amazon|marketplace|ecommerce|a\+|aplus`)},
	{"retail", regexp.MustCompile(`(?i)retail|store|pos|point.of.sale|in.?store`)},
	{"print", regexp.MustCompile(`(?i)print|brochure|flyer|poster|catalogue`)},
	{"email", regexp.MustCompile(`(?i)email|edm|newsletter|mailchimp`)},
	{"video", regexp.MustCompile(`(?i)video|youtube|tutorial|demo`)},
}

var regionPatterns = []struct {
	code string
	re   *regexp.Regexp
}{
	{"AU", regexp.MustCompile(`(?i)australia|australian|au\b|aussie`)},
	{"US", regexp.MustCompile(`(?i)america|usa|us\b|united states|american`)},
	{"CA", regexp.MustCompile(`(?i)canada|canadian|ca\b`)},
	{"GB", regexp.MustCompile(`(?i)uk\b|britain|british|united kingdom|england`)},
	{"DE", regexp.MustCompile(`(?i)germany|german|de\b|deutschland`)},
	{"EU", regexp.MustCompile(`(?i)europe|european|eu\b|emea`)},
}

// Mentioning the Sage brand implies an EMEA market even without a country.
var sagePattern = regexp.MustCompile(`(?i)sage`)

// ScoredSection pairs a catalog section with its accumulated signal score.
type ScoredSection struct {
	Section catalog.Section
	Score   int
}

// Confidence maps the raw score onto [0,1]; five points is full confidence.
func (s ScoredSection) Confidence() float64 {
	c := float64(s.Score) / 5
	if c > 1 {
		c = 1
	}
	return c
}

// Extractor runs the deterministic signal extractors over request text.
// All extractors are pure functions of (text, catalog); given the same
// input they always return the same output.
type Extractor struct {
	catalog *catalog.Catalog
}

// NewExtractor creates an extractor bound to a catalog.
func NewExtractor(c *catalog.Catalog) *Extractor {
	return &Extractor{catalog: c}
}

// Product scans for a product mention: model codes first (primary then Sage
// variant), then aliases, each pass in catalog declaration order. At most one
// product is returned; the first match wins.
func (e *Extractor) Product(text string) (catalog.Product, bool) {
	lower := strings.ToLower(text)

	for _, p := range e.catalog.Products() {
		if strings.Contains(lower, strings.ToLower(p.ModelCode)) ||
			(p.SageModel != "" && strings.Contains(lower, strings.ToLower(p.SageModel))) {
			return p, true
		}
	}
	for _, p := range e.catalog.Products() {
		for _, alias := range p.Aliases {
			if strings.Contains(lower, alias) {
				return p, true
			}
		}
	}
	return catalog.Product{}, false
}

// Sections scores every catalog section against the text: keywordWeight per
// keyword found plus useCaseAffinityBonus when the section declares the given
// use case. Zero-scoring sections are dropped and the rest are returned in
// stable descending score order, so equal scores keep declaration order.
func (e *Extractor) Sections(text, useCase string) []ScoredSection {
	lower := strings.ToLower(text)

	var scored []ScoredSection
	for _, s := range e.catalog.Sections() {
		score := 0
		for _, kw := range s.Keywords {
			if strings.Contains(lower, kw) {
				score += keywordWeight
			}
		}
		if useCase != "" && useCase != catalog.UseCaseNone && s.HasUseCase(useCase) {
			score += useCaseAffinityBonus
		}
		if score > 0 {
			scored = append(scored, ScoredSection{Section: s, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// UseCase returns the first matching use-case name, or "general".
func (e *Extractor) UseCase(text string) string {
	for _, p := range useCasePatterns {
		if p.re.MatchString(text) {
			return p.name
		}
	}
	return catalog.UseCaseNone
}

// Region returns the first matching region code, GB on a bare Sage brand
// mention, or "global".
func (e *Extractor) Region(text string) string {
	for _, p := range regionPatterns {
		if p.re.MatchString(text) {
			return p.code
		}
	}
	if sagePattern.MatchString(text) {
		return "GB"
	}
	return catalog.RegionGlobal
}
