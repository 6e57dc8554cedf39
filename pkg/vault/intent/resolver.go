package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"dam-butler-be/pkg/llm"
	"dam-butler-be/pkg/vault/catalog"
)

// Resolver resolves raw request text into an Intent. When an LLM provider is
// configured the model-assisted strategy runs first; any transport, JSON or
// validation failure falls back to pattern matching exactly once. Resolve
// never returns an error.
type Resolver struct {
	catalog   *catalog.Catalog
	extractor *Extractor
	provider  llm.LLMProvider
	logger    *log.Logger
}

// NewResolver creates a resolver. provider may be nil, which disables the
// model-assisted strategy entirely.
func NewResolver(c *catalog.Catalog, provider llm.LLMProvider, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	r := &Resolver{
		catalog:  c,
		provider: provider,
		logger:   logger,
	}
	if c != nil {
		r.extractor = NewExtractor(c)
	}
	return r
}

// Resolve analyzes the request and produces an Intent tagged with the
// strategy that actually produced it.
func (r *Resolver) Resolve(ctx context.Context, request string, reqCtx Context) Intent {
	if r.catalog == nil {
		return r.resolveMinimal(request, reqCtx)
	}

	if r.provider != nil {
		intent, err := r.resolveWithModel(ctx, request, reqCtx)
		if err == nil {
			return intent
		}
		r.logger.Printf("[WARN] model-assisted parsing failed, using pattern matching: %v", err)
	}

	return r.resolveWithPatterns(request, reqCtx)
}

func (r *Resolver) resolveWithPatterns(request string, reqCtx Context) Intent {
	lower := strings.ToLower(request)
	var reasoning []string

	intent := Intent{
		OriginalRequest:      request,
		Products:             []ProductMatch{},
		Sections:             []SectionMatch{},
		SpecificDeliverables: []string{},
		Formats:              []string{"PNG"},
		UsageNotes:           []string{},
		ParsingMethod:        MethodPatternMatching,
	}
	confidence := 0.70

	if p, ok := r.extractor.Product(request); ok {
		intent.Products = append(intent.Products, ProductMatch{
			Name:       p.Name,
			ModelCode:  p.ModelCode,
			SageModel:  p.SageModel,
			Category:   p.SubCategory,
			Confidence: 0.9,
		})
		confidence += 0.15
		reasoning = append(reasoning, fmt.Sprintf("recognized product %s (%s)", p.Name, p.ModelCode))
	} else {
		reasoning = append(reasoning, "no product recognized")
	}

	useCase := reqCtx.UseCase
	if useCase != "" {
		reasoning = append(reasoning, fmt.Sprintf("use case %q from request context", useCase))
	} else {
		useCase = r.extractor.UseCase(request)
		if useCase != catalog.UseCaseNone {
			reasoning = append(reasoning, fmt.Sprintf("inferred use case %q", useCase))
		}
	}
	intent.UseCase = useCase

	region := r.normalizeRegion(reqCtx.Region)
	if region != "" {
		reasoning = append(reasoning, fmt.Sprintf("region %s from request context", region))
	} else {
		region = r.extractor.Region(request)
		if region != catalog.RegionGlobal {
			reasoning = append(reasoning, fmt.Sprintf("inferred region %s", region))
		}
	}
	r.applyRegion(&intent, region)

	scored := r.extractor.Sections(request, useCase)
	if len(scored) > 2 {
		scored = scored[:2]
	}
	if len(scored) > 0 {
		confidence += 0.10
	}
	for _, s := range scored {
		intent.Sections = append(intent.Sections, SectionMatch{
			Name:         s.Section.Name,
			Deliverables: s.Section.Deliverables,
			Confidence:   s.Confidence(),
		})
		reasoning = append(reasoning, fmt.Sprintf("section %q scored %d", s.Section.Name, s.Score))

		for _, kw := range s.Section.Keywords {
			if strings.Contains(lower, kw) {
				n := len(s.Section.Deliverables)
				if n > 3 {
					n = 3
				}
				intent.SpecificDeliverables = append(intent.SpecificDeliverables, s.Section.Deliverables[:n]...)
				break
			}
		}
	}

	if profile, ok := r.catalog.UseCase(useCase); ok {
		intent.Formats = profile.PreferredFormats
		intent.UsageNotes = profile.Notes
		intent.SpecificDeliverables = append(intent.SpecificDeliverables, profile.SpecificDeliverables...)
	}

	intent.Confidence = clamp(confidence, 0, 1)
	intent.Reasoning = strings.Join(reasoning, "; ")
	return intent
}

// modelIntent is the strict JSON contract the model must produce.
type modelIntent struct {
	Products             []ProductMatch `json:"products"`
	Sections             []SectionMatch `json:"sections"`
	SpecificDeliverables []string       `json:"specific_deliverables"`
	UseCase              string         `json:"use_case"`
	Region               string         `json:"region"`
	Formats              []string       `json:"formats"`
	Confidence           float64        `json:"confidence"`
	Reasoning            string         `json:"reasoning"`
}

func (r *Resolver) resolveWithModel(ctx context.Context, request string, reqCtx Context) (Intent, error) {
	ctxJSON, _ := json.Marshal(reqCtx)

	history := []llm.Message{
		{Role: "system", Content: buildSystemPrompt(r.catalog)},
		{Role: "user", Content: fmt.Sprintf("Parse this asset request: %q (Context: %s)", request, ctxJSON)},
	}

	response, err := r.provider.Chat(ctx, history,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(1000),
	)
	if err != nil {
		return Intent{}, fmt.Errorf("model call: %w", err)
	}

	parsed, err := parseModelIntent(response)
	if err != nil {
		return Intent{}, err
	}

	intent := Intent{
		OriginalRequest:      request,
		Products:             parsed.Products,
		Sections:             parsed.Sections,
		SpecificDeliverables: parsed.SpecificDeliverables,
		UseCase:              parsed.UseCase,
		Region:               r.normalizeRegion(parsed.Region),
		Formats:              parsed.Formats,
		UsageNotes:           []string{},
		Confidence:           clamp(parsed.Confidence, 0.1, 1.0),
		Reasoning:            parsed.Reasoning,
		ParsingMethod:        MethodModelAssisted,
	}

	// Structural defaults; explicit request context beats model output.
	if intent.Products == nil {
		intent.Products = []ProductMatch{}
	}
	if intent.Sections == nil {
		intent.Sections = []SectionMatch{}
	}
	if intent.SpecificDeliverables == nil {
		intent.SpecificDeliverables = []string{}
	}
	if reqCtx.UseCase != "" {
		intent.UseCase = reqCtx.UseCase
	}
	if intent.UseCase == "" {
		intent.UseCase = catalog.UseCaseNone
	}
	if region := r.normalizeRegion(reqCtx.Region); region != "" {
		intent.Region = region
	}
	if intent.Region == "" {
		intent.Region = catalog.RegionGlobal
	}
	if len(intent.Formats) == 0 {
		intent.Formats = []string{"PNG"}
	}
	r.applyRegion(&intent, intent.Region)

	if profile, ok := r.catalog.UseCase(intent.UseCase); ok {
		intent.UsageNotes = profile.Notes
	}

	return intent, nil
}

func parseModelIntent(response string) (modelIntent, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	jsonContent := extractJSON(cleaned)
	if jsonContent == "" {
		return modelIntent{}, fmt.Errorf("no JSON object in model response")
	}

	var parsed modelIntent
	if err := json.Unmarshal([]byte(jsonContent), &parsed); err != nil {
		return modelIntent{}, fmt.Errorf("model response unmarshal: %w", err)
	}
	return parsed, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}
	return response[startIdx : endIdx+1]
}

// normalizeRegion uppercases region codes while keeping the lowercase
// "global" sentinel. Empty stays empty so callers can detect absence.
func (r *Resolver) normalizeRegion(region string) string {
	if region == "" {
		return ""
	}
	if strings.EqualFold(region, catalog.RegionGlobal) {
		return catalog.RegionGlobal
	}
	return strings.ToUpper(region)
}

// applyRegion sets Region, Brand and RegionalContext. Unknown regions
// (including "global") default to the Breville brand with a global theater.
func (r *Resolver) applyRegion(intent *Intent, region string) {
	intent.Region = region
	info, ok := r.catalog.Region(region)
	if !ok {
		info = catalog.RegionInfo{Brand: catalog.BrandBreville, Theater: catalog.TheaterGlobal}
	}
	intent.Brand = info.Brand
	intent.RegionalContext = info
}

// Minimal keyword tables used only when no catalog is configured.
var minimalProducts = []struct {
	re    *regexp.Regexp
	name  string
	model string
	sage  string
}{
	{regexp.MustCompile(`(?i)oracle jet|bes985|ses985`), "Oracle Jet", "BES985", "SES985"},
	{regexp.MustCompile(`(?i)dual boiler|bes995|ses995`), "Oracle Dual Boiler", "BES995", "SES995"},
	{regexp.MustCompile(`(?i)oracle touch|bes990|ses990`), "Oracle Touch", "BES990", "SES990"},
}

var minimalSections = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)logo|brand`), "Logos"},
	{regexp.MustCompile(`(?i)product photo|hero|product shot`), "Product Photography"},
	{regexp.MustCompile(`(?i)lifestyle|kitchen`), "Lifestyle Photography"},
	{regexp.MustCompile(`(?i)social|instagram|facebook`), "Social (incl. Videos, Statics, Stories & Keynotes)"},
	{regexp.MustCompile(`(?i)video|youtube`), "YouTube Videos"},
}

func (r *Resolver) resolveMinimal(request string, reqCtx Context) Intent {
	intent := Intent{
		OriginalRequest:      request,
		Products:             []ProductMatch{},
		Sections:             []SectionMatch{},
		SpecificDeliverables: []string{},
		UseCase:              catalog.UseCaseNone,
		Region:               catalog.RegionGlobal,
		Brand:                catalog.BrandBreville,
		RegionalContext:      catalog.RegionInfo{Brand: catalog.BrandBreville, Theater: catalog.TheaterGlobal},
		Formats:              []string{"PNG"},
		UsageNotes:           []string{},
		Confidence:           0.7,
		Reasoning:            "minimal keyword parsing without a catalog",
		ParsingMethod:        MethodMinimalFallback,
	}
	if reqCtx.UseCase != "" {
		intent.UseCase = reqCtx.UseCase
	}
	if region := r.normalizeRegion(reqCtx.Region); region != "" {
		intent.Region = region
	}

	for _, p := range minimalProducts {
		if p.re.MatchString(request) {
			intent.Products = append(intent.Products, ProductMatch{
				Name: p.name, ModelCode: p.model, SageModel: p.sage, Confidence: 0.9,
			})
			break
		}
	}
	for _, s := range minimalSections {
		if s.re.MatchString(request) {
			intent.Sections = append(intent.Sections, SectionMatch{Name: s.name, Confidence: 0.7})
			break
		}
	}
	return intent
}
