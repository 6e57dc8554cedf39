// Package suggest derives follow-up suggestions from a resolved intent and
// its results. Every rule is independent; adding signals to a request never
// triggers rules that a weaker version of the request would not have.
package suggest

import (
	"fmt"
	"regexp"
	"strings"

	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"
)

// Suggestion is one actionable refinement hint.
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

var productPhotoWords = regexp.MustCompile(`(?i)product|photo`)

// Engine evaluates the suggestion rules.
type Engine struct{}

// NewEngine creates a suggestion engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Suggest runs all rules in fixed order and returns every one that fires.
func (e *Engine) Suggest(in intent.Intent, results []result.AssetResult) []Suggestion {
	suggestions := []Suggestion{}

	if len(results) == 0 {
		action := `Try: "Oracle Jet coffee machine" or "Breville espresso machine logos"`
		if product, ok := in.PrimaryProduct(); ok {
			action = fmt.Sprintf("Try: %q or %q",
				product.Name+" photography", product.Name+" in kitchen")
		}
		suggestions = append(suggestions, Suggestion{
			Type:    "no_results",
			Message: "No matching assets found with current parameters.",
			Action:  action,
		})
	}

	if !in.HasProduct() {
		suggestions = append(suggestions, Suggestion{
			Type:    "product_recommendation",
			Message: "Generic request detected. Specify a Breville product for far better results.",
			Action:  `Try: "Oracle Jet social posts" or "Sage Oracle Dual Boiler Amazon listing"`,
		})
	}

	if in.Confidence < 0.8 {
		suggestions = append(suggestions, Suggestion{
			Type:    "confidence_boost",
			Message: "Confidence can be improved with more specific details.",
			Action:  `Try: "Oracle Jet hero photography for Australian e-commerce site" or "Sage logo white background for UK presentation"`,
		})
	}

	if in.UseCase == catalog.UseCaseNone {
		suggestions = append(suggestions, Suggestion{
			Type:    "use_case_optimization",
			Message: "Format and sizing can be optimized if you specify intended use.",
			Action:  `Add context: "for my presentation", "for Instagram post", "for Amazon listing", or "for retail display"`,
		})
	}

	if in.Region == catalog.RegionGlobal && in.HasProduct() {
		suggestions = append(suggestions, Suggestion{
			Type:    "regional_optimization",
			Message: "Region-specific branding available (Breville vs Sage).",
			Action:  `Specify market: "for UK customers" (Sage branding) or "for Australian market" (Breville branding)`,
		})
	}

	if len(results) > 0 && len(in.Sections) == 1 {
		if s := crossSell(in); s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	return suggestions
}

func crossSell(in intent.Intent) *Suggestion {
	section := in.Sections[0].Name

	if section == "Product Photography" {
		rewritten := productPhotoWords.ReplaceAllString(in.OriginalRequest, "lifestyle scene")
		return &Suggestion{
			Type:    "cross_sell",
			Message: "Lifestyle photography often performs better for engagement.",
			Action:  fmt.Sprintf("Try: %q", rewritten),
		}
	}

	if strings.Contains(section, "Social") {
		productName := "product"
		if product, ok := in.PrimaryProduct(); ok {
			productName = product.Name
		}
		return &Suggestion{
			Type:    "video_recommendation",
			Message: "Video content generates far more engagement on social platforms.",
			Action:  fmt.Sprintf("Try: %q or %q", productName+" demo video", "how to use "+productName),
		}
	}
	return nil
}
