// Package catalog holds the static Vault knowledge base: the Breville/Sage
// product catalog, the official Brandfolder asset sections, the regional brand
// mapping and the use-case optimization profiles. The tables are built once at
// process start and never mutated; lookups that miss return ok=false, never an
// error, because callers use them as "is this known?" checks.
package catalog

import "strings"

// Product is one catalog entry. ModelCode is the Breville model number;
// SageModel is the equivalent model sold under the Sage brand in EMEA markets.
type Product struct {
	ModelCode   string
	SageModel   string
	Name        string
	Category    string
	SubCategory string
	Portfolio   string
	Regions     []string
	Aliases     []string
}

// ModelForBrand returns the regionally correct model code.
func (p Product) ModelForBrand(brand string) string {
	if brand == BrandSage && p.SageModel != "" {
		return p.SageModel
	}
	return p.ModelCode
}

// Section is one of the official Brandfolder sections.
type Section struct {
	Key          string
	Name         string
	Description  string
	Keywords     []string
	Deliverables []string
	UseCases     []string
}

// HasUseCase reports whether the section is declared applicable to the use case.
func (s Section) HasUseCase(useCase string) bool {
	for _, uc := range s.UseCases {
		if uc == useCase {
			return true
		}
	}
	return false
}

// RegionInfo maps a region code to its brand and sales theater.
type RegionInfo struct {
	Brand   string `json:"brand"`
	Theater string `json:"theater"`
}

// UseCaseProfile describes format and section preferences for a use case.
type UseCaseProfile struct {
	PreferredFormats     []string
	Notes                []string
	Sections             []string
	SpecificDeliverables []string
}

const (
	BrandBreville = "Breville"
	BrandSage     = "Sage"

	TheaterAPAC   = "APAC"
	TheaterUSCM   = "USCM"
	TheaterEMEA   = "EMEA"
	TheaterGlobal = "GLOBAL"

	RegionGlobal = "global"
	UseCaseNone  = "general"
)

// Catalog is the assembled, immutable knowledge base.
type Catalog struct {
	products []Product
	sections []Section
	regions  map[string]RegionInfo
	useCases map[string]UseCaseProfile
}

// New builds the default Vault catalog. Declaration order of products and
// sections is significant: extractors resolve ties by it.
func New() *Catalog {
	return &Catalog{
		products: defaultProducts,
		sections: defaultSections,
		regions:  defaultRegions,
		useCases: defaultUseCases,
	}
}

// Products returns the product table in declaration order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Sections returns the section table in declaration order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Region looks up the brand/theater mapping for a region code.
func (c *Catalog) Region(code string) (RegionInfo, bool) {
	info, ok := c.regions[strings.ToUpper(code)]
	return info, ok
}

// RegionCodes returns every declared region code.
func (c *Catalog) RegionCodes() []string {
	codes := make([]string, 0, len(c.regions))
	for code := range c.regions {
		codes = append(codes, code)
	}
	return codes
}

// UseCase looks up the optimization profile for a use-case name.
func (c *Catalog) UseCase(name string) (UseCaseProfile, bool) {
	profile, ok := c.useCases[name]
	return profile, ok
}

// SectionByName finds a section by its display name.
func (c *Catalog) SectionByName(name string) (Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// SectionByKey finds a section by its stable key.
func (c *Catalog) SectionByKey(key string) (Section, bool) {
	for _, s := range c.sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
