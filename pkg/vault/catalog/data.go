package catalog

// Static tables sourced from the official Brandfolder documentation for the
// Breville Vault. Append new entries at the end; matching iterates in
// declaration order and earlier entries win ties.

var defaultProducts = []Product{
	{
		ModelCode:   "BES985",
		SageModel:   "SES985",
		Name:        "Oracle Jet",
		Category:    "Coffee",
		SubCategory: "Automatic Espresso Machines",
		Portfolio:   "Coffee",
		Regions:     []string{"AU", "US", "CA", "GB", "DE"},
		Aliases:     []string{"oracle jet", "jet"},
	},
	{
		ModelCode:   "BES995",
		SageModel:   "SES995",
		Name:        "Oracle Dual Boiler",
		Category:    "Coffee",
		SubCategory: "Espresso Machines",
		Portfolio:   "Coffee",
		Regions:     []string{"AU", "US", "CA", "GB", "DE"},
		Aliases:     []string{"oracle dual boiler", "dual boiler", "oracle dual"},
	},
	{
		ModelCode:   "BES990",
		SageModel:   "SES990",
		Name:        "Oracle Touch",
		Category:    "Coffee",
		SubCategory: "Automatic Espresso Machines",
		Portfolio:   "Coffee",
		Regions:     []string{"AU", "US", "CA", "GB", "DE"},
		Aliases:     []string{"oracle touch", "touch"},
	},
}

var defaultSections = []Section{
	{
		Key:          "product_photography",
		Name:         "Product Photography",
		Description:  "Hero images for web product pages and detail pages",
		Keywords:     []string{"product photo", "hero image", "product shot", "product image"},
		Deliverables: []string{"Low Res Product Photography", "Spare Parts Photography"},
		UseCases:     []string{"web", "ecommerce", "product pages"},
	},
	{
		Key:          "lifestyle_photography",
		Name:         "Lifestyle Photography",
		Description:  "Products in kitchen environment with food and coffee",
		Keywords:     []string{"lifestyle", "kitchen", "in use", "environment", "lifestyle photo"},
		Deliverables: []string{"Lifestyle Photography"},
		UseCases:     []string{"marketing", "social", "web", "advertising"},
	},
	{
		Key:         "digital_assets",
		Name:        "Digital Assets (incl. Websites, Programmatic & EDM)",
		Description: "Online assets including PDP, CLP, FLP, web banners, icons, 3D models",
		Keywords:    []string{"web banner", "icon", "3d model", "programmatic", "edm", "digital"},
		Deliverables: []string{
			"3D Model", "Amazon A+", "Amazon Infographics", "Colour Swatches",
			"EDM", "GIF", "Icon", "Key Visual", "PDP", "PLP", "Web Banners and Static Banners",
			"Website / App", "Programmatic Ads",
		},
		UseCases: []string{"web", "digital", "online", "ecommerce"},
	},
	{
		Key:         "social_media",
		Name:        "Social (incl. Videos, Statics, Stories & Keynotes)",
		Description: "Social media assets for paid and organic content",
		Keywords:    []string{"social", "instagram", "facebook", "social media", "stories"},
		Deliverables: []string{
			"Instagram / Facebook - Campaign", "Instagram / Facebook - NPD",
			"Organic Social Assets", "Paid Social Assets", "Social Advertising",
			"Social Photography", "Social Video cutdowns",
		},
		UseCases: []string{"social", "instagram", "facebook", "marketing"},
	},
	{
		Key:         "point_of_sale",
		Name:        "Point of Sales (POS)",
		Description: "In-store retail materials including banners, cards, displays",
		Keywords:    []string{"pos", "retail", "in-store", "banner", "display", "counter card"},
		Deliverables: []string{
			"T4 Horizontal", "T4 Vertical", "Hanging Banner", "Counter Card",
			"Banner POS", "Brochure", "Catalogue", "Display Fixture", "Posters",
		},
		UseCases: []string{"retail", "in-store", "pos", "display"},
	},
	{
		Key:         "youtube_videos",
		Name:        "YouTube Videos",
		Description: "Video content including tutorials, demos, and promotional videos",
		Keywords:    []string{"video", "youtube", "tutorial", "demonstration", "how to"},
		Deliverables: []string{
			"Product Demonstration Video", "Tutorial/How to videos", "Care and Maintenance Video",
			"Training Video", "TVC", "Youtube Thumbnails",
		},
		UseCases: []string{"youtube", "video", "training", "tutorial"},
	},
	{
		Key:          "logos",
		Name:         "Logos",
		Description:  "Brand logos and partner logos",
		Keywords:     []string{"logo", "brand", "breville logo", "sage logo"},
		Deliverables: []string{"Brands & Logos", "Partner Logos"},
		UseCases:     []string{"branding", "presentations", "web", "print"},
	},
	{
		Key:          "packaging",
		Name:         "Packaging",
		Description:  "Box images, packaging layouts, labels and master cartons",
		Keywords:     []string{"packaging", "box", "label", "carton"},
		Deliverables: []string{"Box Images", "Packaging Layouts", "Labels", "Master Carton"},
		UseCases:     []string{"retail", "ecommerce"},
	},
	{
		Key:          "toolkits",
		Name:         "Toolkits (incl. Sell-In, Retail Kits)",
		Description:  "Launch toolkits and retail presentation decks",
		Keywords:     []string{"toolkit", "sell-in", "retail kit", "launch kit"},
		Deliverables: []string{"Launch Toolkit", "Retail Presentation Deck"},
		UseCases:     []string{"retail", "sales"},
	},
	{
		Key:          "instruction_booklets",
		Name:         "Instruction Booklets",
		Description:  "Quick start guides, safety guides and manuals",
		Keywords:     []string{"manual", "instruction", "quick start", "safety guide", "booklet"},
		Deliverables: []string{"Quick Start Guide", "Safety Guide", "Instruction Manual"},
		UseCases:     []string{"support", "training"},
	},
	{
		Key:          "fact_sheets",
		Name:         "Fact Sheets",
		Description:  "Product specification sheets for retailers",
		Keywords:     []string{"fact sheet", "spec sheet", "specification"},
		Deliverables: []string{"Product Specification Sheet"},
		UseCases:     []string{"retail", "sales"},
	},
	{
		Key:          "recipes_food",
		Name:         "Recipes & Food",
		Description:  "Recipe photography, food videos and recipe cards",
		Keywords:     []string{"recipe", "food"},
		Deliverables: []string{"Recipe Photography", "Food Videos", "Recipe Cards"},
		UseCases:     []string{"social", "marketing", "web"},
	},
	{
		Key:          "brand_guidelines",
		Name:         "Brand Guidelines",
		Description:  "Brand style guides and presentation templates",
		Keywords:     []string{"brand guidelines", "style guide", "guidelines", "template"},
		Deliverables: []string{"Brand Style Guide", "Presentation Templates"},
		UseCases:     []string{"branding", "presentations"},
	},
	{
		Key:          "working_files",
		Name:         "Working Files for Translation",
		Description:  "Multi-language asset source files",
		Keywords:     []string{"translation", "working file", "multi-language", "localisation"},
		Deliverables: []string{"Translation Source Files"},
		UseCases:     []string{"localization"},
	},
}

var defaultRegions = map[string]RegionInfo{
	"AU": {Brand: BrandBreville, Theater: TheaterAPAC},
	"US": {Brand: BrandBreville, Theater: TheaterUSCM},
	"CA": {Brand: BrandBreville, Theater: TheaterUSCM},
	"GB": {Brand: BrandSage, Theater: TheaterEMEA},
	"UK": {Brand: BrandSage, Theater: TheaterEMEA},
	"DE": {Brand: BrandSage, Theater: TheaterEMEA},
	"EU": {Brand: BrandSage, Theater: TheaterEMEA},
}

var defaultUseCases = map[string]UseCaseProfile{
	"presentation": {
		PreferredFormats: []string{"PNG", "SVG"},
		Notes:            []string{"Transparent backgrounds ideal", "High resolution for projectors"},
		Sections:         []string{"logos", "product_photography", "digital_assets"},
	},
	"web": {
		PreferredFormats: []string{"PNG", "WebP", "SVG"},
		Notes:            []string{"Optimized file sizes", "Responsive design ready"},
		Sections:         []string{"digital_assets", "product_photography", "logos"},
	},
	"social": {
		PreferredFormats: []string{"PNG", "JPG", "MP4"},
		Notes:            []string{"Platform-specific dimensions", "Engaging compositions"},
		Sections:         []string{"social_media", "lifestyle_photography"},
	},
	"retail": {
		PreferredFormats: []string{"PDF", "EPS", "PNG"},
		Notes:            []string{"High resolution for print", "CMYK color space"},
		Sections:         []string{"point_of_sale", "logos", "product_photography"},
	},
	"amazon": {
		PreferredFormats:     []string{"JPG", "PNG"},
		Notes:                []string{"Amazon-specific requirements", "A+ content optimized"},
		Sections:             []string{"digital_assets", "product_photography"},
		SpecificDeliverables: []string{"Amazon A+", "Amazon Infographics"},
	},
}
