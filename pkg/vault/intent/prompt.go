package intent

import (
	"fmt"
	"strings"

	"dam-butler-be/pkg/vault/catalog"
)

// buildSystemPrompt renders the intent-parsing instructions from the live
// catalog so the model always sees the current product and section tables.
func buildSystemPrompt(c *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("You are an expert at parsing asset requests for the Breville Vault digital asset management system.\n")
	b.WriteString("Your ONLY job is to extract structured intent. You do NOT search for assets.\n\n")

	b.WriteString("PRODUCTS (Breville model / Sage model - name):\n")
	for _, p := range c.Products() {
		b.WriteString(fmt.Sprintf("- %s / %s - %s (%s, aliases: %s)\n",
			p.ModelCode, p.SageModel, p.Name, p.SubCategory, strings.Join(p.Aliases, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("OFFICIAL VAULT SECTIONS:\n")
	for _, s := range c.Sections() {
		b.WriteString(fmt.Sprintf("- %s (keywords: %s)\n", s.Name, strings.Join(s.Keywords, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("REGIONS AND BRANDS:\n")
	b.WriteString("- AU: Breville (APAC), US/CA: Breville (USCM), GB/UK/DE/EU: Sage (EMEA)\n")
	b.WriteString("- A mention of the Sage brand implies an EMEA market (default GB)\n\n")

	b.WriteString("USE CASES: presentation, web, social, amazon, retail, print, email, video, general\n\n")

	b.WriteString("CONFIDENCE SCORING:\n")
	b.WriteString("- 0.9-1.0: explicit product AND section (\"BES985 logo\")\n")
	b.WriteString("- 0.7-0.9: clear product or clear section with context\n")
	b.WriteString("- 0.5-0.7: partial signals, inferred intent\n")
	b.WriteString("- below 0.5: vague or ambiguous request\n\n")

	b.WriteString("Respond with ONLY valid JSON in exactly this shape:\n")
	b.WriteString("{\n")
	b.WriteString("  \"products\": [{\"name\": \"Oracle Jet\", \"modelNumber\": \"BES985\", \"sageModel\": \"SES985\", \"category\": \"Automatic Espresso Machines\", \"confidence\": 0.95}],\n")
	b.WriteString("  \"sections\": [{\"name\": \"Logos\", \"deliverables\": [\"Brands & Logos\"], \"confidence\": 0.9}],\n")
	b.WriteString("  \"specific_deliverables\": [\"Brands & Logos\"],\n")
	b.WriteString("  \"use_case\": \"presentation\",\n")
	b.WriteString("  \"region\": \"AU\",\n")
	b.WriteString("  \"formats\": [\"PNG\", \"SVG\"],\n")
	b.WriteString("  \"confidence\": 0.95,\n")
	b.WriteString("  \"reasoning\": \"Brief explanation\"\n")
	b.WriteString("}\n")
	b.WriteString("Use section names exactly as listed. Use region codes AU, US, CA, GB, DE, EU or \"global\".")

	return b.String()
}
