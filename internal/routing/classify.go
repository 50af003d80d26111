// Package routing is the deterministic supervisor: a keyword industry
// classifier and a static routing matrix mapping (task type, industry) to an
// ordered agent sequence. There is no learned or model-driven component
// anywhere in this package.
package routing

import (
	"strings"
)

// IndustryType is the coarse segmentation the routing matrix keys on.
type IndustryType string

const (
	IndustryRegulated  IndustryType = "regulated"
	IndustryCommercial IndustryType = "commercial"
	IndustryUnknown    IndustryType = "unknown"
)

// Keyword sets are fixed: changing them changes routing for every caller, so
// additions go through review like any routing change.
var regulatedKeywords = []string{
	"healthcare", "hospital", "medical", "clinical", "pharma", "biotech",
	"bank", "banking", "financial", "finance", "insurance", "fintech",
	"government", "federal", "municipal", "public sector",
	"energy", "utility", "utilities", "oil", "gas",
	"education", "university", "school", "academic",
}

var commercialKeywords = []string{
	"saas", "software", "tech startup", "b2b",
	"retail", "ecommerce", "e-commerce", "consumer",
	"manufacturing", "logistics", "supply chain",
	"services", "agency", "consulting",
	"media", "entertainment", "publishing",
	"hospitality", "restaurant", "travel",
}

// ClassifyIndustry buckets a free-text business context by counting keyword
// hits in each set. The higher count wins; an exact tie classifies as
// regulated, since under-applying compliance review is the costlier mistake.
// No hits on either side is unknown.
func ClassifyIndustry(context string) IndustryType {
	lowered := strings.ToLower(context)

	regulated := countMatches(lowered, regulatedKeywords)
	commercial := countMatches(lowered, commercialKeywords)

	switch {
	case regulated == 0 && commercial == 0:
		return IndustryUnknown
	case regulated >= commercial:
		return IndustryRegulated
	default:
		return IndustryCommercial
	}
}

func countMatches(lowered string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			n++
		}
	}
	return n
}
