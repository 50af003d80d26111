// Package seo scores on-page SEO factors with fixed rules: keyword usage and
// placement, heading structure, meta tag quality, link presence, and image
// alt-text coverage. Sub-scores sum to 100 and every run of the same input
// produces the same breakdown and recommendations.
package seo

import (
	"math"
	"sort"
	"strings"

	"marketscore/internal/audit"
)

const scoreAlgorithm = "rule-based component scoring: keyword usage 30 " +
	"(density band 1-3% + title/first-paragraph/heading placement), heading " +
	"structure 20, meta tags 20 (title 50-60 chars, description 150-160), " +
	"links 15, image alt coverage 15; recommendations ordered by lowest component fraction"

// Component point budgets. They sum to 100.
var componentBudgets = map[string]float64{
	"keyword_usage":     30,
	"heading_structure": 20,
	"meta_tags":         20,
	"links":             15,
	"images":            15,
}

// PageMeta is the metadata scored alongside the body content.
type PageMeta struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Slug            string `json:"slug"`
}

// Result is the full SEO assessment of one page.
type Result struct {
	audit.Meta

	SEOScore        float64            `json:"seo_score"`
	Grade           string             `json:"grade"`
	ComponentScores map[string]float64 `json:"component_scores"`
	Recommendations []string           `json:"recommendations"`
	Technical       TechnicalMetrics   `json:"technical_metrics"`
}

// Score evaluates HTML (or plain-text) content against the target keywords.
// Empty content yields a zero result with an explicit error.
func Score(content string, meta PageMeta, targetKeywords []string) Result {
	page := parsePage(content)

	if page.WordCount == 0 {
		return Result{
			Meta:            audit.Degenerate(scoreAlgorithm, "content is empty"),
			Grade:           "F",
			ComponentScores: map[string]float64{},
			Recommendations: []string{"add body content before scoring"},
		}
	}

	components := map[string]float64{
		"keyword_usage":     keywordScore(page, meta, targetKeywords),
		"heading_structure": headingScore(page),
		"meta_tags":         metaTagScore(meta),
		"links":             linkScore(page),
		"images":            imageScore(page),
	}

	total := 0.0
	for _, v := range components {
		total += v
	}

	return Result{
		Meta:            audit.Verified(scoreAlgorithm),
		SEOScore:        math.Round(total*100) / 100,
		Grade:           gradeFor(total),
		ComponentScores: components,
		Recommendations: recommendations(components),
		Technical:       page.TechnicalMetrics,
	}
}

// keywordScore awards up to 12 points for density in the 1-3% band and 6
// points each for placement in the title, the first paragraph, and a heading.
func keywordScore(page parsedPage, meta PageMeta, keywords []string) float64 {
	normalized := normalizeKeywords(keywords)
	if len(normalized) == 0 {
		return 0
	}

	occurrences := 0
	body := strings.ToLower(page.PlainText)
	for _, kw := range normalized {
		occurrences += strings.Count(body, kw)
	}

	density := 100 * float64(occurrences) / float64(page.WordCount)

	score := densityPoints(density)
	if containsAny(meta.Title, normalized) {
		score += 6
	}
	if containsAny(page.FirstParagraph, normalized) {
		score += 6
	}
	for _, h := range page.Headings {
		if containsAny(h.Text, normalized) {
			score += 6
			break
		}
	}
	return score
}

func densityPoints(density float64) float64 {
	switch {
	case density >= 1 && density <= 3:
		return 12
	case (density >= 0.5 && density < 1) || (density > 3 && density <= 4.5):
		return 8
	case density > 0:
		return 4
	default:
		return 0
	}
}

// headingScore awards 8 points for exactly one H1, 8 for two or more H2s,
// and 4 for any H3.
func headingScore(page parsedPage) float64 {
	score := 0.0

	switch page.H1Count {
	case 1:
		score += 8
	case 0:
		// no points
	default:
		score += 4 // multiple H1s dilute the page topic
	}

	switch {
	case page.H2Count >= 2:
		score += 8
	case page.H2Count == 1:
		score += 4
	}

	if page.H3Count > 0 {
		score += 4
	}
	return score
}

// metaTagScore awards up to 10 points each for a title in the 50-60 char
// band and a description in the 150-160 char band, with partial credit for
// near misses.
func metaTagScore(meta PageMeta) float64 {
	return bandPoints(len(meta.Title), 50, 60, 40, 70) +
		bandPoints(len(meta.MetaDescription), 150, 160, 120, 180)
}

func bandPoints(length, idealLo, idealHi, nearLo, nearHi int) float64 {
	switch {
	case length >= idealLo && length <= idealHi:
		return 10
	case length >= nearLo && length <= nearHi:
		return 6
	case length > 0:
		return 3
	default:
		return 0
	}
}

// linkScore awards 8 points for two or more internal links and 7 for at
// least one external link.
func linkScore(page parsedPage) float64 {
	score := 0.0

	switch {
	case page.InternalLinks >= 2:
		score += 8
	case page.InternalLinks == 1:
		score += 4
	}

	if page.ExternalLinks >= 1 {
		score += 7
	}
	return score
}

// imageScore is alt-text coverage scaled to the budget. A page with no images
// gets half credit: nothing is broken, but an illustration is missing.
func imageScore(page parsedPage) float64 {
	if page.ImageCount == 0 {
		return componentBudgets["images"] / 2
	}
	coverage := float64(page.ImagesWithAlt) / float64(page.ImageCount)
	return math.Round(coverage*componentBudgets["images"]*100) / 100
}

var componentRecommendations = map[string]string{
	"keyword_usage":     "work target keywords into the title, first paragraph, and one heading at 1-3% density",
	"heading_structure": "use a single H1 with at least two H2 sections and supporting H3s",
	"meta_tags":         "write a 50-60 character title tag and a 150-160 character meta description",
	"links":             "add at least two internal links and one external reference",
	"images":            "add descriptive alt text to every image",
}

// recommendations lists fixes for every component below its budget, worst
// fraction first; ties break alphabetically so output stays deterministic.
func recommendations(components map[string]float64) []string {
	type deficit struct {
		name     string
		fraction float64
	}

	deficits := make([]deficit, 0, len(components))
	for name, score := range components {
		budget := componentBudgets[name]
		if score >= budget {
			continue
		}
		deficits = append(deficits, deficit{name: name, fraction: score / budget})
	}

	sort.Slice(deficits, func(i, j int) bool {
		if deficits[i].fraction != deficits[j].fraction {
			return deficits[i].fraction < deficits[j].fraction
		}
		return deficits[i].name < deficits[j].name
	})

	recs := make([]string, 0, len(deficits))
	for _, d := range deficits {
		recs = append(recs, componentRecommendations[d.name])
	}
	return recs
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
