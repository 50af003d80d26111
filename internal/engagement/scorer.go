// Package engagement folds raw engagement counters into a single content
// effectiveness score and letter grade.
package engagement

import (
	"math"

	"marketscore/internal/audit"
	"marketscore/internal/textstat"
)

const scoreAlgorithm = "weighted composite of normalized rates: " +
	"ctr*0.30 + share_rate*0.25 + comment_rate*0.20 + conversion_rate*0.25, " +
	"each rate scored against a fixed benchmark, 0-100 scale"

// Metrics holds raw engagement counters. Missing counters are zero.
type Metrics struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Shares      float64 `json:"shares"`
	Comments    float64 `json:"comments"`
	Conversions float64 `json:"conversions"`
}

// Result is the effectiveness breakdown for one piece of content.
type Result struct {
	audit.Meta

	Score          float64            `json:"score"`
	Grade          string             `json:"grade"`
	Rates          map[string]float64 `json:"rates"`
	ComponentScore map[string]float64 `json:"component_scores"`
}

// Benchmarks a rate must reach for full marks on its component. A 5% CTR is
// already excellent for B2B content, so rates are scored relative to these
// rather than on an absolute 0-1 scale.
var rateBenchmarks = map[string]float64{
	"ctr":             0.05,
	"share_rate":      0.02,
	"comment_rate":    0.01,
	"conversion_rate": 0.02,
}

var componentWeights = map[string]float64{
	"ctr":             0.30,
	"share_rate":      0.25,
	"comment_rate":    0.20,
	"conversion_rate": 0.25,
}

// Score computes the weighted effectiveness composite. All-zero metrics is a
// valid input and yields score 0, grade F.
func Score(m Metrics) Result {
	impressions := math.Max(m.Impressions, 1)

	rates := map[string]float64{
		"ctr":             m.Clicks / impressions,
		"share_rate":      m.Shares / impressions,
		"comment_rate":    m.Comments / impressions,
		"conversion_rate": m.Conversions / impressions,
	}

	components := make(map[string]float64, len(rates))
	for name, rate := range rates {
		components[name] = textstat.Clamp(rate/rateBenchmarks[name], 0, 1) * 100
	}

	score := textstat.WeightedAverage(components, componentWeights)

	return Result{
		Meta:           audit.Verified(scoreAlgorithm),
		Score:          round2(score),
		Grade:          GradeFor(score),
		Rates:          rates,
		ComponentScore: components,
	}
}

// GradeFor maps a 0-100 score to a letter grade. Thresholds are fixed and
// monotonic: the same score always yields the same grade.
func GradeFor(score float64) string {
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

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
