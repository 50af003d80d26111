// Package trend aggregates multiple market-signal sources into a single
// 0-100 trend score with a direction label and a confidence tier, plus a
// momentum calculation comparing two time-separated scores. Each source has
// one fixed normalization formula; the blend is a weighted average
// renormalized over whichever sources are actually present.
package trend

import (
	"math"

	"marketscore/internal/audit"
	"marketscore/internal/textstat"
)

const scoreAlgorithm = "per-source normalization (google_trends interest ratio, " +
	"gov_employment 50+growth*5, news_mentions tiered 20/10/5 x 1.0/0.8/0.6, " +
	"job_postings count+growth halves, social_sentiment rescaled [-1,1]->[0,100]); " +
	"weighted average 0.30/0.25/0.20/0.15/0.10 renormalized over present sources"

// Source weights. Missing sources redistribute proportionally: the blend
// divides by the sum of the present weights, never by 1.0.
var sourceWeights = map[string]float64{
	"google_trends":    0.30,
	"gov_employment":   0.25,
	"news_mentions":    0.20,
	"job_postings":     0.15,
	"social_sentiment": 0.10,
}

// GoogleTrends is relative search interest for the topic.
type GoogleTrends struct {
	CurrentInterest float64 `json:"current_interest"`
	AvgInterest     float64 `json:"avg_interest"`
}

// GovEmployment is sector growth from government employment statistics.
type GovEmployment struct {
	GrowthRatePct float64 `json:"growth_rate_pct"`
}

// NewsMentions counts mentions by outlet tier.
type NewsMentions struct {
	Tier1 int `json:"tier1"`
	Tier2 int `json:"tier2"`
	Tier3 int `json:"tier3"`
}

// JobPostings is hiring demand for the topic.
type JobPostings struct {
	Count     int     `json:"count"`
	GrowthPct float64 `json:"growth_pct"`
}

// SocialSentiment is average sentiment in [-1, 1].
type SocialSentiment struct {
	AvgSentiment float64 `json:"avg_sentiment"`
}

// Sources bundles whichever signal sources the caller collected. A nil field
// means that source was unavailable.
type Sources struct {
	GoogleTrends    *GoogleTrends    `json:"google_trends,omitempty"`
	GovEmployment   *GovEmployment   `json:"gov_employment,omitempty"`
	NewsMentions    *NewsMentions    `json:"news_mentions,omitempty"`
	JobPostings     *JobPostings     `json:"job_postings,omitempty"`
	SocialSentiment *SocialSentiment `json:"social_sentiment,omitempty"`
}

// Result is the blended trend assessment for a topic.
type Result struct {
	audit.Meta

	Topic        string             `json:"topic"`
	TrendScore   float64            `json:"trend_score"`
	Direction    string             `json:"direction"`
	Confidence   string             `json:"confidence"`
	SourceScores map[string]float64 `json:"source_scores"`
	SourcesUsed  int                `json:"sources_used"`
}

// Score blends the present sources into one trend score. An empty bundle is a
// defined "no data" result, not a failure.
func Score(topic string, sources Sources) Result {
	sourceScores := make(map[string]float64)

	if s := sources.GoogleTrends; s != nil {
		sourceScores["google_trends"] = googleTrendsScore(*s)
	}
	if s := sources.GovEmployment; s != nil {
		sourceScores["gov_employment"] = govEmploymentScore(*s)
	}
	if s := sources.NewsMentions; s != nil {
		sourceScores["news_mentions"] = newsMentionsScore(*s)
	}
	if s := sources.JobPostings; s != nil {
		sourceScores["job_postings"] = jobPostingsScore(*s)
	}
	if s := sources.SocialSentiment; s != nil {
		sourceScores["social_sentiment"] = socialSentimentScore(*s)
	}

	if len(sourceScores) == 0 {
		return Result{
			Meta:         audit.Degenerate(scoreAlgorithm, "no data sources provided"),
			Topic:        topic,
			Direction:    "neutral",
			Confidence:   "low",
			SourceScores: sourceScores,
		}
	}

	score := textstat.WeightedAverage(sourceScores, sourceWeights)

	return Result{
		Meta:         audit.Verified(scoreAlgorithm),
		Topic:        topic,
		TrendScore:   round2(score),
		Direction:    directionFor(score),
		Confidence:   confidenceFor(len(sourceScores)),
		SourceScores: sourceScores,
		SourcesUsed:  len(sourceScores),
	}
}

func googleTrendsScore(s GoogleTrends) float64 {
	if s.AvgInterest == 0 {
		return 50
	}
	return math.Min(s.CurrentInterest/s.AvgInterest*50, 100)
}

func govEmploymentScore(s GovEmployment) float64 {
	return textstat.Clamp(50+s.GrowthRatePct*5, 0, 100)
}

func newsMentionsScore(s NewsMentions) float64 {
	weighted := float64(s.Tier1)*20*1.0 + float64(s.Tier2)*10*0.8 + float64(s.Tier3)*5*0.6
	return math.Min(weighted, 100)
}

func jobPostingsScore(s JobPostings) float64 {
	countComponent := math.Min(float64(s.Count)*0.5, 50)
	growthComponent := textstat.Clamp(25+s.GrowthPct, 0, 50)
	return countComponent + growthComponent
}

func socialSentimentScore(s SocialSentiment) float64 {
	return textstat.Clamp((s.AvgSentiment+1)/2*100, 0, 100)
}

func confidenceFor(sourceCount int) string {
	switch {
	case sourceCount >= 4:
		return "high"
	case sourceCount >= 2:
		return "medium"
	default:
		return "low"
	}
}

func directionFor(score float64) string {
	switch {
	case score >= 70:
		return "strong_positive"
	case score >= 55:
		return "positive"
	case score >= 45:
		return "neutral"
	case score >= 30:
		return "negative"
	default:
		return "strong_negative"
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
