package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSingleSource(t *testing.T) {
	res := Score("edge computing", Sources{
		GoogleTrends: &GoogleTrends{CurrentInterest: 100, AvgInterest: 50},
	})

	// min(100/50*50, 100) = 100 from the only source present.
	assert.Equal(t, 100.0, res.TrendScore)
	assert.Equal(t, "strong_positive", res.Direction)
	assert.Equal(t, "low", res.Confidence)
	assert.Equal(t, 1, res.SourcesUsed)
	assert.True(t, res.IsVerified)
	assert.Empty(t, res.Error)
}

func TestScoreEmptyBundle(t *testing.T) {
	res := Score("ghost topic", Sources{})

	assert.Equal(t, 0.0, res.TrendScore)
	assert.Equal(t, "no data sources provided", res.Error)
	assert.Equal(t, "low", res.Confidence)
	assert.True(t, res.IsVerified)
	assert.NotEmpty(t, res.Algorithm)
}

func TestSourceFormulas(t *testing.T) {
	tests := []struct {
		name     string
		sources  Sources
		source   string
		expected float64
	}{
		{
			name:     "google trends defaults to 50 when average is zero",
			sources:  Sources{GoogleTrends: &GoogleTrends{CurrentInterest: 80, AvgInterest: 0}},
			source:   "google_trends",
			expected: 50,
		},
		{
			name:     "google trends caps at 100",
			sources:  Sources{GoogleTrends: &GoogleTrends{CurrentInterest: 500, AvgInterest: 50}},
			source:   "google_trends",
			expected: 100,
		},
		{
			name:     "employment growth centered at 50",
			sources:  Sources{GovEmployment: &GovEmployment{GrowthRatePct: 4}},
			source:   "gov_employment",
			expected: 70,
		},
		{
			name:     "employment decline clamps at 0",
			sources:  Sources{GovEmployment: &GovEmployment{GrowthRatePct: -20}},
			source:   "gov_employment",
			expected: 0,
		},
		{
			name:     "news mentions weight tiers",
			sources:  Sources{NewsMentions: &NewsMentions{Tier1: 2, Tier2: 3, Tier3: 4}},
			source:   "news_mentions",
			expected: 2*20 + 3*10*0.8 + 4*5*0.6, // 76
		},
		{
			name:     "news mentions cap at 100",
			sources:  Sources{NewsMentions: &NewsMentions{Tier1: 10}},
			source:   "news_mentions",
			expected: 100,
		},
		{
			name:     "job postings combine count and growth halves",
			sources:  Sources{JobPostings: &JobPostings{Count: 40, GrowthPct: 10}},
			source:   "job_postings",
			expected: 20 + 35,
		},
		{
			name:     "job postings caps both halves",
			sources:  Sources{JobPostings: &JobPostings{Count: 1000, GrowthPct: 100}},
			source:   "job_postings",
			expected: 100,
		},
		{
			name:     "neutral sentiment maps to 50",
			sources:  Sources{SocialSentiment: &SocialSentiment{AvgSentiment: 0}},
			source:   "social_sentiment",
			expected: 50,
		},
		{
			name:     "max sentiment maps to 100",
			sources:  Sources{SocialSentiment: &SocialSentiment{AvgSentiment: 1}},
			source:   "social_sentiment",
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score("topic", tt.sources)
			assert.InDelta(t, tt.expected, res.SourceScores[tt.source], 1e-9)
		})
	}
}

func TestScoreRenormalizesOverPresentSources(t *testing.T) {
	// google_trends 100 (weight .30) + social_sentiment 50 (weight .10):
	// (100*.30 + 50*.10) / (.30+.10) = 87.5 -- NOT (30+5)/1.0.
	res := Score("topic", Sources{
		GoogleTrends:    &GoogleTrends{CurrentInterest: 100, AvgInterest: 50},
		SocialSentiment: &SocialSentiment{AvgSentiment: 0},
	})

	assert.InDelta(t, 87.5, res.TrendScore, 1e-9)
	assert.Equal(t, "medium", res.Confidence)
	assert.Equal(t, 2, res.SourcesUsed)
}

func TestScoreIsIndependentOfAbsentSources(t *testing.T) {
	with := Score("topic", Sources{
		GovEmployment: &GovEmployment{GrowthRatePct: 2},
		NewsMentions:  &NewsMentions{Tier1: 1, Tier2: 1},
	})
	// Adding an unrelated nil source cannot happen by construction; repeating
	// the same call must return the identical value.
	assert.Equal(t, with, Score("topic", Sources{
		GovEmployment: &GovEmployment{GrowthRatePct: 2},
		NewsMentions:  &NewsMentions{Tier1: 1, Tier2: 1},
	}))
}

func TestScoreConfidenceTiers(t *testing.T) {
	all := Sources{
		GoogleTrends:    &GoogleTrends{CurrentInterest: 60, AvgInterest: 60},
		GovEmployment:   &GovEmployment{GrowthRatePct: 1},
		NewsMentions:    &NewsMentions{Tier1: 1},
		JobPostings:     &JobPostings{Count: 20, GrowthPct: 5},
		SocialSentiment: &SocialSentiment{AvgSentiment: 0.2},
	}

	assert.Equal(t, "high", Score("t", all).Confidence)

	four := all
	four.SocialSentiment = nil
	assert.Equal(t, "high", Score("t", four).Confidence)

	two := Sources{
		GoogleTrends:  all.GoogleTrends,
		GovEmployment: all.GovEmployment,
	}
	assert.Equal(t, "medium", Score("t", two).Confidence)
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{85, "strong_positive"},
		{70, "strong_positive"},
		{60, "positive"},
		{50, "neutral"},
		{35, "negative"},
		{10, "strong_negative"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, directionFor(tt.score))
	}
}
