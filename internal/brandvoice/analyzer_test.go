package brandvoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCopy = "Our platform helps teams ship faster. It removes busywork. " +
	"Marketing leaders trust the numbers because every score is deterministic."

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer()

	t.Run("empty content returns degenerate result", func(t *testing.T) {
		res := a.Analyze("", nil)

		assert.NotEmpty(t, res.Error)
		assert.True(t, res.IsVerified)
		assert.Equal(t, 0.0, res.ConsistencyScore)
	})

	t.Run("plain copy produces metrics and a bounded score", func(t *testing.T) {
		res := a.Analyze(sampleCopy, nil)

		assert.Empty(t, res.Error)
		assert.Equal(t, 3, res.SentenceCount)
		assert.Equal(t, 19, res.WordCount)
		assert.Greater(t, res.Readability, 0.0)
		assert.GreaterOrEqual(t, res.ConsistencyScore, 0.0)
		assert.LessOrEqual(t, res.ConsistencyScore, 100.0)
		assert.True(t, res.IsVerified)
		assert.NotEmpty(t, res.Algorithm)
	})

	t.Run("html tags are ignored", func(t *testing.T) {
		tagged := "<p>" + sampleCopy + "</p>"

		assert.Equal(t, a.Analyze(sampleCopy, nil), a.Analyze(tagged, nil))
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		assert.Equal(t, a.Analyze(sampleCopy, nil), a.Analyze(sampleCopy, nil))
	})
}

func TestAnalyzeProfileDeviation(t *testing.T) {
	a := NewAnalyzer()

	base := a.Analyze(sampleCopy, nil)

	// A profile matching the computed metrics exactly scores 100.
	exact := TargetProfile{
		Readability:    base.Readability,
		Formality:      base.Formality,
		SentenceLength: base.AvgSentenceLength,
	}
	res := a.Analyze(sampleCopy, &exact)
	assert.InDelta(t, 100.0, res.ConsistencyScore, 0.5)

	// A wildly different profile scores lower.
	far := TargetProfile{Readability: 5, Formality: 95, SentenceLength: 40}
	assert.Less(t, a.Analyze(sampleCopy, &far).ConsistencyScore, res.ConsistencyScore)
}

func TestAnalyzeZeroProfileFieldsFallBackToDefaults(t *testing.T) {
	a := NewAnalyzer()

	partial := TargetProfile{Readability: 70}
	withPartial := a.Analyze(sampleCopy, &partial)

	full := TargetProfile{Readability: 70, Formality: 30, SentenceLength: 17}
	withFull := a.Analyze(sampleCopy, &full)

	assert.Equal(t, withFull, withPartial)
}

func TestFormalityRatio(t *testing.T) {
	words := strings.Fields("the platform delivers measurable results now")
	// platform, delivers, measurable, results are 7+ letters.
	assert.InDelta(t, 100*4.0/6.0, formalityRatio(words), 1e-9)
}
