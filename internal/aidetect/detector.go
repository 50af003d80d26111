// Package aidetect estimates how machine-generated a text sample is from two
// statistical signals: burstiness (humans vary sentence length more) and
// lexical uniformity (generated text repeats vocabulary more). It is a
// heuristic signal, not a classifier guarantee.
package aidetect

import (
	"math"

	"marketscore/internal/audit"
	"marketscore/internal/textstat"
)

const likelihoodAlgorithm = "heuristic approximation: 0.6*burstiness signal " +
	"(low sentence-length CV reads as machine-like, human baseline CV 0.55) + " +
	"0.4*lexical uniformity (1 - unique/total word ratio), 0-100 scale"

// humanBaselineCV is the sentence-length coefficient of variation below which
// text starts to look suspiciously uniform.
const humanBaselineCV = 0.55

// Result reports the combined likelihood and its raw signals.
type Result struct {
	audit.Meta

	AILikelihoodScore float64 `json:"ai_likelihood_score"`
	Assessment        string  `json:"assessment"`
	Burstiness        float64 `json:"burstiness"`
	UniqueWordRatio   float64 `json:"unique_word_ratio"`
	SentenceCount     int     `json:"sentence_count"`
	WordCount         int     `json:"word_count"`
}

// Likelihood scores content on a 0-100 scale, higher meaning more likely
// machine-generated. Fewer than two sentences is too little signal and yields
// a zero score with an explicit error.
func Likelihood(content string) Result {
	plain := textstat.StripTags(content)
	sentences := textstat.SplitSentences(plain)
	words := textstat.Words(plain)

	if len(sentences) < 2 || len(words) == 0 {
		return Result{
			Meta:          audit.Degenerate(likelihoodAlgorithm, "need at least two sentences to measure burstiness"),
			Assessment:    "insufficient text",
			SentenceCount: len(sentences),
			WordCount:     len(words),
		}
	}

	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(textstat.Words(s)))
	}
	burstiness := textstat.CoefficientOfVariation(lengths)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	uniqueRatio := float64(len(unique)) / float64(len(words))

	burstinessSignal := textstat.Clamp((humanBaselineCV-burstiness)/humanBaselineCV, 0, 1)
	uniformitySignal := textstat.Clamp(1-uniqueRatio, 0, 1)

	score := math.Round((0.6*burstinessSignal + 0.4*uniformitySignal) * 100)

	return Result{
		Meta:              audit.Verified(likelihoodAlgorithm),
		AILikelihoodScore: score,
		Assessment:        assessmentFor(score),
		Burstiness:        burstiness,
		UniqueWordRatio:   uniqueRatio,
		SentenceCount:     len(sentences),
		WordCount:         len(words),
	}
}

func assessmentFor(score float64) string {
	switch {
	case score >= 75:
		return "likely machine-generated"
	case score >= 50:
		return "possibly machine-generated"
	case score >= 25:
		return "likely human-written"
	default:
		return "very likely human-written"
	}
}
