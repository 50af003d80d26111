package textstat

// FleschReadingEase computes 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Zero words or sentences returns 0 rather than dividing by zero.
func FleschReadingEase(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*(float64(syllables)/float64(words))
}

// GunningFog computes 0.4 * ((words/sentences) + 100*(complexWords/words)),
// where a complex word has three or more syllables.
func GunningFog(words, sentences, complexWords int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 0.4 * (float64(words)/float64(sentences) + 100*float64(complexWords)/float64(words))
}

// ComplexWordCount counts words of three or more syllables.
func ComplexWordCount(words []string, counter SyllableCounter) int {
	n := 0
	for _, w := range words {
		if counter(w) >= 3 {
			n++
		}
	}
	return n
}
