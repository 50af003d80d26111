// Package textstat provides the text and statistical primitives shared by the
// scorers: heuristic tokenization, readability formulas, and the small set of
// statistics helpers (weighted averages, normal CDF, z-tests) the higher-level
// packages build on. Everything here is a pure function of its arguments.
package textstat

import (
	"regexp"
	"strings"
)

// SentenceSplitter breaks text into sentences. Pluggable so a proper NLP
// tokenizer can replace the heuristic without touching any scoring formula.
type SentenceSplitter func(text string) []string

// WordTokenizer breaks text into lowercase word tokens.
type WordTokenizer func(text string) []string

// SyllableCounter estimates syllables in a single word.
type SyllableCounter func(word string) int

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	nonWordRe     = regexp.MustCompile(`[^a-z0-9']+`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
)

// StripTags removes HTML/XML tags so tagged content can be scored as prose.
func StripTags(text string) string {
	return tagRe.ReplaceAllString(text, " ")
}

// SplitSentences is the default SentenceSplitter: split on runs of
// sentence-ending punctuation and drop empty fragments.
func SplitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Words is the default WordTokenizer: lowercase, strip punctuation, split on
// whitespace.
func Words(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonWordRe.ReplaceAllString(lowered, " ")
	return strings.Fields(cleaned)
}

// Syllables is the default SyllableCounter: count vowel groups, discount a
// trailing silent 'e', floor of one per word.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CountSyllables sums syllables across tokenized words.
func CountSyllables(words []string, counter SyllableCounter) int {
	total := 0
	for _, w := range words {
		total += counter(w)
	}
	return total
}
