package seo

import (
	"math"
	"regexp"
	"strings"

	"marketscore/internal/textstat"
)

// TechnicalMetrics is the parsing side-channel reported with every score.
// These counts are informational and are not SEO-scored directly.
type TechnicalMetrics struct {
	WordCount          int     `json:"word_count"`
	ReadingTimeMinutes float64 `json:"reading_time_minutes"`
	SentenceCount      int     `json:"sentence_count"`
	ParagraphCount     int     `json:"paragraph_count"`
	HeadingCount       int     `json:"heading_count"`
	LinkCount          int     `json:"link_count"`
	ListItemCount      int     `json:"list_item_count"`
	ImageCount         int     `json:"image_count"`
}

type heading struct {
	Level int
	Text  string
}

// parsedPage is the intermediate representation the rule checks operate on.
type parsedPage struct {
	TechnicalMetrics

	PlainText      string
	FirstParagraph string
	Headings       []heading
	H1Count        int
	H2Count        int
	H3Count        int
	InternalLinks  int
	ExternalLinks  int
	ImagesWithAlt  int
}

const wordsPerMinute = 200

var (
	headingRe   = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	paragraphRe = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	anchorRe    = regexp.MustCompile(`(?is)<a\s[^>]*href\s*=\s*["']([^"']*)["'][^>]*>`)
	imageRe     = regexp.MustCompile(`(?is)<img\s[^>]*>`)
	altRe       = regexp.MustCompile(`(?is)\balt\s*=\s*["']([^"']+)["']`)
	listItemRe  = regexp.MustCompile(`(?is)<li[^>]*>`)
	markdownHRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
)

func parsePage(content string) parsedPage {
	page := parsedPage{}

	for _, m := range headingRe.FindAllStringSubmatch(content, -1) {
		level := int(m[1][0] - '0')
		page.Headings = append(page.Headings, heading{
			Level: level,
			Text:  strings.TrimSpace(textstat.StripTags(m[2])),
		})
	}
	// Markdown headings count too: upstream pipelines score drafts before
	// they are rendered to HTML.
	for _, m := range markdownHRe.FindAllStringSubmatch(content, -1) {
		page.Headings = append(page.Headings, heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	for _, h := range page.Headings {
		switch h.Level {
		case 1:
			page.H1Count++
		case 2:
			page.H2Count++
		case 3:
			page.H3Count++
		}
	}

	paragraphs := paragraphRe.FindAllStringSubmatch(content, -1)
	if len(paragraphs) > 0 {
		page.ParagraphCount = len(paragraphs)
		page.FirstParagraph = strings.TrimSpace(textstat.StripTags(paragraphs[0][1]))
	} else {
		blocks := plainParagraphs(content)
		page.ParagraphCount = len(blocks)
		if len(blocks) > 0 {
			page.FirstParagraph = strings.TrimSpace(textstat.StripTags(blocks[0]))
		}
	}

	for _, m := range anchorRe.FindAllStringSubmatch(content, -1) {
		if isExternalHref(m[1]) {
			page.ExternalLinks++
		} else {
			page.InternalLinks++
		}
	}
	page.LinkCount = page.InternalLinks + page.ExternalLinks

	images := imageRe.FindAllString(content, -1)
	page.ImageCount = len(images)
	for _, img := range images {
		if altRe.MatchString(img) {
			page.ImagesWithAlt++
		}
	}

	page.ListItemCount = len(listItemRe.FindAllString(content, -1))

	page.PlainText = textstat.StripTags(content)
	words := textstat.Words(page.PlainText)
	page.WordCount = len(words)
	page.SentenceCount = len(textstat.SplitSentences(page.PlainText))
	page.ReadingTimeMinutes = math.Round(float64(page.WordCount)/wordsPerMinute*100) / 100
	page.HeadingCount = len(page.Headings)

	return page
}

// plainParagraphs splits untagged text into blank-line separated blocks.
func plainParagraphs(content string) []string {
	blocks := []string{}
	for _, b := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(b) != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func isExternalHref(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//")
}
