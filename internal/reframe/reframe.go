// Package reframe holds the presentation rules for reframed topics: card
// labels and how each reframing's text is broken into renderable blocks.
package reframe

import (
	"regexp"
	"strings"
)

// Known reframing keys returned by the rewrite service.
const (
	KeyNeutralSummary    = "neutral_summary"
	KeyCuriosityHeadline = "curiosity_headline"
	KeyHumanInterest     = "human_interest"
	KeyEconomicLens      = "economic_lens"
	KeySoberBullets      = "sober_bullets"
)

var labels = map[string]string{
	KeyNeutralSummary:    "Neutral summary",
	KeyCuriosityHeadline: "Curiosity headline",
	KeyHumanInterest:     "Human-interest angle",
	KeyEconomicLens:      "Economic lens",
	KeySoberBullets:      "Sober bullets",
}

// Label returns the card title for key, or the key itself when unknown.
func Label(key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

// BodyKind selects how a card body is drawn.
type BodyKind int

const (
	BodyParagraphs BodyKind = iota
	BodyHeadline
	BodyBullets
)

// Body is a card body broken into blocks. A headline has exactly one block.
type Body struct {
	Kind   BodyKind
	Blocks []string
}

var (
	bulletMarkerRe   = regexp.MustCompile(`^[-•]\s*`)
	paragraphBreakRe = regexp.MustCompile(`\n\n+`)
)

// Format breaks value into blocks according to key.
func Format(key, value string) Body {
	switch key {
	case KeyCuriosityHeadline:
		return Body{Kind: BodyHeadline, Blocks: []string{value}}
	case KeySoberBullets:
		return Body{Kind: BodyBullets, Blocks: Bullets(value)}
	default:
		return Body{Kind: BodyParagraphs, Blocks: Paragraphs(value)}
	}
}

// Bullets splits value into lines, strips one leading "-" or "•" marker and
// surrounding whitespace, and drops empty lines.
func Bullets(value string) []string {
	lines := strings.Split(value, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(bulletMarkerRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// Paragraphs splits value on runs of two or more newlines. Empty paragraphs
// are kept.
func Paragraphs(value string) []string {
	return paragraphBreakRe.Split(value, -1)
}
