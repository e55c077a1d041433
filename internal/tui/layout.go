package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/newsreframer/internal/reframe"
	"github.com/csheth/newsreframer/internal/rewrite"
	"github.com/csheth/newsreframer/internal/theme"
)

type gridLayout struct {
	contentWidth int
	columns      int
	cardWidth    int
}

// layoutFor sizes the page for a terminal width. Wide terminals get two
// card columns, narrow ones a single column.
func layoutFor(width int) gridLayout {
	content := width - 4
	if content > maxContentWidth {
		content = maxContentWidth
	}
	if content < minContentWidth {
		content = minContentWidth
	}
	l := gridLayout{contentWidth: content, columns: 1, cardWidth: content}
	if width >= twoColumnWidth {
		l.columns = 2
		l.cardWidth = (content - columnGap) / 2
	}
	return l
}

func (m *model) inputWidth() int {
	l := layoutFor(m.width)
	w := l.contentWidth - lipgloss.Width(buttonBusy) - 16
	if w < 20 {
		w = 20
	}
	return w
}

// renderCard draws one reframing. width is the outer width of the card.
func renderCard(t theme.Theme, entry rewrite.Entry, width int) string {
	inner := width - t.Card.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	lines := []string{t.CardTitle.Render(wordwrap.String(reframe.Label(entry.Key), inner)), ""}

	body := reframe.Format(entry.Key, entry.Value)
	switch body.Kind {
	case reframe.BodyHeadline:
		lines = append(lines, t.Headline.Render(wordwrap.String(body.Blocks[0], inner)))
	case reframe.BodyBullets:
		for _, item := range body.Blocks {
			wrapped := wordwrap.String(item, inner-2)
			lines = append(lines, t.Bullet.Render("•")+" "+t.Body.Render(indentTail(wrapped, "  ")))
		}
	default:
		for i, paragraph := range body.Blocks {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, t.Body.Render(wordwrap.String(paragraph, inner)))
		}
	}
	return t.Card.Width(inner + t.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// renderGrid lays cards out row by row in response order.
func renderGrid(t theme.Theme, outputs rewrite.Outputs, l gridLayout) string {
	entries := outputs.Entries()
	if len(entries) == 0 {
		return ""
	}
	cards := make([]string, len(entries))
	for i, entry := range entries {
		cards[i] = renderCard(t, entry, l.cardWidth)
	}
	if l.columns == 1 {
		return strings.Join(cards, "\n")
	}
	gap := strings.Repeat(" ", columnGap)
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], gap, cards[i+1]))
			continue
		}
		rows = append(rows, cards[i])
	}
	return strings.Join(rows, "\n")
}

func indentTail(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
