package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the page from the current state only.
func (m *model) View() string {
	l := layoutFor(m.width)
	parts := []string{
		m.headerView(l),
		m.inputCardView(l),
	}
	if outputs, ok := m.outputs(); ok {
		parts = append(parts, renderGrid(m.theme, outputs, l))
	}
	if status := m.statusView(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.footerView(l))
	return joinNonEmpty(parts)
}

func (m *model) headerView(l gridLayout) string {
	title := m.theme.Icon.Render(iconSparkles) + " " + m.theme.Title.Render(appTitle)
	if !m.keys.Toggle.Enabled() {
		return title
	}
	toggle := m.theme.Muted.Render(fmt.Sprintf("%s %s", iconDarkMode, m.keys.Toggle.Help().Key))
	gap := l.contentWidth - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

func (m *model) inputCardView(l gridLayout) string {
	inner := l.contentWidth - m.theme.Card.GetHorizontalFrameSize()
	lines := []string{
		m.theme.CardTitle.Render(introTitle),
		m.theme.Muted.Render(wordwrap.String(introText, inner)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", m.buttonView()),
	}
	if msg := m.errorMessage(); msg != "" {
		alertInner := inner - m.theme.Alert.GetHorizontalFrameSize()
		lines = append(lines, "", m.theme.Alert.Width(alertInner+m.theme.Alert.GetHorizontalPadding()).Render(wordwrap.String(msg, alertInner)))
	}
	return m.theme.Card.Width(inner + m.theme.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (m *model) buttonView() string {
	if m.loading() {
		return m.theme.ButtonBusy.Render(m.spinner.View() + " " + buttonBusy)
	}
	return m.theme.Button.Render(iconTrend + " " + buttonIdle)
}

func (m *model) statusView() string {
	if m.loading() {
		if m.activeJob == nil {
			return ""
		}
		return m.theme.Status.Render(fmt.Sprintf("Reframing %q via %s…", m.activeJob.Subject, m.config.Client.BaseURL()))
	}
	if m.lastJob == nil {
		return ""
	}
	return m.theme.Status.Render(fmt.Sprintf("Last request for %q %s in %s",
		m.lastJob.Subject, m.lastJob.Status, m.lastJob.Duration.Round(time.Millisecond)))
}

func (m *model) footerView(l gridLayout) string {
	caption := m.theme.Muted.Render(iconShield + " " + wordwrap.String(footerText, l.contentWidth-2))
	bindings := []key.Binding{m.keys.Submit}
	if m.keys.Toggle.Enabled() {
		bindings = append(bindings, m.keys.Toggle)
	}
	bindings = append(bindings, m.keys.Quit)
	return joinNonEmpty([]string{caption, m.help.ShortHelpView(bindings)})
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
