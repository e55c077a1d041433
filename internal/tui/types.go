package tui

import "github.com/csheth/newsreframer/internal/rewrite"

type requestState int

const (
	requestIdle requestState = iota
	requestLoading
)

func (s requestState) String() string {
	if s == requestLoading {
		return "loading"
	}
	return "idle"
}

// outcome is the single slot that holds what the last submission produced.
// A nil outcome means nothing has been submitted since the last reset.
type outcome interface {
	isOutcome()
}

type failedOutcome struct {
	message string
}

type resultOutcome struct {
	outputs rewrite.Outputs
}

func (failedOutcome) isOutcome() {}
func (resultOutcome) isOutcome() {}

const (
	appTitle     = "News Reframer"
	introTitle   = "Explore responsible angles on any topic"
	introText    = "Get multiple non-persuasive views (neutral summary, human impact, economics, and factual bullets). Outputs are AI-generated; verify with primary sources."
	footerText   = "This app avoids targeted political persuasion. Headlines aim for honest curiosity—no exaggeration."
	placeholder  = "e.g., wildfires in California, student loan interest, chip export rules"
	buttonIdle   = "Reframe"
	buttonBusy   = "Reframing…"
	iconSparkles = "✦"
	iconTrend    = "↗"
	iconShield   = "⛨"
	iconDarkMode = "☾"
)

const (
	maxContentWidth = 100
	minContentWidth = 40
	twoColumnWidth  = 96
	columnGap       = 2
)
