package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/newsreframer/internal/logging"
	"github.com/csheth/newsreframer/internal/rewrite"
	"github.com/csheth/newsreframer/internal/theme"
)

// Config wires runtime options into the reframer view.
type Config struct {
	Client rewrite.Client
	Theme  theme.Theme
	// OnToggleTheme is run when the user asks to flip the display mode.
	// When nil the toggle is hidden and its key does nothing.
	OnToggleTheme tea.Cmd
	Logger        *zap.Logger
}

type keyMap struct {
	Submit key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reframe")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type model struct {
	config Config
	theme  theme.Theme
	keys   keyMap
	help   help.Model
	jobs   *jobBus
	logger *zap.Logger

	input   textinput.Model
	spinner spinner.Model
	width   int

	state      requestState
	pendingJob string
	outcome    outcome
	activeJob  *jobSnapshot
	lastJob    *jobSnapshot
}

// New returns the reframer view as a tea.Model. It can be mounted directly
// or hosted by NewHost.
func New(config Config) tea.Model {
	return newModel(config)
}

func newModel(config Config) *model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.Width = 60
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	logger := logging.Or(config.Logger)
	m := &model{
		config:  config,
		keys:    newKeyMap(),
		help:    help.New(),
		jobs:    newJobBus(logger),
		logger:  logger,
		input:   input,
		spinner: spin,
		width:   maxContentWidth,
	}
	m.keys.Toggle.SetEnabled(config.OnToggleTheme != nil)
	m.SetTheme(config.Theme)
	return m
}

// SetTheme swaps the styles the view renders with.
func (m *model) SetTheme(t theme.Theme) {
	m.theme = t
	m.spinner.Style = t.Icon
	m.input.PlaceholderStyle = t.Muted
	m.input.TextStyle = t.Body
	m.help.Styles.ShortKey = t.Body
	m.help.Styles.ShortDesc = t.Muted
	m.help.Styles.ShortSeparator = t.Muted
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.Toggle):
			return m, m.config.OnToggleTheme
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = m.inputWidth()
		return m, nil
	case spinner.TickMsg:
		if m.state != requestLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case jobSignalMsg:
		if msg.Snapshot.ID == m.pendingJob {
			snapshot := msg.Snapshot
			m.activeJob = &snapshot
		}
		return m, nil
	case jobResultEnvelope:
		if msg.Snapshot.ID != m.pendingJob {
			return m, nil
		}
		snapshot := msg.Snapshot
		m.lastJob = &snapshot
		if result, ok := msg.Payload.(rewriteResultMsg); ok {
			m.settle(result)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current topic and, when valid, moves the view into
// the loading state and starts exactly one request. It does nothing while a
// request is outstanding.
func (m *model) submit() tea.Cmd {
	if m.state == requestLoading {
		return nil
	}
	m.outcome = nil
	topic, err := rewrite.ValidateTopic(m.input.Value())
	if err != nil {
		m.outcome = failedOutcome{message: rewrite.Message(err)}
		return nil
	}
	if m.config.Client == nil {
		m.outcome = failedOutcome{message: rewrite.FallbackMessage}
		return nil
	}
	m.state = requestLoading
	id, cmd := m.jobs.Start(jobKindRewrite, topic, rewriteJob(m.config.Client, topic))
	m.pendingJob = id
	m.logger.Debug("submitted topic", zap.String("job", id), zap.Int("topic_len", len(topic)))
	return tea.Batch(cmd, m.spinner.Tick)
}

// settle returns the view to idle and stores the single outcome.
func (m *model) settle(msg rewriteResultMsg) {
	m.state = requestIdle
	m.pendingJob = ""
	m.activeJob = nil
	if msg.err != nil {
		m.outcome = failedOutcome{message: rewrite.Message(msg.err)}
		return
	}
	m.outcome = resultOutcome{outputs: msg.outputs}
}

// errorMessage returns the banner text, or "" when no failure is showing.
func (m *model) errorMessage() string {
	if failed, ok := m.outcome.(failedOutcome); ok {
		return failed.message
	}
	return ""
}

// outputs returns the current result set and whether one is showing.
func (m *model) outputs() (rewrite.Outputs, bool) {
	if result, ok := m.outcome.(resultOutcome); ok {
		return result.outputs, true
	}
	return rewrite.Outputs{}, false
}

func (m *model) loading() bool {
	return m.state == requestLoading
}
