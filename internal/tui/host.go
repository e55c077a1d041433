package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/newsreframer/internal/logging"
	"github.com/csheth/newsreframer/internal/rewrite"
	"github.com/csheth/newsreframer/internal/theme"
)

// HostConfig wires the themed host around the reframer view.
type HostConfig struct {
	Client rewrite.Client
	Logger *zap.Logger
}

// host owns the display mode and renders the reframer view inside the
// derived theme.
type host struct {
	mode   theme.DisplayMode
	theme  theme.Theme
	view   *model
	width  int
	logger *zap.Logger
}

// NewHost returns the top-level program model. The display mode starts light.
func NewHost(config HostConfig) tea.Model {
	initial := theme.New(theme.Light)
	return &host{
		mode:  theme.Light,
		theme: initial,
		view: newModel(Config{
			Client:        config.Client,
			Theme:         initial,
			OnToggleTheme: toggleDisplayMode,
			Logger:        config.Logger,
		}),
		logger: logging.Or(config.Logger),
	}
}

func (h *host) Init() tea.Cmd {
	return h.view.Init()
}

func (h *host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleDisplayModeMsg:
		h.setMode(h.mode.Toggle())
		return h, nil
	case tea.WindowSizeMsg:
		h.width = msg.Width
	}
	_, cmd := h.view.Update(msg)
	return h, cmd
}

// setMode rebuilds the theme only when the mode actually changes.
func (h *host) setMode(mode theme.DisplayMode) {
	if mode == h.mode {
		return
	}
	h.mode = mode
	h.theme = theme.New(mode)
	h.view.SetTheme(h.theme)
	h.logger.Debug("display mode changed", zap.Stringer("mode", mode))
}

func (h *host) View() string {
	style := h.theme.App
	if h.width > 0 {
		style = style.Width(h.width)
	}
	return style.Render(h.view.View())
}
