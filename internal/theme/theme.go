// Package theme derives the terminal palette and styles from the light/dark
// display mode.
package theme

import "github.com/charmbracelet/lipgloss"

// DisplayMode selects the light or dark palette.
type DisplayMode int

const (
	Light DisplayMode = iota
	Dark
)

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m DisplayMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Accent colors and corner rounding are shared by both modes.
var (
	PrimaryColor   = lipgloss.Color("#5b6cff")
	SecondaryColor = lipgloss.Color("#ff4db8")
	CardBorder     = lipgloss.RoundedBorder()
)

// Palette is the mode-specific part of a theme.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Divider    lipgloss.Color
	Error      lipgloss.Color
	ErrorText  lipgloss.Color
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f6f7fb"),
		Text:       lipgloss.Color("#1f2333"),
		Muted:      lipgloss.Color("#60667a"),
		Divider:    lipgloss.Color("#d5d8e3"),
		Error:      lipgloss.Color("#d32f2f"),
		ErrorText:  lipgloss.Color("#5f2120"),
	}
	darkPalette = Palette{
		Background: lipgloss.Color("#121212"),
		Surface:    lipgloss.Color("#1e1f26"),
		Text:       lipgloss.Color("#f2f3f7"),
		Muted:      lipgloss.Color("#a3a8ba"),
		Divider:    lipgloss.Color("#3a3d4a"),
		Error:      lipgloss.Color("#f44336"),
		ErrorText:  lipgloss.Color("#f4c7c7"),
	}
)

// Theme bundles the palette with the styles the view draws with.
type Theme struct {
	Mode    DisplayMode
	Palette Palette

	App        lipgloss.Style
	Title      lipgloss.Style
	Icon       lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Headline   lipgloss.Style
	Bullet     lipgloss.Style
	Alert      lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	Status     lipgloss.Style
}

// New builds the theme for mode.
func New(mode DisplayMode) Theme {
	p := lightPalette
	if mode == Dark {
		p = darkPalette
	}
	return Theme{
		Mode:    mode,
		Palette: p,

		App:   lipgloss.NewStyle().Foreground(p.Text).Background(p.Background).Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Icon:  lipgloss.NewStyle().Foreground(PrimaryColor),
		Card: lipgloss.NewStyle().
			Border(CardBorder).
			BorderForeground(p.Divider).
			Foreground(p.Text).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Body:      lipgloss.NewStyle().Foreground(p.Text),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Headline:  lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor),
		Bullet:    lipgloss.NewStyle().Foreground(SecondaryColor),
		Alert: lipgloss.NewStyle().
			Border(CardBorder).
			BorderForeground(p.Error).
			Foreground(p.ErrorText).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(PrimaryColor).
			Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Divider).
			Padding(0, 2),
		Status: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
	}
}
