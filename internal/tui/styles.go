package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storybox/internal/theme"
	"github.com/alexisbeaulieu97/storybox/internal/tui/components"
)

// Styles holds every style the views render with. It is rebuilt whenever
// the theme changes.
type Styles struct {
	Palette components.Palette

	App     lipgloss.Style
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Theme   lipgloss.Style

	Label           lipgloss.Style
	Selector        lipgloss.Style
	SelectorFocused lipgloss.Style
	Button          lipgloss.Style
	ButtonDisabled  lipgloss.Style

	Spinner lipgloss.Style
	Loading lipgloss.Style

	StoryPanel lipgloss.Style
	Story      lipgloss.Style
	Cursor     lipgloss.Style

	ErrorTitle lipgloss.Style
	ErrorBox   lipgloss.Style

	Status lipgloss.Style
	Help   lipgloss.Style
}

// PaletteFor maps a theme preference to its palette.
func PaletteFor(p theme.Preference) components.Palette {
	if p == theme.Light {
		return components.LightPalette()
	}
	return components.DarkPalette()
}

// NewStyles builds the style set for p.
func NewStyles(p components.Palette) Styles {
	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Foreground(p.Surface.OnBase).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),

		Tagline: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted).
			Italic(true).
			MarginBottom(1),

		Theme: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted),

		Label: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted).
			Bold(true).
			Width(10),

		Selector: lipgloss.NewStyle().
			Foreground(p.Surface.OnBase).
			Padding(0, 1),

		SelectorFocused: lipgloss.NewStyle().
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Bold(true).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Bold(true).
			Padding(0, 2).
			MarginTop(1),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted).
			Background(p.Surface.Muted).
			Padding(0, 2).
			MarginTop(1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary.Base),

		Loading: lipgloss.NewStyle().
			Foreground(p.Surface.OnBase).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2),

		StoryPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Neutral.Base).
			Padding(0, 1),

		Story: lipgloss.NewStyle().
			Foreground(p.Surface.OnBase),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Primary.Base).
			Bold(true),

		ErrorTitle: lipgloss.NewStyle().
			Foreground(p.Danger.Base).
			Bold(true).
			MarginBottom(1),

		ErrorBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Danger.Base).
			Padding(1, 2),

		Status: lipgloss.NewStyle().
			Foreground(p.Success.Base).
			MarginTop(1),

		Help: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted).
			MarginTop(1),
	}
}

func (s Styles) applyTextarea(ta *textarea.Model) {
	ta.FocusedStyle.Base = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Primary.Base)
	ta.BlurredStyle.Base = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Neutral.Base)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(s.Palette.Surface.OnBase)
	ta.BlurredStyle.Text = lipgloss.NewStyle().Foreground(s.Palette.Surface.OnBase)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(s.Palette.Neutral.Muted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(s.Palette.Neutral.Muted)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
}
