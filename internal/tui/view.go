package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/storybox/internal/session"
)

// View renders the current phase.
func (m Model) View() string {
	var body string
	switch phase := m.machine.Phase().(type) {
	case session.Editing:
		body = m.renderEditingView()
	case session.Loading:
		body = m.renderLoadingView()
	case session.Displaying:
		body = m.renderResultView()
	case session.Failed:
		body = m.renderErrorView(phase.Message)
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
	))
}

func (m Model) renderHeader() string {
	themeLabel := "☾ dark"
	if m.styles.Palette.Name == "light" {
		themeLabel = "☀ light"
	}
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render(AppTitle),
		"  ",
		m.styles.Theme.Render(themeLabel+" (ctrl+t)"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Tagline.Render(tagline))
}

func (m Model) renderEditingView() string {
	form := m.machine.Form()

	selectors := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSelector("Genre", string(form.Genre), m.focus == focusGenre),
		m.renderSelector("Mood", string(form.Mood), m.focus == focusMood),
		m.renderSelector("Language", string(form.Language), m.focus == focusLanguage),
	)

	button := m.styles.ButtonDisabled.Render("✦ Generate Story")
	if m.machine.CanSubmit() {
		button = m.styles.Button.Render("✦ Generate Story")
	}

	help := m.renderHelp(
		"tab next field",
		"←/→ change option",
		"enter generate",
		"alt+enter new line",
		"ctrl+c quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Label.Render("Your idea"),
		m.idea.View(),
		"",
		selectors,
		button,
		m.renderStatus(),
		help,
	)
}

func (m Model) renderSelector(label, value string, focused bool) string {
	style := m.styles.Selector
	if focused {
		style = m.styles.SelectorFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Label.Render(label),
		style.Render(fmt.Sprintf("‹ %s ›", value)),
	)
}

func (m Model) renderLoadingView() string {
	return m.styles.Loading.Render(fmt.Sprintf("%s %s", m.spinner.View(), loadingText))
}

func (m Model) renderResultView() string {
	result, ok := m.currentResult()
	if !ok {
		return ""
	}

	panel := m.carousel.View(result.Images(), m.machine.Index())
	storyPanel := m.styles.StoryPanel.Render(m.storyView.View())
	content := lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", storyPanel)

	copyLabel := "c copy"
	if m.copied {
		copyLabel = "Copied!"
	}
	help := m.renderHelp(
		"←/→ browse",
		fmt.Sprintf("1-%d select", result.ImageCount()),
		copyLabel,
		"s save",
		"space reveal",
		"n generate another story",
		"q quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatus(), help)
}

func (m Model) renderErrorView(message string) string {
	box := m.styles.ErrorBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ErrorTitle.Render("An Error Occurred"),
		message,
	))
	return lipgloss.JoinVertical(lipgloss.Left,
		box,
		m.styles.Button.Render("↻ Try Again"),
		m.renderHelp("r try again", "q quit"),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return m.styles.Status.Render(m.status)
}

func (m Model) renderHelp(items ...string) string {
	return m.styles.Help.Render(strings.Join(items, " • "))
}
