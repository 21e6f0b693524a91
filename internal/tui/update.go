package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storybox/internal/session"
	"github.com/alexisbeaulieu97/storybox/internal/story"
	"github.com/alexisbeaulieu97/storybox/internal/tui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if _, loading := m.machine.Phase().(session.Loading); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.TypewriterTickMsg:
		var cmd tea.Cmd
		m.typewriter, cmd = m.typewriter.Update(msg)
		m.refreshStory()
		return m, cmd

	case GenerationCompleteMsg:
		if !m.machine.Resolve(msg.Result, nil) {
			return m, nil
		}
		m.log.WithFields(map[string]any{"images": msg.Result.ImageCount()}).Debug("story displayed")
		m.copied = false
		m.status = ""
		var cmd tea.Cmd
		m.typewriter, cmd = m.typewriter.Start(msg.Result.Story())
		m.storyView.GotoTop()
		m.refreshStory()
		return m, cmd

	case GenerationFailedMsg:
		if m.machine.Resolve(story.Result{}, msg.Err) {
			m.log.Debug("generation failure shown")
		}
		return m, nil

	case CopiedMsg:
		m.copied = true
		m.copyTag++
		return m, copyResetCmd(m.copyTag, copiedFor)

	case CopyFailedMsg:
		m.log.Error(msg.Err, "copy story to clipboard")
		m.status = "Could not copy the story."
		return m, nil

	case copyResetMsg:
		if msg.tag == m.copyTag {
			m.copied = false
		}
		return m, nil

	case ImageSavedMsg:
		m.status = fmt.Sprintf("Saved %s", msg.Path)
		return m, nil

	case ImageSaveFailedMsg:
		m.log.Error(msg.Err, "save illustration")
		m.status = "Could not save the illustration."
		return m, nil
	}

	if m.focus == focusIdea {
		if _, editing := m.machine.Phase().(session.Editing); editing {
			var cmd tea.Cmd
			m.idea, cmd = m.idea.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleKeyPress routes keys by phase after the global bindings.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.typewriter = m.typewriter.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()
	}

	switch m.machine.Phase().(type) {
	case session.Editing:
		return m.handleEditingKeys(msg)
	case session.Loading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case session.Displaying:
		return m.handleResultKeys(msg)
	case session.Failed:
		return m.handleFailedKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.opts.Theme == nil {
		return m, nil
	}
	if _, err := m.opts.Theme.Toggle(); err != nil {
		m.status = "Could not save the theme preference."
	}
	m.restyle()
	m.refreshStory()
	return m, nil
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if m.focus != focusIdea {
		switch {
		case key.Matches(msg, m.keys.OptionPrev):
			m.cycleFocused(-1)
		case key.Matches(msg, m.keys.OptionNext):
			m.cycleFocused(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.idea, cmd = m.idea.Update(msg)
	m.machine.SetIdea(m.idea.Value())
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.machine.SetIdea(m.idea.Value())
	req, ok := m.machine.Submit()
	if !ok {
		return m, nil
	}
	if m.opts.Generator == nil {
		m.machine.Resolve(story.Result{}, fmt.Errorf("no generator configured"))
		return m, nil
	}

	m.idea.Blur()
	m.status = ""
	m.log.WithFields(map[string]any{
		"genre":    string(req.Genre),
		"mood":     string(req.Mood),
		"language": string(req.Language),
	}).Debug("story submitted")

	return m, tea.Batch(
		m.spinner.Tick,
		generateCmd(m.ctx, m.opts.Generator, req, m.opts.RequestTimeout),
	)
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.typewriter = m.typewriter.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		m.machine.Previous()
	case key.Matches(msg, m.keys.Next):
		m.machine.Next()
	case key.Matches(msg, m.keys.Select):
		m.machine.Select(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Skip):
		m.typewriter = m.typewriter.Finish()
		m.refreshStory()
	case key.Matches(msg, m.keys.Copy):
		result, ok := m.currentResult()
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.opts.Clipboard, result.Story())
	case key.Matches(msg, m.keys.Save):
		img, ok := m.machine.CurrentImage()
		if !ok || m.opts.ExportDir == "" {
			return m, nil
		}
		return m, saveImageCmd(m.opts.ExportDir, m.machine.Index(), img)
	case key.Matches(msg, m.keys.NewStory):
		return m.reset()
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.storyView, cmd = m.storyView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFailedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		return m.reset()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// reset returns to the form, keeping its inputs.
func (m Model) reset() (tea.Model, tea.Cmd) {
	if !m.machine.Reset() {
		return m, nil
	}
	m.typewriter = m.typewriter.Stop()
	m.copied = false
	m.status = ""
	m.setFocus(focusIdea)
	return m, textarea.Blink
}
