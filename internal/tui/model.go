// Package tui is the interactive story box: the prompt form, the loading
// view, the result view with carousel and typewriter, and the error view.
package tui

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storybox/internal/generator"
	"github.com/alexisbeaulieu97/storybox/internal/logger"
	"github.com/alexisbeaulieu97/storybox/internal/session"
	"github.com/alexisbeaulieu97/storybox/internal/story"
	"github.com/alexisbeaulieu97/storybox/internal/theme"
	"github.com/alexisbeaulieu97/storybox/internal/tui/components"
)

const (
	// AppTitle is shown at the top of every view.
	AppTitle = "Didarul Story Box"
	tagline  = "Turn a spark of an idea into an illustrated short story."

	loadingText   = "The story is writing itself..."
	copiedFor     = 2 * time.Second
	storyMinWidth = 30
)

// Options wires the model to its collaborators.
type Options struct {
	Generator          generator.Generator
	Theme              *theme.Service
	Logger             *logger.Logger
	ExportDir          string
	TypewriterInterval time.Duration
	RequestTimeout     time.Duration
	// Clipboard receives OSC52 sequences. Defaults to os.Stderr.
	Clipboard io.Writer
}

// Model is the Bubble Tea model for the story box.
type Model struct {
	ctx     context.Context
	opts    Options
	log     *logger.Logger
	keys    keyMap
	machine *session.Machine

	// styles is shared with the theme binding so a toggle restyles every
	// copy of the model.
	styles *Styles

	idea       textarea.Model
	focus      focusField
	spinner    spinner.Model
	typewriter components.Typewriter
	carousel   components.Carousel
	storyView  viewport.Model

	copied  bool
	copyTag int
	status  string

	width  int
	height int
}

// NewModel creates the model in the Editing phase.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = os.Stderr
	}

	styles := &Styles{}
	*styles = NewStyles(components.DarkPalette())

	idea := textarea.New()
	idea.Placeholder = "A lighthouse keeper who finds a mysterious glowing pearl..."
	idea.ShowLineNumbers = false
	idea.CharLimit = 2000
	idea.SetWidth(60)
	idea.SetHeight(4)
	idea.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	idea.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		opts:       opts,
		log:        opts.Logger,
		keys:       defaultKeyMap(),
		machine:    session.New(),
		styles:     styles,
		idea:       idea,
		focus:      focusIdea,
		spinner:    s,
		typewriter: components.NewTypewriter(opts.TypewriterInterval),
		storyView:  viewport.New(60, 16),
		width:      100,
		height:     30,
	}

	if opts.Theme != nil {
		opts.Theme.Bind(func(p theme.Preference) {
			*styles = NewStyles(PaletteFor(p))
		})
	}
	m.restyle()
	return m
}

// Init starts the cursor blink of the idea field.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Machine exposes the state machine, mainly for tests.
func (m Model) Machine() *session.Machine {
	return m.machine
}

// Phase returns the current application phase.
func (m Model) Phase() session.Phase {
	return m.machine.Phase()
}

// Styles returns the active style set.
func (m Model) Styles() Styles {
	return *m.styles
}

// Typewriter returns the story presenter.
func (m Model) Typewriter() components.Typewriter {
	return m.typewriter
}

func (m *Model) restyle() {
	m.styles.applyTextarea(&m.idea)
	m.spinner.Style = m.styles.Spinner
	m.carousel = components.NewCarousel(m.styles.Palette)
}

func (m *Model) setFocus(f focusField) {
	m.focus = (f%focusCount + focusCount) % focusCount
	if m.focus == focusIdea {
		m.idea.Focus()
	} else {
		m.idea.Blur()
	}
}

func (m *Model) cycleFocused(delta int) {
	switch m.focus {
	case focusGenre:
		m.machine.CycleGenre(delta)
	case focusMood:
		m.machine.CycleMood(delta)
	case focusLanguage:
		m.machine.CycleLanguage(delta)
	}
}

func (m *Model) storyWidth() int {
	w := m.width - 4 - 36
	if w < storyMinWidth {
		w = storyMinWidth
	}
	return w
}

func (m *Model) resize() {
	ideaWidth := m.width - 6
	if ideaWidth > 80 {
		ideaWidth = 80
	}
	if ideaWidth < storyMinWidth {
		ideaWidth = storyMinWidth
	}
	m.idea.SetWidth(ideaWidth)

	m.storyView.Width = m.storyWidth()
	h := m.height - 10
	if h < 8 {
		h = 8
	}
	m.storyView.Height = h
	m.refreshStory()
}

// refreshStory re-wraps the revealed text into the viewport.
func (m *Model) refreshStory() {
	text := m.typewriter.Revealed()
	if !m.typewriter.Done() {
		text += m.styles.Cursor.Render("▌")
	}
	m.storyView.SetContent(m.styles.Story.Width(m.storyView.Width).Render(text))
	if m.typewriter.Running() {
		m.storyView.GotoBottom()
	}
}

func (m *Model) currentResult() (story.Result, bool) {
	return m.machine.Result()
}
