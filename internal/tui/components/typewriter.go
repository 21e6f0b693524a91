package components

import (
	"iter"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTypewriterInterval is the per-character reveal cadence.
const DefaultTypewriterInterval = 20 * time.Millisecond

var lastTypewriterID int64

func nextTypewriterID() int {
	return int(atomic.AddInt64(&lastTypewriterID, 1))
}

// TypewriterTickMsg advances a Typewriter by one character.
type TypewriterTickMsg struct {
	ID  int
	tag int
}

// Typewriter reveals a string one rune per tick. Every Start or Stop bumps
// the tag, so ticks scheduled for an earlier reveal are dropped.
type Typewriter struct {
	id       int
	tag      int
	interval time.Duration
	runes    []rune
	shown    int
	running  bool
}

// NewTypewriter returns an idle Typewriter. A non-positive interval falls
// back to DefaultTypewriterInterval.
func NewTypewriter(interval time.Duration) Typewriter {
	if interval <= 0 {
		interval = DefaultTypewriterInterval
	}
	return Typewriter{id: nextTypewriterID(), interval: interval}
}

// ID identifies this Typewriter's ticks.
func (t Typewriter) ID() int {
	return t.id
}

// Start discards any reveal in progress and begins revealing text from an
// empty prefix.
func (t Typewriter) Start(text string) (Typewriter, tea.Cmd) {
	t.tag++
	t.runes = []rune(text)
	t.shown = 0
	t.running = len(t.runes) > 0
	if !t.running {
		return t, nil
	}
	return t, t.tick()
}

// Stop halts the reveal, keeping what has been shown.
func (t Typewriter) Stop() Typewriter {
	t.tag++
	t.running = false
	return t
}

// Finish reveals the whole text immediately.
func (t Typewriter) Finish() Typewriter {
	t = t.Stop()
	t.shown = len(t.runes)
	return t
}

// Update handles TypewriterTickMsg. Ticks for another Typewriter, for an
// earlier reveal, or after completion are no-ops.
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok {
		return t, nil
	}
	if tick.ID != t.id || tick.tag != t.tag || !t.running {
		return t, nil
	}

	t.shown++
	if t.shown >= len(t.runes) {
		t.shown = len(t.runes)
		t.running = false
		return t, nil
	}
	return t, t.tick()
}

func (t Typewriter) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id, tag: tag}
	})
}

// Revealed returns the prefix shown so far.
func (t Typewriter) Revealed() string {
	return string(t.runes[:t.shown])
}

// Text returns the full text being revealed.
func (t Typewriter) Text() string {
	return string(t.runes)
}

// Running reports whether ticks are still scheduled.
func (t Typewriter) Running() bool {
	return t.running
}

// Done reports whether the full text is visible. It stays true until the
// next Start.
func (t Typewriter) Done() bool {
	return t.shown == len(t.runes)
}

// Interval returns the reveal cadence.
func (t Typewriter) Interval() time.Duration {
	return t.interval
}

// Reveal yields each prefix of text, one rune longer than the last, ending
// with text itself. It is finite and stops as soon as the consumer does.
func Reveal(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		for i := 1; i <= len(runes); i++ {
			if !yield(string(runes[:i])) {
				return
			}
		}
	}
}
