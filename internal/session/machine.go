package session

import "github.com/alexisbeaulieu97/storybox/internal/story"

// Machine is the four-phase application state machine. It is driven from a
// single event loop and is not safe for concurrent use.
type Machine struct {
	form     story.Request
	phase    Phase
	carousel Carousel
}

// New returns a Machine in Editing with the default form selections.
func New() *Machine {
	return &Machine{form: story.DefaultRequest(), phase: Editing{}}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Form returns the current form inputs.
func (m *Machine) Form() story.Request {
	return m.form
}

func (m *Machine) loading() bool {
	_, ok := m.phase.(Loading)
	return ok
}

// SetIdea replaces the idea text. Ignored while Loading.
func (m *Machine) SetIdea(idea string) bool {
	if m.loading() {
		return false
	}
	m.form.Idea = idea
	return true
}

// SetGenre selects a genre. Unknown genres are rejected.
func (m *Machine) SetGenre(g story.Genre) bool {
	if m.loading() || !g.Valid() {
		return false
	}
	m.form.Genre = g
	return true
}

// SetMood selects a mood. Unknown moods are rejected.
func (m *Machine) SetMood(mood story.Mood) bool {
	if m.loading() || !mood.Valid() {
		return false
	}
	m.form.Mood = mood
	return true
}

// SetLanguage selects a language. Unknown languages are rejected.
func (m *Machine) SetLanguage(l story.Language) bool {
	if m.loading() || !l.Valid() {
		return false
	}
	m.form.Language = l
	return true
}

// CycleGenre moves the genre selection by delta with wraparound.
func (m *Machine) CycleGenre(delta int) {
	if !m.loading() {
		m.form.Genre = m.form.Genre.Cycle(delta)
	}
}

// CycleMood moves the mood selection by delta with wraparound.
func (m *Machine) CycleMood(delta int) {
	if !m.loading() {
		m.form.Mood = m.form.Mood.Cycle(delta)
	}
}

// CycleLanguage moves the language selection by delta with wraparound.
func (m *Machine) CycleLanguage(delta int) {
	if !m.loading() {
		m.form.Language = m.form.Language.Cycle(delta)
	}
}

// CanSubmit reports whether Submit would start a request.
func (m *Machine) CanSubmit() bool {
	_, editing := m.phase.(Editing)
	return editing && m.form.HasIdea()
}

// Submit moves Editing to Loading and returns the request to send. It is a
// no-op returning false when already Loading, outside Editing, or when the
// idea is blank.
func (m *Machine) Submit() (story.Request, bool) {
	if !m.CanSubmit() {
		return story.Request{}, false
	}
	req := story.NewRequest(m.form.Idea, m.form.Genre, m.form.Mood, m.form.Language)
	m.phase = Loading{Request: req}
	return req, true
}

// Resolve settles the in-flight request. Any error, or an empty result,
// moves to Failed with FailureMessage. Ignored unless Loading.
func (m *Machine) Resolve(result story.Result, err error) bool {
	if !m.loading() {
		return false
	}
	if err != nil || result.IsZero() {
		m.phase = Failed{Message: FailureMessage}
		m.carousel = Carousel{}
		return true
	}
	m.phase = Displaying{Result: result}
	m.carousel = NewCarousel(result.ImageCount())
	return true
}

// Reset returns Displaying or Failed to Editing, dropping the result but
// keeping the form.
func (m *Machine) Reset() bool {
	switch m.phase.(type) {
	case Displaying, Failed:
		m.phase = Editing{}
		m.carousel = Carousel{}
		return true
	default:
		return false
	}
}

// Result returns the displayed result, if any.
func (m *Machine) Result() (story.Result, bool) {
	d, ok := m.phase.(Displaying)
	return d.Result, ok
}

// FailureMessage returns the failure text while Failed.
func (m *Machine) FailureMessage() (string, bool) {
	f, ok := m.phase.(Failed)
	return f.Message, ok
}

// Next advances the carousel. Only valid while Displaying.
func (m *Machine) Next() bool {
	if _, ok := m.phase.(Displaying); !ok {
		return false
	}
	m.carousel = m.carousel.Next()
	return true
}

// Previous moves the carousel back. Only valid while Displaying.
func (m *Machine) Previous() bool {
	if _, ok := m.phase.(Displaying); !ok {
		return false
	}
	m.carousel = m.carousel.Previous()
	return true
}

// Select jumps the carousel to i. Only valid while Displaying.
func (m *Machine) Select(i int) bool {
	if _, ok := m.phase.(Displaying); !ok {
		return false
	}
	next, ok := m.carousel.Select(i)
	m.carousel = next
	return ok
}

// Index returns the carousel position; 0 outside Displaying.
func (m *Machine) Index() int {
	return m.carousel.Index()
}

// CurrentImage returns the illustration under the carousel cursor.
func (m *Machine) CurrentImage() (story.Image, bool) {
	result, ok := m.Result()
	if !ok {
		return story.Image{}, false
	}
	return result.Image(m.carousel.Index())
}
