package story

import "strings"

// Request is one submitted generation request. It is passed by value and is
// not modified after submission.
type Request struct {
	Idea     string   `validate:"required,notblank"`
	Genre    Genre    `validate:"required,genre"`
	Mood     Mood     `validate:"required,mood"`
	Language Language `validate:"required,language"`
}

// NewRequest builds a request with the idea trimmed.
func NewRequest(idea string, genre Genre, mood Mood, language Language) Request {
	return Request{
		Idea:     strings.TrimSpace(idea),
		Genre:    genre,
		Mood:     mood,
		Language: language,
	}
}

// DefaultRequest returns the form's initial selections with an empty idea.
func DefaultRequest() Request {
	return Request{Genre: GenreFantasy, Mood: MoodAdventurous, Language: LanguageEnglish}
}

// HasIdea reports whether the idea is non-empty after trimming.
func (r Request) HasIdea() bool {
	return strings.TrimSpace(r.Idea) != ""
}
