package story

import "strings"

// Genre is one of the fixed story genres offered by the form.
type Genre string

const (
	GenreFantasy        Genre = "Fantasy"
	GenreScienceFiction Genre = "Science Fiction"
	GenreMystery        Genre = "Mystery"
	GenreHorror         Genre = "Horror"
	GenreRomance        Genre = "Romance"
	GenreAdventure      Genre = "Adventure"
)

// Mood is one of the fixed story moods offered by the form.
type Mood string

const (
	MoodAdventurous Mood = "Adventurous"
	MoodMysterious  Mood = "Mysterious"
	MoodHumorous    Mood = "Humorous"
	MoodSomber      Mood = "Somber"
	MoodUplifting   Mood = "Uplifting"
	MoodTense       Mood = "Tense"
)

// Language is the language the story must be written in.
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageJapanese   Language = "Japanese"
	LanguageMandarin   Language = "Mandarin Chinese"
	LanguageRussian    Language = "Russian"
	LanguageHindi      Language = "Hindi"
	LanguageArabic     Language = "Arabic"
	LanguagePortuguese Language = "Portuguese"
	LanguageItalian    Language = "Italian"
	LanguageBangla     Language = "Bangla"
)

var (
	genres = []Genre{
		GenreFantasy, GenreScienceFiction, GenreMystery,
		GenreHorror, GenreRomance, GenreAdventure,
	}
	moods = []Mood{
		MoodAdventurous, MoodMysterious, MoodHumorous,
		MoodSomber, MoodUplifting, MoodTense,
	}
	languages = []Language{
		LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman,
		LanguageJapanese, LanguageMandarin, LanguageRussian, LanguageHindi,
		LanguageArabic, LanguagePortuguese, LanguageItalian, LanguageBangla,
	}
)

// Genres returns the selectable genres in display order.
func Genres() []Genre { return append([]Genre(nil), genres...) }

// Moods returns the selectable moods in display order.
func Moods() []Mood { return append([]Mood(nil), moods...) }

// Languages returns the selectable languages in display order.
func Languages() []Language { return append([]Language(nil), languages...) }

// Valid reports whether g is one of the fixed genres.
func (g Genre) Valid() bool { return indexOf(genres, g) >= 0 }

// Valid reports whether m is one of the fixed moods.
func (m Mood) Valid() bool { return indexOf(moods, m) >= 0 }

// Valid reports whether l is one of the fixed languages.
func (l Language) Valid() bool { return indexOf(languages, l) >= 0 }

// Cycle returns the genre delta positions away from g, wrapping around.
func (g Genre) Cycle(delta int) Genre { return cycle(genres, g, delta) }

// Cycle returns the mood delta positions away from m, wrapping around.
func (m Mood) Cycle(delta int) Mood { return cycle(moods, m, delta) }

// Cycle returns the language delta positions away from l, wrapping around.
func (l Language) Cycle(delta int) Language { return cycle(languages, l, delta) }

// ParseGenre matches s case-insensitively against the fixed genres.
func ParseGenre(s string) (Genre, bool) { return parse(genres, s) }

// ParseMood matches s case-insensitively against the fixed moods.
func ParseMood(s string) (Mood, bool) { return parse(moods, s) }

// ParseLanguage matches s case-insensitively against the fixed languages.
func ParseLanguage(s string) (Language, bool) { return parse(languages, s) }

func indexOf[T ~string](options []T, v T) int {
	for i, opt := range options {
		if opt == v {
			return i
		}
	}
	return -1
}

// cycle treats an unknown current value as sitting at index 0.
func cycle[T ~string](options []T, current T, delta int) T {
	n := len(options)
	i := indexOf(options, current)
	if i < 0 {
		i = 0
	}
	return options[((i+delta)%n+n)%n]
}

func parse[T ~string](options []T, s string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range options {
		if strings.EqualFold(string(opt), s) {
			return opt, true
		}
	}
	var zero T
	return zero, false
}
