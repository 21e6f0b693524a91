package tui

import "github.com/alexisbeaulieu97/storybox/internal/story"

// focusField is the form control receiving keys while Editing.
type focusField int

const (
	focusIdea focusField = iota
	focusGenre
	focusMood
	focusLanguage
	focusCount
)

// GenerationCompleteMsg carries a successful generation.
type GenerationCompleteMsg struct {
	Result story.Result
}

// GenerationFailedMsg carries a failed generation. Err is for logging only.
type GenerationFailedMsg struct {
	Err error
}

// CopiedMsg reports that the story was sent to the clipboard.
type CopiedMsg struct{}

// CopyFailedMsg reports a clipboard write failure.
type CopyFailedMsg struct {
	Err error
}

// copyResetMsg flips the copy label back after it has been shown.
type copyResetMsg struct {
	tag int
}

// ImageSavedMsg reports where an illustration was written.
type ImageSavedMsg struct {
	Path string
}

// ImageSaveFailedMsg reports a failed illustration export.
type ImageSaveFailedMsg struct {
	Err error
}
