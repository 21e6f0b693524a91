package story

import "errors"

var (
	// ErrNoStory is returned when the text call succeeds but produces no story.
	ErrNoStory = errors.New("the model did not return a story")
	// ErrNoImages is returned when the image call succeeds but produces no images.
	ErrNoImages = errors.New("the model did not return any images")
	// ErrGenerationFailed is the single opaque error surfaced to callers of the
	// generation client, whatever the underlying cause.
	ErrGenerationFailed = errors.New("failed to generate story and images")
)
