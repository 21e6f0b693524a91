package story

import "fmt"

// Fixed generation parameters.
const (
	Temperature     float32 = 0.75
	TopP            float32 = 0.95
	ImageCount              = 4
	AspectRatio             = "3:4"
	ImageOutputMIME         = "image/jpeg"
)

// StoryPrompt builds the text-completion prompt for r.
func StoryPrompt(r Request) string {
	return fmt.Sprintf(
		"Generate a captivating short story, approximately 500 words long. "+
			"The story should be in the '%s' genre with a '%s' mood, based on the following idea: %q. "+
			"The story should have a clear beginning, middle, and end. "+
			"It should be well-written, creative, and engaging for the reader. "+
			"IMPORTANT: The entire story must be written in %s.",
		r.Genre, r.Mood, r.Idea, r.Language,
	)
}

// ImagePrompt builds the illustration prompt for r.
func ImagePrompt(r Request) string {
	return fmt.Sprintf(
		"Create a beautiful, high-quality digital illustration for a storybook. "+
			"The image should depict the scene: %q. "+
			"It needs to have a '%s' atmosphere and visually represent the '%s' genre. "+
			"The style should be artistic and evocative, not photorealistic. Aspect ratio %s.",
		r.Idea, r.Mood, r.Genre, AspectRatio,
	)
}
