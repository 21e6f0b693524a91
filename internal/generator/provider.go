package generator

import (
	"context"

	"github.com/alexisbeaulieu97/storybox/internal/story"
)

// TextRequest is the text-completion contract with the provider.
type TextRequest struct {
	Model       string
	Prompt      string
	Temperature float32
	TopP        float32
}

// ImageRequest is the image-generation contract with the provider.
type ImageRequest struct {
	Model       string
	Prompt      string
	Count       int
	AspectRatio string
	MIMEType    string
}

// TextModel produces a story from a prompt.
type TextModel interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ImageModel produces a batch of inline images from a prompt.
type ImageModel interface {
	GenerateImages(ctx context.Context, req ImageRequest) ([]story.Image, error)
}

// Generator is what the UI layers depend on.
type Generator interface {
	Generate(ctx context.Context, req story.Request) (story.Result, error)
}
