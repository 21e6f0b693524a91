package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/storybox/internal/logger"
	"github.com/alexisbeaulieu97/storybox/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storybox/pkg/errors"
)

// Options names the provider models used for each call.
type Options struct {
	TextModel  string
	ImageModel string
}

// Client turns a story request into one text call and one image call and
// reconciles them into exactly one outcome.
type Client struct {
	text   TextModel
	images ImageModel
	opts   Options
	log    *logger.Logger
}

// NewClient wires a Client to its provider models.
func NewClient(text TextModel, images ImageModel, opts Options, log *logger.Logger) (*Client, error) {
	if text == nil {
		return nil, fmt.Errorf("text model is required")
	}
	if images == nil {
		return nil, fmt.Errorf("image model is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{text: text, images: images, opts: opts, log: log}, nil
}

// Generate issues both provider calls concurrently and returns a Result only
// when both succeed with a payload. Every failure is logged in full and
// returned as story.ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, req story.Request) (story.Result, error) {
	if logger.CorrelationID(ctx) == "" {
		ctx = logger.WithCorrelationID(ctx, logger.NewCorrelationID())
	}
	log := c.log.WithContext(ctx).WithFields(map[string]any{
		"genre":    string(req.Genre),
		"mood":     string(req.Mood),
		"language": string(req.Language),
	})
	log.Info("generation started")
	started := time.Now()

	// Provider calls outlive the wait: if ctx ends or the other call fails
	// first, they still run to completion and their outcome is dropped.
	callCtx := context.WithoutCancel(ctx)

	text, images, err := Join(ctx,
		func() (string, error) { return c.generateStory(callCtx, req, log) },
		func() ([]story.Image, error) { return c.generateImages(callCtx, req, log) },
	)
	if err == nil {
		var result story.Result
		result, err = story.NewResult(text, images)
		if err == nil {
			log.WithFields(map[string]any{
				"duration_ms": time.Since(started).Milliseconds(),
				"images":      result.ImageCount(),
				"story_runes": len([]rune(result.Story())),
			}).Info("generation succeeded")
			return result, nil
		}
	}

	log.WithFields(map[string]any{
		"duration_ms": time.Since(started).Milliseconds(),
		"cause":       failureCause(err),
	}).Error(err, "generation failed")
	return story.Result{}, story.ErrGenerationFailed
}

func (c *Client) generateStory(ctx context.Context, req story.Request, log *logger.Logger) (string, error) {
	started := time.Now()
	text, err := c.text.GenerateText(ctx, TextRequest{
		Model:       c.opts.TextModel,
		Prompt:      story.StoryPrompt(req),
		Temperature: story.Temperature,
		TopP:        story.TopP,
	})
	log.WithFields(map[string]any{
		"call":        "text",
		"duration_ms": time.Since(started).Milliseconds(),
		"ok":          err == nil,
	}).Debug("provider call settled")

	if err != nil {
		return "", storyerrors.NewProviderError("text", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", story.ErrNoStory
	}
	return text, nil
}

func (c *Client) generateImages(ctx context.Context, req story.Request, log *logger.Logger) ([]story.Image, error) {
	started := time.Now()
	images, err := c.images.GenerateImages(ctx, ImageRequest{
		Model:       c.opts.ImageModel,
		Prompt:      story.ImagePrompt(req),
		Count:       story.ImageCount,
		AspectRatio: story.AspectRatio,
		MIMEType:    story.ImageOutputMIME,
	})
	log.WithFields(map[string]any{
		"call":        "images",
		"duration_ms": time.Since(started).Milliseconds(),
		"ok":          err == nil,
		"count":       len(images),
	}).Debug("provider call settled")

	if err != nil {
		return nil, storyerrors.NewProviderError("images", err)
	}
	if len(images) == 0 {
		return nil, story.ErrNoImages
	}
	return images, nil
}

func failureCause(err error) string {
	var providerErr *storyerrors.ProviderError
	switch {
	case errors.Is(err, story.ErrNoStory):
		return "no_story"
	case errors.Is(err, story.ErrNoImages):
		return "no_images"
	case errors.As(err, &providerErr):
		return "provider_" + providerErr.Call
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "unknown"
	}
}
