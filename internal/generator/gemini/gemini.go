// Package gemini adapts the Google Gen AI SDK to the generator's provider
// contracts.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"github.com/alexisbeaulieu97/storybox/internal/generator"
	"github.com/alexisbeaulieu97/storybox/internal/story"
)

// modelsAPI is the subset of *genai.Models used here.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// Provider implements generator.TextModel and generator.ImageModel against
// the Gemini API. The SDK client is created on first use, so a missing or
// bad key surfaces as a failed call rather than a startup error.
type Provider struct {
	apiKey    string
	newModels func(ctx context.Context, apiKey string) (modelsAPI, error)

	mu     sync.Mutex
	models modelsAPI
}

// New returns a Provider for the given API key.
func New(apiKey string) *Provider {
	return &Provider{apiKey: apiKey, newModels: newGenAIModels}
}

func newGenAIModels(ctx context.Context, apiKey string) (modelsAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client.Models, nil
}

func (p *Provider) api(ctx context.Context) (modelsAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.models != nil {
		return p.models, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	models, err := p.newModels(ctx, p.apiKey)
	if err != nil {
		return nil, err
	}
	p.models = models
	return models, nil
}

// GenerateText requests a story completion.
func (p *Provider) GenerateText(ctx context.Context, req generator.TextRequest) (string, error) {
	api, err := p.api(ctx)
	if err != nil {
		return "", err
	}

	resp, err := api.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
		TopP:        genai.Ptr(req.TopP),
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

// GenerateImages requests a batch of illustrations and returns them inline.
func (p *Provider) GenerateImages(ctx context.Context, req generator.ImageRequest) ([]story.Image, error) {
	api, err := p.api(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := api.GenerateImages(ctx, req.Model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
		AspectRatio:    req.AspectRatio,
		OutputMIMEType: req.MIMEType,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}

	images := make([]story.Image, 0, len(resp.GeneratedImages))
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		images = append(images, story.Image{
			MIMEType: mimeType(generated.Image, req.MIMEType),
			Data:     generated.Image.ImageBytes,
		})
	}
	return images, nil
}

func mimeType(img *genai.Image, requested string) string {
	if img.MIMEType != "" {
		return img.MIMEType
	}
	if requested != "" {
		return requested
	}
	return http.DetectContentType(img.ImageBytes)
}

var (
	_ generator.TextModel  = (*Provider)(nil)
	_ generator.ImageModel = (*Provider)(nil)
)
