package tui

import (
	"context"
	"io"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storybox/internal/gallery"
	"github.com/alexisbeaulieu97/storybox/internal/generator"
	"github.com/alexisbeaulieu97/storybox/internal/story"
)

// generateCmd runs one generation and maps its outcome to a message. A
// positive timeout bounds the wait, not the provider calls.
func generateCmd(ctx context.Context, gen generator.Generator, req story.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		result, err := gen.Generate(ctx, req)
		if err != nil {
			return GenerationFailedMsg{Err: err}
		}
		return GenerationCompleteMsg{Result: result}
	}
}

// copyCmd writes text to the terminal clipboard as an OSC52 sequence.
func copyCmd(w io.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return CopyFailedMsg{Err: err}
		}
		return CopiedMsg{}
	}
}

func copyResetCmd(tag int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return copyResetMsg{tag: tag}
	})
}

// saveImageCmd exports the illustration at index into dir.
func saveImageCmd(dir string, index int, img story.Image) tea.Cmd {
	return func() tea.Msg {
		path, err := gallery.Save(dir, index, img)
		if err != nil {
			return ImageSaveFailedMsg{Err: err}
		}
		return ImageSavedMsg{Path: path}
	}
}
