package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storybox/internal/gallery"
	"github.com/alexisbeaulieu97/storybox/internal/logger"
	"github.com/alexisbeaulieu97/storybox/internal/session"
	"github.com/alexisbeaulieu97/storybox/internal/story"
	"github.com/alexisbeaulieu97/storybox/internal/tui/components"
)

type generateOptions struct {
	idea         string
	genre        string
	mood         string
	language     string
	out          string
	noTypewriter bool
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	defaults := story.DefaultRequest()
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one illustrated story without the interactive UI",
		Example: `  storybox generate --idea "A lighthouse keeper who finds a mysterious glowing pearl."
  storybox generate --idea "A robot learns to paint" --genre "Science Fiction" --mood Uplifting --language French --out ./art`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.idea, "idea", "", "Story idea (required)")
	cmd.Flags().StringVar(&opts.genre, "genre", string(defaults.Genre), "Story genre")
	cmd.Flags().StringVar(&opts.mood, "mood", string(defaults.Mood), "Story mood")
	cmd.Flags().StringVar(&opts.language, "language", string(defaults.Language), "Language the story is written in")
	cmd.Flags().StringVar(&opts.out, "out", "", "Directory for illustrations (default $STORYBOX_HOME/illustrations)")
	cmd.Flags().BoolVar(&opts.noTypewriter, "no-typewriter", false, "Print the story at once")
	_ = cmd.MarkFlagRequired("idea")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootFlags *rootFlags, opts *generateOptions) error {
	req, err := buildRequest(*opts)
	if err != nil {
		return newCommandError("generate", "validating the request", err, "Run `storybox options` to list the allowed values.")
	}

	app, err := loadApp(cmd, rootFlags, logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := logger.WithCorrelationID(cmd.Context(), logger.NewCorrelationID())
	if timeout := app.Config.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := app.Generator.Generate(ctx, req)
	if err != nil {
		return errors.New(session.FailureMessage)
	}

	out := cmd.OutOrStdout()
	typewriter := !opts.noTypewriter && isTerminal(out)
	if err := printStory(cmd.Context(), out, result.Story(), typewriter, app.Config.TypewriterInterval); err != nil {
		return err
	}

	dir := opts.out
	if dir == "" {
		dir = app.Config.ExportDir()
	}
	paths, err := gallery.SaveAll(dir, result)
	if err != nil {
		app.Logger.Error(err, "save illustrations")
		return newCommandError("generate", "saving illustrations", err, fmt.Sprintf("Check that %s is writable.", dir))
	}

	fmt.Fprintln(out)
	for i, path := range paths {
		img, _ := result.Image(i)
		fmt.Fprintf(out, "Saved %s (%s)\n", path, humanize.Bytes(uint64(img.Size())))
	}
	return nil
}

// printStory writes text to w, one rune per interval when animate is set.
func printStory(ctx context.Context, w io.Writer, text string, animate bool, interval time.Duration) error {
	if !animate {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	written := 0
	for prefix := range components.Reveal(text) {
		if _, err := io.WriteString(w, prefix[written:]); err != nil {
			return err
		}
		written = len(prefix)

		select {
		case <-ctx.Done():
			_, err := io.WriteString(w, text[written:]+"\n")
			return err
		case <-time.After(interval):
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
