package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storybox/internal/story"
)

type optionsOutput struct {
	Genres    []story.Genre    `json:"genres"`
	Moods     []story.Mood     `json:"moods"`
	Languages []story.Language `json:"languages"`
}

func newOptionsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the allowed genres, moods and languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := optionsOutput{
				Genres:    story.Genres(),
				Moods:     story.Moods(),
				Languages: story.Languages(),
			}
			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}
			renderOptions(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderOptions(w io.Writer, payload optionsOutput) {
	section := func(title string, values []string) {
		fmt.Fprintf(w, "%s:\n", title)
		for _, v := range values {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}

	section("Genres", toStrings(payload.Genres))
	fmt.Fprintln(w)
	section("Moods", toStrings(payload.Moods))
	fmt.Fprintln(w)
	section("Languages", toStrings(payload.Languages))
	fmt.Fprintf(w, "\nDefaults: %s\n", strings.Join([]string{
		string(story.DefaultRequest().Genre),
		string(story.DefaultRequest().Mood),
		string(story.DefaultRequest().Language),
	}, ", "))
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
