package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/storybox/internal/config"
	"github.com/alexisbeaulieu97/storybox/internal/story"
)

func buildRequest(opts generateOptions) (story.Request, error) {
	genre, ok := story.ParseGenre(opts.genre)
	if !ok {
		return story.Request{}, fmt.Errorf("unknown genre %q (run `storybox options`)", opts.genre)
	}
	mood, ok := story.ParseMood(opts.mood)
	if !ok {
		return story.Request{}, fmt.Errorf("unknown mood %q (run `storybox options`)", opts.mood)
	}
	language, ok := story.ParseLanguage(opts.language)
	if !ok {
		return story.Request{}, fmt.Errorf("unknown language %q (run `storybox options`)", opts.language)
	}
	if strings.TrimSpace(opts.idea) == "" {
		return story.Request{}, fmt.Errorf("an idea is required (--idea)")
	}

	req := story.NewRequest(opts.idea, genre, mood, language)
	if err := config.ValidateRequest(req); err != nil {
		return story.Request{}, err
	}
	return req, nil
}
