package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexisbeaulieu97/storybox/internal/generator"
	"github.com/alexisbeaulieu97/storybox/internal/story"
)

type fakeProvider struct {
	text   string
	images []story.Image
	err    error
}

func (f fakeProvider) GenerateText(context.Context, generator.TextRequest) (string, error) {
	return f.text, f.err
}

func (f fakeProvider) GenerateImages(context.Context, generator.ImageRequest) ([]story.Image, error) {
	return f.images, nil
}

func useFakeProvider(t *testing.T, p fakeProvider) {
	t.Helper()

	original := newProvider
	newProvider = func(string) (generator.TextModel, generator.ImageModel) {
		return p, p
	}
	t.Cleanup(func() { newProvider = original })
}

func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("STORYBOX_HOME", home)
	t.Setenv("STORYBOX_LOG_LEVEL", "debug")
	return home
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
