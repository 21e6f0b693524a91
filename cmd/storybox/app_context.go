package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storybox/internal/config"
	"github.com/alexisbeaulieu97/storybox/internal/generator"
	"github.com/alexisbeaulieu97/storybox/internal/generator/gemini"
	"github.com/alexisbeaulieu97/storybox/internal/logger"
	"github.com/alexisbeaulieu97/storybox/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Generator generator.Generator
	Theme     *theme.Service

	closers []io.Closer
}

type logTarget int

const (
	logToStderr logTarget = iota
	logToFile
)

// newProvider builds the provider models for an API key.
var newProvider = func(apiKey string) (generator.TextModel, generator.ImageModel) {
	p := gemini.New(apiKey)
	return p, p
}

func loadApp(cmd *cobra.Command, flags *rootFlags, target logTarget) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Check the STORYBOX_* environment variables.")
	}

	app := &AppContext{Config: cfg}

	level := cfg.LogLevel
	if flags != nil && flags.verbose {
		level = "debug"
	}

	opts := logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()}
	if target == logToFile {
		file, err := openLogFile(cfg.LogPath())
		if err != nil {
			return nil, newCommandError("start", "opening the log file", err, fmt.Sprintf("Check that %s is writable.", cfg.Home))
		}
		app.closers = append(app.closers, file)
		opts = logger.Options{Level: level, Writer: file}
	}

	log, err := logger.New(opts)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating the logger", err, "Use one of: trace, debug, info, warn, error.")
	}
	app.Logger = log

	text, images := newProvider(cfg.ResolvedAPIKey())
	client, err := generator.NewClient(text, images, generator.Options{
		TextModel:  cfg.TextModel,
		ImageModel: cfg.ImageModel,
	}, log)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating the generation client", err, "This is a bug; please report it.")
	}
	app.Generator = client

	app.Theme = theme.NewService(theme.NewFileStore(cfg.PreferencesPath()), nil, theme.WithLogger(log))

	return app, nil
}

// Close releases files opened by loadApp.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
