package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storybox/internal/logger"
	"github.com/alexisbeaulieu97/storybox/internal/tui"
)

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, logToFile)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := logger.WithCorrelationID(cmd.Context(), logger.NewCorrelationID())
	log := app.Logger.WithContext(ctx)
	log.WithFields(map[string]any{"theme": app.Theme.Current().String()}).Info("launching story box")

	m := tui.NewModel(ctx, tui.Options{
		Generator:          app.Generator,
		Theme:              app.Theme,
		Logger:             app.Logger,
		ExportDir:          app.Config.ExportDir(),
		TypewriterInterval: app.Config.TypewriterInterval,
		RequestTimeout:     app.Config.RequestTimeout,
		Clipboard:          cmd.ErrOrStderr(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "story box exited with an error")
		return newCommandError("run", "the interactive story box", err, "Run in a terminal that supports the alternate screen.")
	}

	log.Info("story box closed")
	return nil
}
