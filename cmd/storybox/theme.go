package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storybox/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the saved colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, args)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, args []string) error {
	app, err := loadApp(cmd, rootFlags, logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 1 {
		arg := strings.ToLower(strings.TrimSpace(args[0]))
		if arg == "toggle" {
			_, err = app.Theme.Toggle()
		} else {
			var p theme.Preference
			p, err = theme.ParsePreference(arg)
			if err != nil {
				return newCommandError("set theme", "parsing the theme", err, "Use light, dark or toggle.")
			}
			err = app.Theme.Set(p)
		}
		if err != nil {
			return newCommandError("set theme", "saving the preference", err, fmt.Sprintf("Check that %s is writable.", app.Config.PreferencesPath()))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", app.Theme.Current())
	return nil
}
