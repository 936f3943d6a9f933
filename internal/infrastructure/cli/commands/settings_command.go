package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/bddgen/internal/app"
	"github.com/doeshing/bddgen/internal/domain"
)

// NewSettingsCommand creates the settings command with show and set
// subcommands.
func NewSettingsCommand(container *app.Container) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
	}

	settingsCmd.AddCommand(
		newSettingsShowCommand(container),
		newSettingsSetCommand(container),
	)

	return settingsCmd
}

// newSettingsShowCommand creates the 'settings show' subcommand
func newSettingsShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := container.Session.Settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theme:  %s\n", prefs.Theme)
			fmt.Fprintf(out, "accent: %s (%s)\n", prefs.Accent, domain.AccentHex(prefs.Theme, prefs.Accent))
			fmt.Fprintf(out, "effect: %s\n", prefs.Effect)
			return nil
		},
	}
}

// newSettingsSetCommand creates the 'settings set' subcommand
func newSettingsSetCommand(container *app.Container) *cobra.Command {
	var (
		theme  string
		accent string
		effect string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := container.Session.Settings()

			if theme != "" {
				if !domain.ValidTheme(domain.Theme(theme)) {
					return fmt.Errorf("unknown theme %q (dark, light)", theme)
				}
				prefs.Theme = domain.Theme(theme)
			}
			if accent != "" {
				if !domain.ValidAccent(domain.AccentColor(accent)) {
					return fmt.Errorf("unknown accent %q (teal, blue, rose, amber)", accent)
				}
				prefs.Accent = domain.AccentColor(accent)
			}
			if effect != "" {
				if !domain.ValidEffect(domain.Effect(effect)) {
					return fmt.Errorf("unknown effect %q (waves, birds, net, halo, rings, none)", effect)
				}
				prefs.Effect = domain.Effect(effect)
			}

			container.Session.ApplySettings(prefs)
			container.Session.StopEffect()

			applied := container.Session.Settings()
			fmt.Fprintf(cmd.OutOrStdout(), "Preferences updated: theme=%s accent=%s effect=%s\n",
				applied.Theme, applied.Accent, applied.Effect)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Color theme (dark, light)")
	cmd.Flags().StringVar(&accent, "accent", "", "Accent color (teal, blue, rose, amber)")
	cmd.Flags().StringVar(&effect, "effect", "", "Background effect (waves, birds, net, halo, rings, none)")
	return cmd
}
