package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/entity"
)

var modeCmd = &cobra.Command{
	Use:   "mode [default|type|domain|alphabetical|custom]",
	Short: "Show or set the organization mode",
	Long: `Show or set how dashboard records are ordered.

  default       pin order
  type          local storage, session storage, then cookies
  domain        by pinned domain
  alphabetical  by display name
  custom        your own order (see 'pins move')`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: modeNames(),
	RunE:      runMode,
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or set the dashboard theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the dashboard settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme and organization mode",
	Long: `Delete the stored dashboard settings. Pinned properties are kept;
pins that were only recorded inside old settings are moved to the pin list
first.`,
	Args: cobra.NoArgs,
	RunE: runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(modeCmd, themeCmd, settingsCmd)
}

func modeNames() []string {
	names := make([]string, 0, len(entity.OrganizationModes))
	for _, m := range entity.OrganizationModes {
		names = append(names, string(m))
	}
	return names
}

func runMode(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	if len(args) == 0 {
		settings, err := a.SettingsUC.Get(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSettings(settings.Theme, settings.OrganizationMode))
		return nil
	}

	mode, err := a.SettingsUC.SetOrganizationMode(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%w (want one of %s)", err, strings.Join(modeNames(), ", "))
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("organization mode set to %s", mode)))
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	if len(args) == 0 {
		settings, err := a.SettingsUC.Get(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSettings(settings.Theme, settings.OrganizationMode))
		return nil
	}

	var theme entity.Theme
	if args[0] == "toggle" {
		theme, err = a.SettingsUC.ToggleTheme(ctx)
	} else {
		theme, err = a.SettingsUC.SetTheme(ctx, args[0])
	}
	if err != nil {
		return err
	}
	a.SetTheme(styles.NewTheme(theme))
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("theme set to %s", theme)))
	return nil
}

func runSettings(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	settings, err := a.SettingsUC.Get(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSettings(settings.Theme, settings.OrganizationMode))
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	settings, err := a.SettingsUC.Reset(a.Ctx())
	if err != nil {
		return err
	}
	a.SetTheme(styles.NewTheme(settings.Theme))
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess("settings reset"))
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSettings(settings.Theme, settings.OrganizationMode))
	return nil
}
