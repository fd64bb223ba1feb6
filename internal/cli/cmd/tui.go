package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/cli/model"
	"github.com/bnema/pinboard/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Long: `Open a live dashboard that follows the active browser tab.

The dashboard refreshes when the tab changes, searches as you type and lets
you pin, unpin, rename and reorder properties. Press ? for keybindings.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runTUI
}

func runTUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	defer logging.LogPanic(a.Ctx())

	renderer := model.NewProgramRenderer()
	p, err := a.NewPanel(renderer)
	if err != nil {
		return err
	}
	defer p.Close()
	if err := a.WatchConfig(p); err != nil {
		logging.FromContext(a.Ctx()).Warn().Err(err).Msg("config watch unavailable")
	}

	m := model.NewDashboardModel(a.Ctx(), a.Theme, p)
	program := tea.NewProgram(m, tea.WithAltScreen())
	renderer.Attach(program.Send)

	_, err = program.Run()
	return err
}
