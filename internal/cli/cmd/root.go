// Package cmd provides Cobra CLI commands for pinboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/cli"
	"github.com/bnema/pinboard/internal/domain/build"
	"github.com/bnema/pinboard/internal/domain/entity"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.AppOptions
	rootCmd   = &cobra.Command{
		Use:   "pinboard",
		Short: "Pin and watch web storage and cookies of the active browser tab",
		Long: `Pinboard - a dashboard of the storage entries and cookies you care about.

Pinboard attaches to a Chromium-based browser over the DevTools protocol and
shows the properties you pinned for the site in the active tab: local storage,
session storage and cookies. Pins are remembered per domain.

Start the browser with --remote-debugging-port=9222 and point pinboard at it:

  pinboard --control-url 9222

Without a command pinboard opens the interactive dashboard, like
"pinboard tui". Without a control URL it launches its own browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "path", "schema":
				return nil
			}

			appOpts.Interactive = !cmd.HasParent() || cmd.Name() == "tui"
			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/pinboard/config.toml)")
	flags.BoolVar(&appOpts.Ephemeral, "ephemeral", false, "keep pins in memory only")
	flags.StringVar(&appOpts.ControlURL, "control-url", "", "DevTools endpoint of a running browser (ws://..., host:port or port)")
	flags.StringVar(&appOpts.Target, "target", "", "DevTools target id of the tab to inspect")
	flags.BoolVar(&appOpts.Headless, "headless", false, "launch the browser headless")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// session is a panel bound to an OutputRenderer for one command.
type session struct {
	app    *cli.App
	panel  *panel.Panel
	output *cli.OutputRenderer
}

// openSession attaches to the browser and loads the current tab.
func openSession(cmd *cobra.Command) (*session, error) {
	a, err := requireApp()
	if err != nil {
		return nil, err
	}
	out := cli.NewOutputRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.Renderer)
	p, err := a.NewPanel(out)
	if err != nil {
		return nil, err
	}
	s := &session{app: a, panel: p, output: out}
	if err := s.check(p.Refresh(a.Ctx())); err != nil {
		p.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) close() {
	s.panel.Close()
}

// check converts a failed operation result into an error.
func (s *session) check(res entity.OperationResult) error {
	return res.Err()
}
