package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/app/panel"
)

var (
	dashboardJSON bool
	searchJSON    bool
	searchPin     int
	searchAlias   string
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"show"},
	Short:   "Show the pinned properties of the active tab",
	Long: `Load live storage and cookies from the active tab and print every
property pinned for its domain, in the current organization mode.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search storage and cookies of the active tab",
	Long: `Search keys and values of local storage, session storage and cookies
of the active tab (case-insensitive, at least two characters).

Results are numbered from 1; use --pin N to pin one of them.

Examples:
  pinboard search token
  pinboard search token --pin 2 --alias "API token"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(dashboardCmd, searchCmd)

	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "output as JSON")

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().IntVar(&searchPin, "pin", 0, "pin result number N")
	searchCmd.Flags().StringVar(&searchAlias, "alias", "", "alias for the pinned result")
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	s.output.SetJSON(dashboardJSON)
	s.output.SetEcho(true)
	return s.check(s.panel.Rerender(s.app.Ctx()))
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	ctx := s.app.Ctx()

	s.output.SetJSON(searchJSON)
	s.output.SetEcho(searchPin == 0)
	if err := s.check(s.panel.RunSearch(ctx, query)); err != nil {
		return err
	}
	if searchPin == 0 {
		return nil
	}

	view, _ := s.output.LastSearch()
	if searchPin < 1 || searchPin > len(view.Results) {
		return fmt.Errorf("no result %d for %q (%d results)", searchPin, query, len(view.Results))
	}
	result := view.Results[searchPin-1]

	s.output.SetEcho(false)
	out := s.panel.PinSearchResult(ctx, result, searchAlias)
	if err := s.check(out.OperationResult); err != nil {
		return err
	}
	if msg := pinnedMessage(out, view.Domain); msg != "" {
		fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(msg))
	}
	return nil
}

// pinnedMessage confirms a new pin. An existing pin was already reported
// as a notice and gets no confirmation.
func pinnedMessage(out panel.PinOutcome, domain string) string {
	if out.AlreadyPinned {
		return ""
	}
	return fmt.Sprintf("%s %s pinned on %s", out.Property.Type.Label(), out.Property.DisplayName(), domain)
}
