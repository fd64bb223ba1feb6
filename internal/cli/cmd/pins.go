package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/domain/entity"
)

var (
	pinsJSON bool
	pinAlias string
	rmType   string
	rmKey    string
	rmDomain string
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Manage pinned properties",
	Long:  `List, add, remove, rename and reorder pinned properties.`,
	RunE:  runPinsList,
}

var pinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pinned property",
	Long: `List the full persisted pin list in stored order, across all domains.

The index shown is the one used by 'pins rm', 'pins alias' and 'pins move'.`,
	Args: cobra.NoArgs,
	RunE: runPinsList,
}

var pinsAddCmd = &cobra.Command{
	Use:   "add <type> <key>",
	Short: "Pin a property of the active tab",
	Long: `Pin a storage entry or cookie for the domain of the active tab.

Types: local (local-storage), session (session-storage), cookie.

Examples:
  pinboard pins add local auth_token
  pinboard pins add cookie sid --alias "Session id"`,
	Args: cobra.ExactArgs(2),
	RunE: runPinsAdd,
}

var pinsRmCmd = &cobra.Command{
	Use:   "rm [index]",
	Short: "Remove a pin",
	Long: `Remove a pin by its index in 'pins list', or by identity with
--type, --key and --domain (an empty domain matches legacy pins).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPinsRm,
}

var pinsAliasCmd = &cobra.Command{
	Use:   "alias <index> [alias]",
	Short: "Set the display name of a pin",
	Long:  `Set the alias of a pin. Without an alias the key is used again.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPinsAlias,
}

var pinsMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a pin before another one",
	Long: `Move the pin at index <from> so it sits right before the pin at
index <to>. Only available in custom organization mode.`,
	Args: cobra.ExactArgs(2),
	RunE: runPinsMove,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
	pinsCmd.AddCommand(pinsListCmd, pinsAddCmd, pinsRmCmd, pinsAliasCmd, pinsMoveCmd)

	pinsCmd.PersistentFlags().BoolVar(&pinsJSON, "json", false, "output as JSON")
	pinsAddCmd.Flags().StringVar(&pinAlias, "alias", "", "display name (defaults to the key)")

	pinsRmCmd.Flags().StringVar(&rmType, "type", "", "property type")
	pinsRmCmd.Flags().StringVar(&rmKey, "key", "", "property key")
	pinsRmCmd.Flags().StringVar(&rmDomain, "domain", "", "domain the pin belongs to")
}

func runPinsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	pins, err := a.PinsUC.ListAll(a.Ctx())
	if err != nil {
		return err
	}

	if pinsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pins)
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderPins(pins))
	return nil
}

func runPinsAdd(cmd *cobra.Command, args []string) error {
	t, err := entity.ParsePropertyType(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.check(s.panel.Pin(s.app.Ctx(), t, args[1], pinAlias)); err != nil {
		return err
	}
	_, domain := s.panel.Tab()
	fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(fmt.Sprintf("%s %s pinned on %s", t.Label(), args[1], domain)))
	return nil
}

func runPinsRm(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	rmByIdent := rmType != "" || rmKey != ""
	switch {
	case len(args) == 1 && rmByIdent:
		return fmt.Errorf("use either an index or --type/--key, not both")
	case len(args) == 1:
		pin, idx, err := pinAt(args[0])
		if err != nil {
			return err
		}
		if err := a.PinsUC.UnpinAt(ctx, idx); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("unpinned %s", pin.DisplayName())))
		return nil
	case rmByIdent:
		t, err := entity.ParsePropertyType(rmType)
		if err != nil {
			return err
		}
		if rmKey == "" {
			return fmt.Errorf("--key is required")
		}
		if err := a.PinsUC.UnpinByKey(ctx, t, rmKey, rmDomain); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("unpinned %s", rmKey)))
		return nil
	default:
		return fmt.Errorf("an index or --type and --key are required")
	}
}

func runPinsAlias(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	pin, _, err := pinAt(args[0])
	if err != nil {
		return err
	}
	alias := ""
	if len(args) == 2 {
		alias = args[1]
	}
	if err := a.PinsUC.Rename(a.Ctx(), pin.Identity(), alias); err != nil {
		return err
	}
	name := alias
	if name == "" {
		name = pin.Key
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("%s is now shown as %q", pin.Key, name)))
	return nil
}

func runPinsMove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	settings, err := a.SettingsUC.Get(ctx)
	if err != nil {
		return err
	}
	if settings.OrganizationMode != entity.OrganizeCustom {
		return fmt.Errorf("%w (run 'pinboard mode custom')", panel.ErrReorderRequiresCustomMode)
	}

	dragged, _, err := pinAt(args[0])
	if err != nil {
		return err
	}
	target, _, err := pinAt(args[1])
	if err != nil {
		return err
	}

	moved, err := a.PinsUC.Reorder(ctx, dragged.Identity(), target.Identity())
	if err != nil {
		return err
	}
	if !moved {
		fmt.Fprint(cmd.ErrOrStderr(), a.Renderer.RenderNotice("nothing to move"))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("moved %s before %s", dragged.DisplayName(), target.DisplayName())))
	return nil
}

// pinAt resolves an index of the persisted list.
func pinAt(arg string) (entity.PinnedProperty, int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return entity.PinnedProperty{}, 0, fmt.Errorf("invalid index %q", arg)
	}

	a := GetApp()
	pins, err := a.PinsUC.ListAll(a.Ctx())
	if err != nil {
		return entity.PinnedProperty{}, 0, err
	}
	if idx < 0 || idx >= len(pins) {
		return entity.PinnedProperty{}, 0, fmt.Errorf("no pin at index %d (have %d)", idx, len(pins))
	}
	return pins[idx], idx, nil
}
