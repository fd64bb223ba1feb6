package cmd

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, edit and locate the pinboard configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults and PINBOARD_* environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set one configuration value and write the file. The value is validated
before anything is written.

Keys:
  ` + strings.Join(config.Keys(), "\n  "),
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE:      runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configShowCmd, configSetCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path := appOpts.ConfigFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(a.ConfigManager.Get())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", a.ConfigManager.GetConfigFile())
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.ConfigManager.Set(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
	return nil
}
