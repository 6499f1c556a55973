package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Loads the config the same way the game does (--config, then
~/.arcade/configs/frogger.yaml, then ./configs/frogger.yaml, then the
built-in defaults) and prints it.`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	out, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	out, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
