package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/config"
	"github.com/xdg/zrpcd/internal/term"
)

var configShowFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the zrpcd configuration file",
	Long: `Manage zrpcd's configuration file.

The configuration file is stored at ~/.config/zrpcd/config.yaml
(or $XDG_CONFIG_HOME/zrpcd/config.yaml if XDG_CONFIG_HOME is set) unless
--config names another file. A .toml extension selects TOML syntax.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective config",
	Long: `Print the effective configuration: defaults, then the file, then
ZRPCD_* environment overrides.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	Args:  cobra.NoArgs,
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	Long: `Create a commented configuration file if it doesn't exist.
If the file already exists, this command does nothing.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml", "output format: yaml or toml")
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	var format config.Format
	switch configShowFormat {
	case "yaml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		return fmt.Errorf("unknown format %q, must be yaml or toml", configShowFormat)
	}

	cfg, err := config.Load(effectiveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := config.Marshal(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	term.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	term.Println(effectiveConfigPath())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := effectiveConfigPath()

	if _, err := os.Stat(path); err == nil {
		term.Warn("%s already exists, leaving it unchanged", path)
		return nil
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	term.Printf("Created default config at: %s\n", path)
	return nil
}
