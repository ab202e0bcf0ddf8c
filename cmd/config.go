package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage promptpack configuration",
	Long: `Inspect and manage promptpack configuration.

Configuration is layered: command-line flags override the project file
(.promptpack.yaml at --root), which overrides the global file
(~/.promptpack.yaml), which overrides PROMPTPACK_* environment variables.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective merged configuration as YAML",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a global configuration file interactively",
	Long: `Walk through the main settings (output format, default excludes,
gitignore handling) and write them to ~/.promptpack.yaml.`,
	RunE: runConfigInit,
}

var configShowRoot string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringVar(&configShowRoot, "root", ".", "Project base directory for the project config file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPackConfig(configShowRoot, map[string]interface{}{
		"debug": debugFlag,
	})
	if err != nil {
		return err
	}

	data, err := cfg.EffectiveYAML()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewWizardModel())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running config wizard: %w", err)
	}

	m, ok := finalModel.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if m.Err != nil {
		return m.Err
	}
	if m.SavedConfig {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", m.ConfigPath)
	}
	return nil
}
