package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zuhrulumam/fleet_inventory/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fleetclean configuration",
		Long: `Manage fleetclean configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Config file (--config, or ./` + config.DefaultFileName + `)
3. Defaults`,
	}

	cmd.AddCommand(a.newConfigShowCmd(), newConfigInitCmd())
	return cmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, map[string]string{}); err != nil {
				return err
			}

			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}

			data, err := yaml.Marshal(config.DefaultConfig())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create config file: %w", err)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close config file: %w", closeErr)
				}
			}()

			header := "# fleetclean configuration\n" +
				"#\n" +
				"# Command line flags override the values below.\n" +
				"# cleaning.corrections extend the built-in department spelling fixes;\n" +
				"# each 'from' is a single case-sensitive word. Example:\n" +
				"#\n" +
				"# cleaning:\n" +
				"#   corrections:\n" +
				"#     - from: Offcie\n" +
				"#       to: Office\n\n"
			if _, err := f.WriteString(header); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			if _, err := f.Write(data); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultFileName, "where to write the configuration file")
	return cmd
}
