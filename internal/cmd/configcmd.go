package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/config"
)

// ConfigCmd returns the `vlist config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vlist configuration",
	}
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := config.Load(); err == nil {
					return fmt.Errorf("config already exists at %s (use --force to overwrite)", config.Path())
				}
			}
			cfg := config.Default()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", config.Path())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cfg, err := config.Load()
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					def := config.Default()
					cfg = &def
					fmt.Fprintln(out, "no config file; showing defaults")
				} else {
					return err
				}
			}
			fmt.Fprintf(out, "visible_count: %d\n", cfg.VisibleCount)
			fmt.Fprintf(out, "overscan: %d\n", cfg.Overscan)
			fmt.Fprintf(out, "direction: %s\n", cfg.Direction)
			if cfg.DataFile != "" {
				fmt.Fprintf(out, "data_file: %s\n", cfg.DataFile)
			}
			fmt.Fprintf(out, "demo_rows: %d\n", cfg.DemoRows)
			fmt.Fprintf(out, "mouse_wheel: %t\n", cfg.MouseWheel)
			return nil
		},
	}
}
