package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/cmd"
	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/data"
	"github.com/gravitrone/vlist/internal/ui"
)

func main() {
	var dataFile string

	root := &cobra.Command{
		Use:   "vlist",
		Short: "vlist - windowed list browser",
		Long:  "vlist renders large collections in a terminal viewport, materializing only the rows near the scroll position.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(dataFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&dataFile, "data", "", "YAML dataset file (overrides config data_file)")

	root.AddCommand(cmd.WindowCmd())
	root.AddCommand(cmd.ConfigCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(dataFile string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	dataset, err := loadDataset(cfg, dataFile)
	if err != nil {
		return err
	}

	app := ui.NewApp(cfg, dataset)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseWheel {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func loadDataset(cfg *config.Config, dataFile string) (*data.Dataset, error) {
	path := dataFile
	if path == "" {
		path = cfg.DataFile
	}
	if path != "" {
		return data.LoadFile(path)
	}
	return data.Generate(cfg.DemoRows), nil
}
