package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "salairenet-tui [scenario-file]",
	Short: "Interactive gross-to-net salary calculator",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := ""
		if len(args) == 1 {
			configPath = args[0]
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				return fmt.Errorf("config file not found: %s", configPath)
			}
		}

		year, _ := cmd.Flags().GetInt("fiscal-year")
		engine, err := calculation.NewSalaryEngineForYear(year)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewModel(engine, configPath), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().Int("fiscal-year", 0, "Fiscal year of the tax tables (default: latest)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
