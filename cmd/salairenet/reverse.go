package main

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/breakeven"
	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <target-net>",
	Short: "Find the gross salary that yields a target net salary",
	Example: `  salairenet reverse 8000
  salairenet reverse 8000 --dependents 3 -f json
  salairenet reverse 8000 --config offres.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := calculation.ParseGross(args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		if format != "table" && format != "json" {
			return fmt.Errorf("unknown format %q (available: table, json)", format)
		}
		out := cmd.OutOrStdout()

		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd, cfg.FiscalYear)
			if err != nil {
				return err
			}
			result, err := breakeven.NewDefaultSolver(engine).GrossForNetScenarios(cmd.Context(), target, cfg)
			if err != nil {
				return err
			}
			if format == "json" {
				s, err := (&breakeven.JSONFormatter{Pretty: true}).FormatScenarios(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
				return nil
			}
			fmt.Fprint(out, (&breakeven.TableFormatter{}).FormatScenarios(result))
			return nil
		}

		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		year, _ := cmd.Flags().GetInt("fiscal-year")
		engine, err := newEngine(cmd, year)
		if err != nil {
			return err
		}
		result, err := breakeven.NewDefaultSolver(engine).GrossForNetValue(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
		if format == "json" {
			s, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
			return nil
		}
		fmt.Fprint(out, (&breakeven.TableFormatter{}).Format(result))
		return nil
	},
}

func init() {
	reverseCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	reverseCmd.Flags().String("config", "", "Solve for every scenario of this file instead of the flags")
	reverseCmd.Flags().Int("fiscal-year", 0, "Fiscal year of the tax tables (default: latest)")
	reverseCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	addOptionFlags(reverseCmd)
}
