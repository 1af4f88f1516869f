package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salairenet %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds the engine for year, with CLI logging when debug is set
func newEngine(cmd *cobra.Command, year int) (*calculation.SalaryEngine, error) {
	engine, err := calculation.NewSalaryEngineForYear(year)
	if err != nil {
		return nil, err
	}
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine, nil
}

// optionsFromFlags reads --fund, --dependents and --years
func optionsFromFlags(cmd *cobra.Command) (domain.AdvancedOptions, error) {
	fund, _ := cmd.Flags().GetString("fund")
	dependents, _ := cmd.Flags().GetInt("dependents")
	years, _ := cmd.Flags().GetInt("years")

	opts := domain.AdvancedOptions{Dependents: dependents, YearsOfService: years}
	if fund != "" {
		rate, err := decimal.NewFromString(strings.ReplaceAll(fund, ",", "."))
		if err != nil {
			return opts, fmt.Errorf("invalid --fund %q: %w", fund, err)
		}
		opts.AdditionalFundRate = rate
	}
	return opts, config.ValidateOptions(opts)
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("fund", "", "Supplementary fund rate in percent of gross (0-15), e.g. 6 for CIMR")
	cmd.Flags().Int("dependents", 0, "Number of dependents (0-10)")
	cmd.Flags().Int("years", 0, "Years of service, for the seniority bonus (0-40)")
}

// writeReport renders report with the named formatter to w, or to a timestamped
// file when toFile is set
func writeReport(w io.Writer, report *output.Report, format string, toFile bool) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s; aliases: %s)", format,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}
	if toFile || f.Name() == "pdf" {
		filename, err := output.WriteFormatted(f, report, fileExtension(f.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Report written to %s\n", filename)
		return nil
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func fileExtension(formatter string) string {
	switch formatter {
	case "console", "console-lite":
		return "txt"
	default:
		return formatter
	}
}

var rootCmd = &cobra.Command{
	Use:   "salairenet",
	Short: "Moroccan gross-to-net salary calculator",
	Long: "Computes the monthly net salary from a gross salary under the Moroccan rules " +
		"(CNSS, AMO, IPE, frais professionnels, IR, dependents, seniority bonus) " +
		"and places it against a market reference.",
	SilenceUsage: true,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate <gross>",
	Short: "Compute the net salary for one monthly gross salary",
	Example: `  salairenet calculate 10000
  salairenet calculate "12 500,00" --fund 6 --dependents 2 --years 6 -f json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gross, err := calculation.ParseGross(args[0])
		if err != nil {
			return err
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

		result, err := engine.ComputeSalary(gross, opts)
		if err != nil {
			return err
		}

		reference, _ := cmd.Flags().GetString("reference")
		name, _ := cmd.Flags().GetString("name")
		stats := engine.Market.ReferenceFor(domain.SalaryBasis(reference))
		report := output.NewSingleReport(engine, name, result, opts.YearsOfService, stats)

		format, _ := cmd.Flags().GetString("format")
		toFile, _ := cmd.Flags().GetBool("output-file")
		return writeReport(cmd.OutOrStdout(), report, format, toFile)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <scenario-file>",
	Short: "Compute every scenario of a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd, cfg.FiscalYear)
		if err != nil {
			return err
		}
		results, err := engine.RunScenarios(cfg)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		toFile, _ := cmd.Flags().GetBool("output-file")
		return writeReport(cmd.OutOrStdout(), output.NewReport(results), format, toFile)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <scenario-file>",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d scenarios, fiscal year %d)\n",
			args[0], len(cfg.Scenarios), cfg.FiscalYear)
		return nil
	},
}

var percentileCmd = &cobra.Command{
	Use:   "percentile <net>",
	Short: "Estimate the market percentile of a monthly net salary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := calculation.ParseGross(args[0])
		if err != nil {
			return err
		}
		market := calculation.NewMarketEstimator2025()
		percentile := market.PercentileOf(net)
		comparison := market.CompareToReference(net, market.Net)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Salaire net:  %s\n", output.FormatCurrency(net))
		fmt.Fprintf(out, "Percentile:   %s\n", output.FormatPercentile(percentile))
		fmt.Fprintf(out, "%s\n", calculation.PercentileSummary(percentile))
		fmt.Fprintf(out, "Vs médiane:   %s %%\n", comparison.VsMedianPct.StringFixed(1))
		if comparison.Band != "" {
			fmt.Fprintf(out, "Tranche:      %s (%s %% des salariés)\n", comparison.Band, comparison.BandShare.String())
		}

		if grossArg, _ := cmd.Flags().GetString("gross"); grossArg != "" {
			gross, err := calculation.ParseGross(grossArg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Position brut: %s\n", market.GrossPercentileLabel(gross))
		}
		return nil
	},
}

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Print the IR brackets and contribution rates of a fiscal year",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("fiscal-year")
		fy, err := calculation.LookupFiscalYear(year)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BARÈME IR %d (mensuel)\n", fy.Year)
		fmt.Fprintln(out, strings.Repeat("=", 60))
		fmt.Fprintf(out, "%-28s %8s %14s\n", "Tranche", "Taux", "Somme à déduire")
		for _, b := range fy.Brackets {
			upper := output.FormatAmount(b.UpperBound)
			if b.IsOpen() {
				upper = "∞"
			}
			fmt.Fprintf(out, "%-28s %8s %14s\n",
				fmt.Sprintf("%s - %s", output.FormatAmount(b.LowerBound), upper),
				output.FormatRate(b.Rate), output.FormatAmount(b.Subtraction))
		}

		c := fy.Contributions
		fmt.Fprintln(out)
		fmt.Fprintf(out, "CNSS: %s (plafond %s)\n", output.FormatRate(c.CNSSRate), output.FormatCurrency(c.CNSSCap))
		fmt.Fprintf(out, "AMO:  %s\n", output.FormatRate(c.AMORate))
		fmt.Fprintf(out, "IPE:  %s (plafond %s)\n", output.FormatRate(c.IPERate), output.FormatCurrency(c.IPECap))
		fmt.Fprintf(out, "Frais professionnels: %s (plafond %s)\n",
			output.FormatRate(c.FraisProRate), output.FormatCurrency(c.FraisProCap))
		fmt.Fprintf(out, "Personnes à charge: %s par an\n", output.FormatCurrency(fy.DependentAllowanceAnnual))
		return nil
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	calculateCmd.Flags().String("name", "", "Label shown on the report")
	calculateCmd.Flags().String("reference", "net", "Reference table for the market comparison (net, gross)")
	calculateCmd.Flags().Int("fiscal-year", 0, "Fiscal year of the tax tables (default: latest)")
	calculateCmd.Flags().Bool("output-file", false, "Write the report to a timestamped file")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	addOptionFlags(calculateCmd)

	runCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	runCmd.Flags().Bool("output-file", false, "Write the report to a timestamped file")
	runCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	percentileCmd.Flags().String("gross", "", "Also place this gross salary on the gross reference")

	bracketsCmd.Flags().Int("fiscal-year", 0, "Fiscal year (default: latest)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(percentileCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
