package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/compare"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/transform"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario-file>",
	Short: "Compare a base scenario with what-if variants or with other scenarios",
	Long: `Compare a base scenario with templates (--with), ad-hoc transforms (--transform)
or, when neither is given, with the other scenarios of the file.

Transforms use the form name:key=value,... e.g. raise:percent=7.5 or set_fund_rate:rate=6.`,
	Example: `  salairenet compare offres.yaml --with raise_10pct,cimr_6pct
  salairenet compare offres.yaml --base "Offre A" --transform raise:percent=7.5
  salairenet compare --list-templates`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			fmt.Fprintf(out, "\nAd-hoc transforms: %s\n", strings.Join(transform.NewTransformRegistry().List(), ", "))
			return nil
		}

		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd, cfg.FiscalYear)
		if err != nil {
			return err
		}
		ce := compare.NewCompareEngine(engine)

		base, _ := cmd.Flags().GetString("base")
		templates := transform.ParseTemplateList(mustString(cmd, "with"))
		specs, _ := cmd.Flags().GetStringArray("transform")

		adHoc, err := registerTransforms(ce.TemplateRegistry, specs)
		if err != nil {
			return err
		}
		templates = append(templates, adHoc...)

		var compSet *compare.ComparisonSet
		if len(templates) > 0 {
			compSet, err = ce.Compare(cmd.Context(), cfg, compare.CompareOptions{
				BaseScenarioName: base,
				Templates:        templates,
			})
		} else {
			compSet, err = ce.CompareScenarios(cmd.Context(), cfg, base, nil)
		}
		if err != nil {
			return err
		}
		compSet.ConfigPath = args[0]

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
		case "compact":
			fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(compSet))
		case "csv":
			s, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
		case "json":
			s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
		default:
			return fmt.Errorf("unknown format %q (available: table, compact, csv, json)", format)
		}
		return nil
	},
}

// registerTransforms turns each transform spec into a one-transform template
// and returns the generated template names
func registerTransforms(registry *transform.TemplateRegistry, specs []string) ([]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	transforms := transform.NewTransformRegistry()
	names := make([]string, 0, len(specs))
	for i, spec := range specs {
		t, err := transforms.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("custom_%d", i+1)
		registry.Register(transform.Template{
			Name:        name,
			Description: t.Description(),
			Transforms:  []transform.ScenarioTransform{t},
		})
		names = append(names, name)
	}
	return names, nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	compareCmd.Flags().String("base", "", "Base scenario name (default: first scenario)")
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().StringArray("transform", nil, "Ad-hoc transform name:key=value (repeatable)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
}
