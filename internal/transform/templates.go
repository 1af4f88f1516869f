package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common salary what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Raises
	for _, pct := range []int64{5, 10, 20} {
		registry.Register(Template{
			Name:        fmt.Sprintf("raise_%dpct", pct),
			Description: fmt.Sprintf("Raise gross salary by %d%%", pct),
			Transforms: []ScenarioTransform{
				&ApplyRaise{Percent: decimal.NewFromInt(pct)},
			},
		})
	}

	// Seniority
	registry.Register(Template{
		Name:        "tenure_plus_5yr",
		Description: "Add 5 years of service (prime d'ancienneté)",
		Transforms: []ScenarioTransform{
			&AddYearsOfService{Years: 5},
		},
	})

	// Supplementary pension
	registry.Register(Template{
		Name:        "cimr_3pct",
		Description: "Contribute 3% to a supplementary pension fund (CIMR)",
		Transforms: []ScenarioTransform{
			&SetFundRate{Rate: decimal.NewFromInt(3)},
		},
	})

	registry.Register(Template{
		Name:        "cimr_6pct",
		Description: "Contribute 6% to a supplementary pension fund (CIMR)",
		Transforms: []ScenarioTransform{
			&SetFundRate{Rate: decimal.NewFromInt(6)},
		},
	})

	registry.Register(Template{
		Name:        "no_fund",
		Description: "Stop supplementary pension contributions",
		Transforms: []ScenarioTransform{
			&SetFundRate{Rate: decimal.Zero},
		},
	})

	// Family
	registry.Register(Template{
		Name:        "add_dependent",
		Description: "Add one dependent (500 MAD/year IR reduction)",
		Transforms: []ScenarioTransform{
			&AddDependents{Count: 1},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.SalaryScenario, template Template) (*domain.SalaryScenario, error) {
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	order := []string{"Salary", "Seniority", "Supplementary Pension", "Family"}
	categories := make(map[string][]Template, len(order))

	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case strings.HasPrefix(name, "raise_"):
			categories["Salary"] = append(categories["Salary"], template)
		case strings.HasPrefix(name, "tenure_"):
			categories["Seniority"] = append(categories["Seniority"], template)
		case strings.HasPrefix(name, "cimr_"), name == "no_fund":
			categories["Supplementary Pension"] = append(categories["Supplementary Pension"], template)
		default:
			categories["Family"] = append(categories["Family"], template)
		}
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  salairenet compare offers.yaml --with raise_10pct,cimr_6pct\n")
	sb.WriteString("  salairenet compare offers.yaml --base \"Offre A\" --with tenure_plus_5yr\n")

	return sb.String()
}
