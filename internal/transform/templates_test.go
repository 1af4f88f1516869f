package transform

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []ScenarioTransform{},
	}
	registry.Register(template)

	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestTemplateRegistry_List(t *testing.T) {
	registry := NewTemplateRegistry()

	registry.Register(Template{Name: "template2", Description: "Second"})
	registry.Register(Template{Name: "template1", Description: "First"})

	names := registry.List()
	if len(names) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(names))
	}
	if names[0] != "template1" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	expected := []string{
		"raise_5pct", "raise_10pct", "raise_20pct", "tenure_plus_5yr",
		"cimr_3pct", "cimr_6pct", "add_dependent", "no_fund",
	}
	for _, name := range expected {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected built-in template %s", name)
		}
	}
	if len(registry.List()) != len(expected) {
		t.Errorf("Expected %d templates, got %d", len(expected), len(registry.List()))
	}
}

func TestApplyTemplate(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := createTestScenario()

	tests := []struct {
		template string
		check    func(t *testing.T, gross decimal.Decimal, years, dependents int, fund decimal.Decimal)
	}{
		{"raise_10pct", func(t *testing.T, gross decimal.Decimal, _, _ int, _ decimal.Decimal) {
			if !gross.Equal(decimal.NewFromInt(11000)) {
				t.Errorf("Expected 11000, got %s", gross)
			}
		}},
		{"tenure_plus_5yr", func(t *testing.T, _ decimal.Decimal, years, _ int, _ decimal.Decimal) {
			if years != 9 {
				t.Errorf("Expected 9 years, got %d", years)
			}
		}},
		{"add_dependent", func(t *testing.T, _ decimal.Decimal, _, dependents int, _ decimal.Decimal) {
			if dependents != 2 {
				t.Errorf("Expected 2 dependents, got %d", dependents)
			}
		}},
		{"cimr_6pct", func(t *testing.T, _ decimal.Decimal, _, _ int, fund decimal.Decimal) {
			if !fund.Equal(decimal.NewFromInt(6)) {
				t.Errorf("Expected fund 6, got %s", fund)
			}
		}},
		{"no_fund", func(t *testing.T, _ decimal.Decimal, _, _ int, fund decimal.Decimal) {
			if !fund.IsZero() {
				t.Errorf("Expected no fund, got %s", fund)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			template, ok := registry.Get(tt.template)
			if !ok {
				t.Fatalf("template %s not found", tt.template)
			}
			result, err := ApplyTemplate(base, template)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, result.GrossSalary, result.Options.YearsOfService, result.Options.Dependents, result.Options.AdditionalFundRate)
		})
	}

	empty, err := ApplyTemplate(base, Template{Name: "empty"})
	if err != nil || empty == base {
		t.Error("Empty template should return a copy")
	}
}

func TestParseTemplateList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"raise_5pct", []string{"raise_5pct"}},
		{"raise_5pct, cimr_6pct", []string{"raise_5pct", "cimr_6pct"}},
		{"raise_5pct,,  ,no_fund", []string{"raise_5pct", "no_fund"}},
	}

	for _, tt := range tests {
		got := ParseTemplateList(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ParseTemplateList(%q) = %v, expected %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ParseTemplateList(%q)[%d] = %s, expected %s", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	for _, want := range []string{"Salary:", "Seniority:", "Supplementary Pension:", "Family:", "raise_20pct", "no_fund", "Usage:"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}

	if GetTemplateHelp(NewTemplateRegistry()) != "No templates registered" {
		t.Error("Expected empty registry message")
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		name    string
		wantErr bool
	}{
		{"raise:percent=7.5", "apply_raise", false},
		{"set_gross:amount=15000", "set_gross", false},
		{"set_contract:type=cdd", "set_contract", false},
		{"add_years:years=3", "add_years_of_service", false},
		{"set_dependents:count=2", "set_dependents", false},
		{"add_dependents:count=1", "add_dependents", false},
		{"set_fund_rate:rate=6", "set_fund_rate", false},
		{"raise", "", true},
		{"raise:pct=5", "", true},
		{"raise:percent=abc", "", true},
		{"add_years:years=two", "", true},
		{"raise:percent", "", true},
		{"unknown:x=1", "", true},
	}

	for _, tt := range tests {
		transform, err := registry.ParseTransformSpec(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.spec, err)
			continue
		}
		if transform.Name() != tt.name {
			t.Errorf("%s: expected %s, got %s", tt.spec, tt.name, transform.Name())
		}
	}

	contract, _ := registry.ParseTransformSpec("set_contract:type=cdd")
	if err := contract.Validate(createTestScenario()); err != nil {
		t.Errorf("lower-case contract type should be normalised: %v", err)
	}

	if len(registry.List()) != 7 {
		t.Errorf("Expected 7 registered transforms, got %d", len(registry.List()))
	}
}
