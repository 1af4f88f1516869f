package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("raise", createApplyRaise)
	registry.Register("set_gross", createSetGross)
	registry.Register("set_contract", createSetContractType)
	registry.Register("add_years", createAddYearsOfService)
	registry.Register("set_dependents", createSetDependents)
	registry.Register("add_dependents", createAddDependents)
	registry.Register("set_fund_rate", createSetFundRate)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "raise:percent=7.5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func requireParam(params map[string]string, transform, key string) (string, error) {
	value, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return value, nil
}

func decimalParam(params map[string]string, transform, key string) (decimal.Decimal, error) {
	raw, err := requireParam(params, transform, key)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func intParam(params map[string]string, transform, key string) (int, error) {
	raw, err := requireParam(params, transform, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func createApplyRaise(params map[string]string) (ScenarioTransform, error) {
	percent, err := decimalParam(params, "raise", "percent")
	if err != nil {
		return nil, err
	}
	return &ApplyRaise{Percent: percent}, nil
}

func createSetGross(params map[string]string) (ScenarioTransform, error) {
	amount, err := decimalParam(params, "set_gross", "amount")
	if err != nil {
		return nil, err
	}
	return &SetGross{Amount: amount}, nil
}

func createSetContractType(params map[string]string) (ScenarioTransform, error) {
	contract, err := requireParam(params, "set_contract", "type")
	if err != nil {
		return nil, err
	}
	return &SetContractType{ContractType: domain.ContractType(strings.ToUpper(contract))}, nil
}

func createAddYearsOfService(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam(params, "add_years", "years")
	if err != nil {
		return nil, err
	}
	return &AddYearsOfService{Years: years}, nil
}

func createSetDependents(params map[string]string) (ScenarioTransform, error) {
	count, err := intParam(params, "set_dependents", "count")
	if err != nil {
		return nil, err
	}
	return &SetDependents{Count: count}, nil
}

func createAddDependents(params map[string]string) (ScenarioTransform, error) {
	count, err := intParam(params, "add_dependents", "count")
	if err != nil {
		return nil, err
	}
	return &AddDependents{Count: count}, nil
}

func createSetFundRate(params map[string]string) (ScenarioTransform, error) {
	rate, err := decimalParam(params, "set_fund_rate", "rate")
	if err != nil {
		return nil, err
	}
	return &SetFundRate{Rate: rate}, nil
}
