package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// Scenario is the saved form of the calculator inputs: the coverage tier,
// the two numeric assumptions and the premium display toggle. Amounts are
// raw user numbers; normalization and clamping happen at the call site.
type Scenario struct {
	CoverageTier        string  `yaml:"coverage_tier" json:"coverage_tier"`
	ExpectedAnnualSpend float64 `yaml:"expected_annual_spend" json:"expected_annual_spend"`
	HSAContribution     float64 `yaml:"hsa_contribution" json:"hsa_contribution"`
	DisplayMode         string  `yaml:"display_mode,omitempty" json:"display_mode,omitempty"`

	// CatalogFile optionally points at a plan-year catalog override.
	CatalogFile string `yaml:"catalog_file,omitempty" json:"catalog_file,omitempty"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario validates the loaded scenario.
func (ip *InputParser) ValidateScenario(scenario *Scenario) error {
	if scenario.CoverageTier == "" {
		return fmt.Errorf("coverage tier is required")
	}
	if _, err := domain.ParseCoverageTier(scenario.CoverageTier); err != nil {
		return err
	}
	if _, err := domain.ParseDisplayMode(scenario.DisplayMode); err != nil {
		return err
	}
	return nil
}

// Tier returns the parsed coverage tier. Call after validation.
func (s *Scenario) Tier() domain.CoverageTier {
	tier, _ := domain.ParseCoverageTier(s.CoverageTier)
	return tier
}

// Mode returns the parsed display mode, defaulting to monthly.
func (s *Scenario) Mode() domain.DisplayMode {
	mode, _ := domain.ParseDisplayMode(s.DisplayMode)
	return mode
}

// CreateExampleScenario returns a starter scenario for the example-config
// command.
func (ip *InputParser) CreateExampleScenario() *Scenario {
	return &Scenario{
		CoverageTier:        string(domain.TierEmployeeFamily),
		ExpectedAnnualSpend: 5000,
		HSAContribution:     1200,
		DisplayMode:         string(domain.DisplayMonthly),
	}
}

// WriteExampleScenario writes the starter scenario as YAML to filename.
func (ip *InputParser) WriteExampleScenario(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleScenario())
	if err != nil {
		return fmt.Errorf("failed to marshal example scenario: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
