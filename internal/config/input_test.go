package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	scenario, err := parser.LoadFromFile("testdata/scenario.yaml")
	require.NoError(t, err)

	assert.Equal(t, domain.TierEmployeeFamily, scenario.Tier())
	assert.Equal(t, domain.DisplayPerPayPeriod, scenario.Mode())
	assert.Equal(t, 5000.0, scenario.ExpectedAnnualSpend)
	assert.Equal(t, 1200.0, scenario.HSAContribution)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidateScenario(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name     string
		scenario Scenario
		wantErr  bool
	}{
		{"valid", Scenario{CoverageTier: "employee_only"}, false},
		{"valid with display mode", Scenario{CoverageTier: "employee_spouse", DisplayMode: "per_pay_period"}, false},
		{"missing tier", Scenario{}, true},
		{"unknown tier", Scenario{CoverageTier: "everyone"}, true},
		{"unknown display mode", Scenario{CoverageTier: "employee_only", DisplayMode: "weekly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateScenario(&tt.scenario)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteExampleScenarioRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	require.NoError(t, parser.WriteExampleScenario(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	example := parser.CreateExampleScenario()
	assert.Equal(t, example.CoverageTier, loaded.CoverageTier)
	assert.Equal(t, example.ExpectedAnnualSpend, loaded.ExpectedAnnualSpend)
	assert.Equal(t, example.HSAContribution, loaded.HSAContribution)
}
