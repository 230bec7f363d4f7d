package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"irpef-tax-api/internal/models"
)

// BuildRateTable constructs the process-wide surtax rate table from the
// tax configuration. The built-in 2025 Italian dataset is the base; an
// optional YAML file replaces the region data entirely, and the default
// fallback rates can be overridden independently. The returned table is
// validated and read-only from here on.
func (c *TaxConfig) BuildRateTable() (*models.RateTable, error) {
	table := models.DefaultRateTable()

	if c.RatesFile != "" {
		loaded, err := LoadRateTable(c.RatesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rate table from %s: %w", c.RatesFile, err)
		}
		table = loaded
	}

	// Env-configured fallbacks win over both the built-in defaults and
	// the file's values.
	if c.DefaultRegionalRate > 0 {
		table.DefaultRegional = c.DefaultRegionalRate
	}
	if c.DefaultMunicipalRate > 0 {
		table.DefaultMunicipal = c.DefaultMunicipalRate
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate table: %w", err)
	}

	return table, nil
}

// LoadRateTable reads a rate table from a YAML file. Missing default
// rates fall back to the built-in ones.
func LoadRateTable(filename string) (*models.RateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	table := &models.RateTable{
		DefaultRegional:  models.DefaultRegionalRate,
		DefaultMunicipal: models.DefaultMunicipalRate,
	}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("rate table validation failed: %w", err)
	}

	return table, nil
}
