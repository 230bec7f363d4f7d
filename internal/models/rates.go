package models

import (
	"errors"
	"fmt"
	"sort"
)

// Default surtax rates applied when geography is partially or fully
// unknown. Rates are percentage points (2.3 means 2.3%).
const (
	DefaultRegionalRate  = 2.3
	DefaultMunicipalRate = 0.6
)

// Sentinel errors for the geography listing endpoints. Tax calculations
// never return these; unknown geography silently falls back to the
// default rates instead.
var (
	ErrRegionNotFound   = errors.New("region not found")
	ErrProvinceNotFound = errors.New("province not found")
)

// ProvinceRates holds the municipal surtax rates for the cities of a
// single province.
type ProvinceRates struct {
	MunicipalRates map[string]float64 `yaml:"municipal_rates" json:"municipal_rates"`
}

// RegionRates holds the regional surtax rate and the per-province
// municipal rates for a single region.
type RegionRates struct {
	RegionalRate float64                  `yaml:"regional_rate" json:"regional_rate"`
	Provinces    map[string]ProvinceRates `yaml:"provinces" json:"provinces"`
}

// RateTable is the process-wide reference table for regional and
// municipal surtax rates. It is built once at startup and read-only
// afterwards, so it may be shared across concurrent requests without
// synchronization.
type RateTable struct {
	Regions map[string]RegionRates `yaml:"regions" json:"regions"`

	// Fallback rates for unmatched geography, percentage points.
	DefaultRegional  float64 `yaml:"default_regional_rate" json:"default_regional_rate"`
	DefaultMunicipal float64 `yaml:"default_municipal_rate" json:"default_municipal_rate"`
}

// DefaultRateTable returns the built-in 2025 Italian rate dataset.
func DefaultRateTable() *RateTable {
	return &RateTable{
		DefaultRegional:  DefaultRegionalRate,
		DefaultMunicipal: DefaultMunicipalRate,
		Regions: map[string]RegionRates{
			"Lombardia": {
				RegionalRate: 1.73,
				Provinces: map[string]ProvinceRates{
					"Milano":  {MunicipalRates: map[string]float64{"Milano": 0.8, "Monza": 0.6, "Como": 0.5}},
					"Bergamo": {MunicipalRates: map[string]float64{"Bergamo": 0.7, "Treviglio": 0.5}},
					"Brescia": {MunicipalRates: map[string]float64{"Brescia": 0.6, "Desenzano del Garda": 0.4}},
					"Varese":  {MunicipalRates: map[string]float64{"Varese": 0.5, "Busto Arsizio": 0.6}},
					"Pavia":   {MunicipalRates: map[string]float64{"Pavia": 0.5, "Vigevano": 0.4}},
				},
			},
			"Lazio": {
				RegionalRate: 3.33,
				Provinces: map[string]ProvinceRates{
					"Roma":      {MunicipalRates: map[string]float64{"Roma": 0.9, "Guidonia": 0.8, "Fiumicino": 0.7}},
					"Latina":    {MunicipalRates: map[string]float64{"Latina": 0.8, "Aprilia": 0.6}},
					"Frosinone": {MunicipalRates: map[string]float64{"Frosinone": 0.7, "Cassino": 0.5}},
				},
			},
			"Veneto": {
				RegionalRate: 1.23,
				Provinces: map[string]ProvinceRates{
					"Venezia": {MunicipalRates: map[string]float64{"Venezia": 0.8, "Mestre": 0.8, "Mira": 0.6}},
					"Verona":  {MunicipalRates: map[string]float64{"Verona": 0.7, "Legnago": 0.5}},
					"Padova":  {MunicipalRates: map[string]float64{"Padova": 0.8, "Cittadella": 0.5}},
					"Vicenza": {MunicipalRates: map[string]float64{"Vicenza": 0.6, "Bassano del Grappa": 0.5}},
				},
			},
			"Piemonte": {
				RegionalRate: 3.33,
				Provinces: map[string]ProvinceRates{
					"Torino": {MunicipalRates: map[string]float64{"Torino": 0.8, "Moncalieri": 0.7, "Rivoli": 0.6}},
					"Cuneo":  {MunicipalRates: map[string]float64{"Cuneo": 0.6, "Alba": 0.5}},
					"Asti":   {MunicipalRates: map[string]float64{"Asti": 0.7, "Nizza Monferrato": 0.5}},
				},
			},
			"Campania": {
				RegionalRate: 3.33,
				Provinces: map[string]ProvinceRates{
					"Napoli":  {MunicipalRates: map[string]float64{"Napoli": 0.8, "Pozzuoli": 0.7, "Torre del Greco": 0.6}},
					"Salerno": {MunicipalRates: map[string]float64{"Salerno": 0.7, "Battipaglia": 0.6}},
					"Caserta": {MunicipalRates: map[string]float64{"Caserta": 0.6, "Aversa": 0.5}},
				},
			},
			"Emilia-Romagna": {
				RegionalRate: 2.03,
				Provinces: map[string]ProvinceRates{
					"Bologna":       {MunicipalRates: map[string]float64{"Bologna": 0.8, "Imola": 0.6, "San Lazzaro": 0.5}},
					"Modena":        {MunicipalRates: map[string]float64{"Modena": 0.7, "Carpi": 0.6}},
					"Parma":         {MunicipalRates: map[string]float64{"Parma": 0.6, "Fidenza": 0.5}},
					"Reggio Emilia": {MunicipalRates: map[string]float64{"Reggio Emilia": 0.7, "Correggio": 0.5}},
				},
			},
			"Toscana": {
				RegionalRate: 2.03,
				Provinces: map[string]ProvinceRates{
					"Firenze": {MunicipalRates: map[string]float64{"Firenze": 0.3, "Scandicci": 0.5, "Sesto Fiorentino": 0.4}},
					"Pisa":    {MunicipalRates: map[string]float64{"Pisa": 0.6, "Pontedera": 0.5}},
					"Livorno": {MunicipalRates: map[string]float64{"Livorno": 0.7, "Piombino": 0.6}},
					"Siena":   {MunicipalRates: map[string]float64{"Siena": 0.5, "Poggibonsi": 0.4}},
				},
			},
		},
	}
}

// Validate checks that every configured rate is non-negative and that the
// table has at least one region.
func (t *RateTable) Validate() error {
	if len(t.Regions) == 0 {
		return errors.New("rate table must contain at least one region")
	}
	if t.DefaultRegional < 0 {
		return fmt.Errorf("default regional rate must be non-negative, got %f", t.DefaultRegional)
	}
	if t.DefaultMunicipal < 0 {
		return fmt.Errorf("default municipal rate must be non-negative, got %f", t.DefaultMunicipal)
	}
	for region, r := range t.Regions {
		if r.RegionalRate < 0 {
			return fmt.Errorf("region %s: regional rate must be non-negative, got %f", region, r.RegionalRate)
		}
		for province, p := range r.Provinces {
			for city, rate := range p.MunicipalRates {
				if rate < 0 {
					return fmt.Errorf("region %s, province %s, city %s: municipal rate must be non-negative, got %f",
						region, province, city, rate)
				}
			}
		}
	}
	return nil
}

// RegionNames returns the configured region names in sorted order.
func (t *RateTable) RegionNames() []string {
	names := make([]string, 0, len(t.Regions))
	for name := range t.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProvinceNames returns the province names for a region in sorted order.
func (t *RateTable) ProvinceNames(region string) ([]string, error) {
	r, ok := t.Regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, region)
	}

	names := make([]string, 0, len(r.Provinces))
	for name := range r.Provinces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CityNames returns the city names for a province in sorted order.
func (t *RateTable) CityNames(region, province string) ([]string, error) {
	r, ok := t.Regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, region)
	}

	p, ok := r.Provinces[province]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProvinceNotFound, province)
	}

	names := make([]string, 0, len(p.MunicipalRates))
	for name := range p.MunicipalRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// RegionalRate returns the regional surtax rate for a region, or the
// default rate when the region is not in the table.
func (t *RateTable) RegionalRate(region string) float64 {
	if r, ok := t.Regions[region]; ok {
		return r.RegionalRate
	}
	return t.DefaultRegional
}

// MunicipalRate returns the municipal surtax rate for a city. The exact
// configured rate is used only when region, province and city all match;
// any partial match falls back to the municipal default.
func (t *RateTable) MunicipalRate(region, province, city string) float64 {
	if r, ok := t.Regions[region]; ok {
		if p, ok := r.Provinces[province]; ok {
			if rate, ok := p.MunicipalRates[city]; ok {
				return rate
			}
		}
	}
	return t.DefaultMunicipal
}

// ResolveSurtaxes computes the regional and municipal surtax amounts for
// the given taxable income and geography. Non-positive taxable income
// yields zero for both.
func (t *RateTable) ResolveSurtaxes(taxableIncome float64, region, province, city string) (regionalSurtax, municipalSurtax float64) {
	if taxableIncome <= 0 {
		return 0, 0
	}

	regionalSurtax = RoundMoney(taxableIncome * (t.RegionalRate(region) / 100))
	municipalSurtax = RoundMoney(taxableIncome * (t.MunicipalRate(region, province, city) / 100))
	return regionalSurtax, municipalSurtax
}
