package models

// TaxCalculationRequest is the input for a single tax calculation.
// Gross income of 0 is valid and yields all-zero monetary outputs.
type TaxCalculationRequest struct {
	GrossIncome    float64 `json:"gross_income" binding:"gte=0"`
	EmploymentType string  `json:"employment_type" binding:"required"`
	Region         string  `json:"region" binding:"required"`
	Province       string  `json:"province" binding:"required"`
	City           string  `json:"city" binding:"required"`
}

// TaxResult is the fully populated outcome of one engine invocation.
// All monetary fields are non-negative except the net incomes, which are
// deliberately not clamped at zero.
type TaxResult struct {
	GrossIncome       float64 `json:"gross_income"`
	INPSContributions float64 `json:"inps_contributions"`
	TaxableIncome     float64 `json:"taxable_income"`
	IRPEFTax          float64 `json:"irpef_tax"`
	RegionalSurtax    float64 `json:"regional_surtax"`
	MunicipalSurtax   float64 `json:"municipal_surtax"`
	TotalTaxPayable   float64 `json:"total_tax_payable"`
	NetAnnualIncome   float64 `json:"net_annual_income"`
	NetMonthlyIncome  float64 `json:"net_monthly_income"`
	EmployeeDeduction float64 `json:"employee_deduction"`
	EffectiveTaxRate  float64 `json:"effective_tax_rate"`
}

// ComparisonRequest is the input for comparing two income scenarios that
// share employment type and geography.
type ComparisonRequest struct {
	CurrentIncome    float64 `json:"current_income" binding:"gte=0"`
	ComparisonIncome float64 `json:"comparison_income" binding:"gte=0"`
	EmploymentType   string  `json:"employment_type" binding:"required"`
	Region           string  `json:"region" binding:"required"`
	Province         string  `json:"province" binding:"required"`
	City             string  `json:"city" binding:"required"`
}

// Differences holds the deltas between two tax calculations. The marginal
// tax rate is zero when the income difference is zero.
type Differences struct {
	IncomeDifference float64 `json:"income_difference"`
	TaxDifference    float64 `json:"tax_difference"`
	NetDifference    float64 `json:"net_difference"`
	MarginalTaxRate  float64 `json:"marginal_tax_rate"`
}

// ComparisonResult pairs two tax results with their differences.
type ComparisonResult struct {
	Current     *TaxResult  `json:"current"`
	Comparison  *TaxResult  `json:"comparison"`
	Differences Differences `json:"differences"`
}

// OptimizationTip is a static tax optimization suggestion.
type OptimizationTip struct {
	Category         string `json:"category"`
	Tip              string `json:"tip"`
	PotentialSavings string `json:"potential_savings"`
}
