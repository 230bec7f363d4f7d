package services

import (
	"context"
	"fmt"

	"irpef-tax-api/internal/models"
)

// TaxService computes Italian personal income tax liabilities. It is a
// pure function of its inputs plus the rate table: no shared mutable
// state, safe for concurrent use.
type TaxService struct {
	rates *models.RateTable
}

// NewTaxService creates a new tax service backed by the given rate table.
func NewTaxService(rates *models.RateTable) *TaxService {
	return &TaxService{
		rates: rates,
	}
}

// RateTable returns the reference table this service calculates with.
func (s *TaxService) RateTable() *models.RateTable {
	return s.rates
}

// CalculateTax runs the full calculation sequence for one input. The step
// order is a contract: each step depends on the output of the previous
// one, and every monetary value is rounded as it is produced.
//
// Unknown employment types are tolerated as a zero-contribution,
// zero-deduction fallback; unknown geography falls back to the default
// surtax rates.
func (s *TaxService) CalculateTax(ctx context.Context, req *models.TaxCalculationRequest) (*models.TaxResult, error) {
	if req == nil {
		return nil, fmt.Errorf("tax calculation request cannot be nil")
	}

	grossIncome := req.GrossIncome
	employmentType := models.ParseEmploymentType(req.EmploymentType)

	contributions := models.CalculateContributions(grossIncome, employmentType)

	taxableIncome := grossIncome - contributions

	// Keyed to gross income, not taxable income: deduction brackets are
	// defined on gross pay.
	deduction := models.CalculateDeduction(grossIncome, employmentType)

	irpefBeforeDeduction := models.CalculateProgressiveTax(taxableIncome)
	irpefTax := irpefBeforeDeduction - deduction
	if irpefTax < 0 {
		irpefTax = 0
	}

	regionalSurtax, municipalSurtax := s.rates.ResolveSurtaxes(taxableIncome, req.Region, req.Province, req.City)

	totalTax := irpefTax + regionalSurtax + municipalSurtax

	// Not clamped at zero: adversarial inputs where tax exceeds income
	// produce a negative net, matching the reference behavior.
	netAnnual := grossIncome - contributions - totalTax
	netMonthly := models.RoundMoney(netAnnual / 12)

	var effectiveRate float64
	if grossIncome > 0 {
		effectiveRate = models.RoundMoney(totalTax / grossIncome * 100)
	}

	return &models.TaxResult{
		GrossIncome:       grossIncome,
		INPSContributions: contributions,
		TaxableIncome:     taxableIncome,
		IRPEFTax:          irpefTax,
		RegionalSurtax:    regionalSurtax,
		MunicipalSurtax:   municipalSurtax,
		TotalTaxPayable:   totalTax,
		NetAnnualIncome:   netAnnual,
		NetMonthlyIncome:  netMonthly,
		EmployeeDeduction: deduction,
		EffectiveTaxRate:  effectiveRate,
	}, nil
}

// CompareIncome calculates both income scenarios and derives the deltas
// between them. The two calculations are independent; the marginal tax
// rate is zero when the incomes are identical.
func (s *TaxService) CompareIncome(ctx context.Context, req *models.ComparisonRequest) (*models.ComparisonResult, error) {
	if req == nil {
		return nil, fmt.Errorf("comparison request cannot be nil")
	}

	current, err := s.CalculateTax(ctx, &models.TaxCalculationRequest{
		GrossIncome:    req.CurrentIncome,
		EmploymentType: req.EmploymentType,
		Region:         req.Region,
		Province:       req.Province,
		City:           req.City,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate current income: %w", err)
	}

	comparison, err := s.CalculateTax(ctx, &models.TaxCalculationRequest{
		GrossIncome:    req.ComparisonIncome,
		EmploymentType: req.EmploymentType,
		Region:         req.Region,
		Province:       req.Province,
		City:           req.City,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate comparison income: %w", err)
	}

	incomeDifference := req.ComparisonIncome - req.CurrentIncome
	taxDifference := comparison.TotalTaxPayable - current.TotalTaxPayable
	netDifference := comparison.NetAnnualIncome - current.NetAnnualIncome

	var marginalRate float64
	if incomeDifference != 0 {
		marginalRate = models.RoundMoney(taxDifference / incomeDifference * 100)
	}

	return &models.ComparisonResult{
		Current:    current,
		Comparison: comparison,
		Differences: models.Differences{
			IncomeDifference: incomeDifference,
			TaxDifference:    taxDifference,
			NetDifference:    netDifference,
			MarginalTaxRate:  marginalRate,
		},
	}, nil
}

// TaxServiceInterface defines the interface for tax calculation services
type TaxServiceInterface interface {
	CalculateTax(ctx context.Context, req *models.TaxCalculationRequest) (*models.TaxResult, error)
	CompareIncome(ctx context.Context, req *models.ComparisonRequest) (*models.ComparisonResult, error)
	RateTable() *models.RateTable
}
