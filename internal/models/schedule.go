package models

import "github.com/shopspring/decimal"

// INPS contribution rates for 2025.
// Employees pay roughly 9.19% for pension plus 0.30% for unemployment.
// Freelancers registered with the Gestione Separata pay approximately 24%.
// Pensioners pay no INPS on pension income.
const (
	EmployeeContributionRate   = 0.0949
	FreelancerContributionRate = 0.24
)

// IRPEF progressive brackets for 2025.
const (
	IRPEFFirstBracketCeiling  = 28000.0
	IRPEFSecondBracketCeiling = 50000.0
	IRPEFFirstBracketRate     = 0.23
	IRPEFSecondBracketRate    = 0.35
	IRPEFThirdBracketRate     = 0.43
)

// RoundMoney rounds a monetary value to 2 decimal places, half up.
// Every intermediate monetary value is rounded immediately after it is
// computed; deferring rounding shifts results by fractions of a cent.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// CalculateContributions computes INPS social security contributions for
// the given gross income and employment type. Unrecognized employment
// types contribute nothing; this is a deliberate fallback, not an error.
func CalculateContributions(grossIncome float64, employmentType EmploymentType) float64 {
	switch employmentType {
	case EmploymentEmployee:
		return RoundMoney(grossIncome * EmployeeContributionRate)
	case EmploymentFreelancer:
		return RoundMoney(grossIncome * FreelancerContributionRate)
	case EmploymentPensioner:
		return 0
	}
	return 0
}

// CalculateDeduction computes the standard employment or pension deduction
// (detrazione per lavoro dipendente / da pensione). The schedule is keyed
// to gross income, not taxable income; Italian deduction brackets are
// defined on gross pay.
//
// Boundary tests are inclusive on the lower comparison (<=), so the
// breakpoints at 15000, 28000 and 50000 (employee) and 7500 and 15000
// (pensioner) fall into the lower piece.
func CalculateDeduction(grossIncome float64, employmentType EmploymentType) float64 {
	switch employmentType {
	case EmploymentEmployee:
		switch {
		case grossIncome <= 15000:
			return 1955.0
		case grossIncome <= 28000:
			return RoundMoney(1955 - ((grossIncome-15000)/13000)*45)
		case grossIncome <= 50000:
			return RoundMoney(1910 - ((grossIncome-28000)/22000)*910)
		default:
			return 1000.0
		}
	case EmploymentPensioner:
		switch {
		case grossIncome <= 7500:
			return 1725.0
		case grossIncome <= 15000:
			return RoundMoney(1725 - ((grossIncome-7500)/7500)*725)
		default:
			return 1000.0
		}
	}
	// Freelancers and unrecognized types get no standard deduction.
	return 0
}

// CalculateProgressiveTax computes national IRPEF on taxable income using
// the 2025 marginal brackets: 23% up to 28000, 35% on the slice between
// 28000 and 50000, 43% above 50000. Non-positive taxable income yields 0.
func CalculateProgressiveTax(taxableIncome float64) float64 {
	if taxableIncome <= 0 {
		return 0
	}

	var tax float64
	switch {
	case taxableIncome <= IRPEFFirstBracketCeiling:
		tax = taxableIncome * IRPEFFirstBracketRate
	case taxableIncome <= IRPEFSecondBracketCeiling:
		tax = IRPEFFirstBracketCeiling*IRPEFFirstBracketRate +
			(taxableIncome-IRPEFFirstBracketCeiling)*IRPEFSecondBracketRate
	default:
		tax = IRPEFFirstBracketCeiling*IRPEFFirstBracketRate +
			(IRPEFSecondBracketCeiling-IRPEFFirstBracketCeiling)*IRPEFSecondBracketRate +
			(taxableIncome-IRPEFSecondBracketCeiling)*IRPEFThirdBracketRate
	}

	return RoundMoney(tax)
}
