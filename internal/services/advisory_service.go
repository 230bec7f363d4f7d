package services

import (
	"context"

	"irpef-tax-api/internal/models"
)

// Income thresholds above which the tiered optimization tips apply.
const (
	HighIncomeTipThreshold = 50000.0
	DeductionTipThreshold  = 28000.0
)

// AdvisoryService produces static tax optimization suggestions keyed to
// income tiers. No computation, lookup and branch only.
type AdvisoryService struct{}

// NewAdvisoryService creates a new advisory service.
func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{}
}

// GetOptimizationTips returns the ordered tip list for an income level.
// The order is fixed: high-income tips first, then the deductions tip,
// then the universal employment and location tips.
func (s *AdvisoryService) GetOptimizationTips(ctx context.Context, income float64) []models.OptimizationTip {
	tips := []models.OptimizationTip{}

	if income > HighIncomeTipThreshold {
		tips = append(tips, models.OptimizationTip{
			Category:         "High Income",
			Tip:              "Consider contributing to a complementary pension fund (fondo pensione) to reduce taxable income",
			PotentialSavings: "Up to €5,164 annual deduction",
		})
		tips = append(tips, models.OptimizationTip{
			Category:         "Investments",
			Tip:              "Evaluate tax-efficient investment options like PIR (Individual Savings Plans)",
			PotentialSavings: "Tax-free capital gains up to certain limits",
		})
	}

	if income > DeductionTipThreshold {
		tips = append(tips, models.OptimizationTip{
			Category:         "Deductions",
			Tip:              "Maximize deductible expenses like medical costs, mortgage interest, and charitable donations",
			PotentialSavings: "Variable based on expenses",
		})
	}

	tips = append(tips, models.OptimizationTip{
		Category:         "Employment",
		Tip:              "Consider salary sacrifice schemes or benefit packages to optimize total compensation",
		PotentialSavings: "Potential tax savings on benefits",
	})

	tips = append(tips, models.OptimizationTip{
		Category:         "Location",
		Tip:              "Be aware of regional differences - some regions have lower surtax rates",
		PotentialSavings: "Up to 2% difference in regional rates",
	})

	return tips
}

// AdvisoryServiceInterface defines the interface for advisory services
type AdvisoryServiceInterface interface {
	GetOptimizationTips(ctx context.Context, income float64) []models.OptimizationTip
}
