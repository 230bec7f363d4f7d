package models

import "strings"

// EmploymentType identifies the worker classification used to select
// contribution rates and deduction schedules.
type EmploymentType string

const (
	EmploymentEmployee   EmploymentType = "employee"
	EmploymentFreelancer EmploymentType = "freelancer"
	EmploymentPensioner  EmploymentType = "pensioner"
)

// ParseEmploymentType normalizes an employment type string. Unknown values
// are kept as-is rather than rejected: the calculators treat them as a
// zero-contribution, zero-deduction classification.
func ParseEmploymentType(s string) EmploymentType {
	return EmploymentType(strings.ToLower(strings.TrimSpace(s)))
}

// IsKnown reports whether the employment type is one of the recognized
// classifications.
func (e EmploymentType) IsKnown() bool {
	switch e {
	case EmploymentEmployee, EmploymentFreelancer, EmploymentPensioner:
		return true
	}
	return false
}
