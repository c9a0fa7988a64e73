package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CoverageTier is the enrollment category that determines which premium and
// threshold values apply for a plan.
type CoverageTier string

const (
	TierEmployeeOnly     CoverageTier = "employee_only"
	TierEmployeeSpouse   CoverageTier = "employee_spouse"
	TierEmployeeChildren CoverageTier = "employee_children"
	TierEmployeeFamily   CoverageTier = "employee_family"
)

// AllTiers returns the coverage tiers in display order.
func AllTiers() []CoverageTier {
	return []CoverageTier{TierEmployeeOnly, TierEmployeeSpouse, TierEmployeeChildren, TierEmployeeFamily}
}

// ParseCoverageTier resolves a user-supplied tier name, accepting a few
// common spellings (e.g. "family", "spouse") in addition to the canonical
// snake_case identifiers.
func ParseCoverageTier(s string) (CoverageTier, error) {
	switch s {
	case string(TierEmployeeOnly), "employee", "single":
		return TierEmployeeOnly, nil
	case string(TierEmployeeSpouse), "spouse":
		return TierEmployeeSpouse, nil
	case string(TierEmployeeChildren), "children":
		return TierEmployeeChildren, nil
	case string(TierEmployeeFamily), "family":
		return TierEmployeeFamily, nil
	default:
		return "", fmt.Errorf("unknown coverage tier %q (expected one of: employee_only, employee_spouse, employee_children, employee_family)", s)
	}
}

// Label returns a human-readable name for the tier.
func (t CoverageTier) Label() string {
	switch t {
	case TierEmployeeOnly:
		return "Employee Only"
	case TierEmployeeSpouse:
		return "Employee + Spouse"
	case TierEmployeeChildren:
		return "Employee + Children"
	case TierEmployeeFamily:
		return "Employee + Family"
	default:
		return string(t)
	}
}

// DisplayMode selects which stored premium figure the presentation layer shows.
type DisplayMode string

const (
	DisplayMonthly      DisplayMode = "monthly"
	DisplayPerPayPeriod DisplayMode = "per_pay_period"
)

// ParseDisplayMode resolves a user-supplied display mode name.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "", string(DisplayMonthly):
		return DisplayMonthly, nil
	case string(DisplayPerPayPeriod), "pay_period", "paycheck":
		return DisplayPerPayPeriod, nil
	default:
		return "", fmt.Errorf("unknown display mode %q (expected monthly or per_pay_period)", s)
	}
}

// PremiumCost holds the premium figures for one coverage tier. Both values
// come straight from the benefits sheet; the per-pay-period figure is an
// independent constant, never derived from the monthly one.
type PremiumCost struct {
	Monthly      decimal.Decimal `yaml:"monthly" json:"monthly"`
	PerPayPeriod decimal.Decimal `yaml:"per_pay_period" json:"per_pay_period"`
}

// PersonFamilyLimit is a threshold pair keyed by whether the enrollment
// covers one person or more.
type PersonFamilyLimit struct {
	Person decimal.Decimal `yaml:"person" json:"person"`
	Family decimal.Decimal `yaml:"family" json:"family"`
}

// EnrollmentDeductible is the alternative deductible shape used by plans
// that key the deductible on enrollment count instead of per person.
type EnrollmentDeductible struct {
	EmployeeOnly     decimal.Decimal `yaml:"employee_only" json:"employee_only"`
	TwoPlusEnrollees decimal.Decimal `yaml:"two_plus_enrollees" json:"two_plus_enrollees"`
}

// Plan is one insurance plan option from the benefits sheet. Exactly one of
// DeductiblePerPerson and DeductibleByEnrollment is set per plan; which one
// determines how the effective deductible for a tier is selected.
type Plan struct {
	Name           string                           `yaml:"name" json:"name"`
	Costs          map[CoverageTier]PremiumCost     `yaml:"costs" json:"costs"`
	HSAMatchByTier map[CoverageTier]decimal.Decimal `yaml:"hsa_match_by_tier" json:"hsa_match_by_tier"`

	DeductiblePerPerson    *PersonFamilyLimit    `yaml:"deductible_per_person,omitempty" json:"deductible_per_person,omitempty"`
	DeductibleByEnrollment *EnrollmentDeductible `yaml:"deductible_by_enrollment,omitempty" json:"deductible_by_enrollment,omitempty"`

	OutOfPocketMax  PersonFamilyLimit `yaml:"out_of_pocket_max" json:"out_of_pocket_max"`
	PharmacyBenefit string            `yaml:"pharmacy_benefit" json:"pharmacy_benefit"`
}

// HasHSA reports whether any tier of the plan carries an employer HSA match.
func (p *Plan) HasHSA() bool {
	for _, match := range p.HSAMatchByTier {
		if match.IsPositive() {
			return true
		}
	}
	return false
}

// Validate checks the plan invariants: exactly one deductible shape, a
// premium and HSA match entry for every tier, and no negative currency.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.DeductiblePerPerson != nil && p.DeductibleByEnrollment != nil {
		return fmt.Errorf("specify either deductible_per_person or deductible_by_enrollment, not both")
	}
	if p.DeductiblePerPerson == nil && p.DeductibleByEnrollment == nil {
		return fmt.Errorf("one of deductible_per_person or deductible_by_enrollment is required")
	}
	for _, tier := range AllTiers() {
		cost, ok := p.Costs[tier]
		if !ok {
			return fmt.Errorf("missing premium cost for tier %s", tier)
		}
		if cost.Monthly.IsNegative() || cost.PerPayPeriod.IsNegative() {
			return fmt.Errorf("premium cost for tier %s cannot be negative", tier)
		}
		match, ok := p.HSAMatchByTier[tier]
		if !ok {
			return fmt.Errorf("missing HSA match for tier %s", tier)
		}
		if match.IsNegative() {
			return fmt.Errorf("HSA match for tier %s cannot be negative", tier)
		}
	}
	if p.DeductiblePerPerson != nil {
		if p.DeductiblePerPerson.Person.IsNegative() || p.DeductiblePerPerson.Family.IsNegative() {
			return fmt.Errorf("deductible cannot be negative")
		}
	}
	if p.DeductibleByEnrollment != nil {
		if p.DeductibleByEnrollment.EmployeeOnly.IsNegative() || p.DeductibleByEnrollment.TwoPlusEnrollees.IsNegative() {
			return fmt.Errorf("deductible cannot be negative")
		}
	}
	if p.OutOfPocketMax.Person.IsNegative() || p.OutOfPocketMax.Family.IsNegative() {
		return fmt.Errorf("out-of-pocket maximum cannot be negative")
	}
	return nil
}
