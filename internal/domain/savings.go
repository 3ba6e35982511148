package domain

import "github.com/shopspring/decimal"

// SavingsDetail is the full output record of one savings-rate computation.
// Rates are fractions (0.15 = 15%); BlendedRate and FeasibilityIndex are
// percentages for display.
type SavingsDetail struct {
	HouseholdIncome        decimal.Decimal `json:"household_income"`
	DependentDeductionRate decimal.Decimal `json:"dependent_deduction_rate"`
	DependentDeduction     decimal.Decimal `json:"dependent_deduction"`
	DisposableIncome       decimal.Decimal `json:"disposable_income"`
	BaseRate               decimal.Decimal `json:"base_rate"`
	ModifierBonusRate      decimal.Decimal `json:"modifier_bonus_rate"`
	FinalRate              decimal.Decimal `json:"final_rate"`
	RawSavings             decimal.Decimal `json:"raw_savings"`
	MinimumSavings         decimal.Decimal `json:"minimum_savings"`
	FinalSavings           decimal.Decimal `json:"final_savings"`
	BlendedRate            decimal.Decimal `json:"blended_rate"`
	FeasibilityIndex       decimal.Decimal `json:"feasibility_index"`
}
