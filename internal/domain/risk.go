package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskRating is the banded interpretation of the final 0-25 risk score:
// <=8 Risk-Averse, <=16 Moderate, >16 Aggressive.
type RiskRating string

const (
	RatingRiskAverse RiskRating = "Risk-Averse"
	RatingModerate   RiskRating = "Moderate"
	RatingAggressive RiskRating = "Aggressive"
)

// RatingForScore bands a final 0-25 risk score.
func RatingForScore(score int) RiskRating {
	switch {
	case score <= 8:
		return RatingRiskAverse
	case score <= 16:
		return RatingModerate
	default:
		return RatingAggressive
	}
}

// RiskScoreBreakdown is the full audit record of one scoring call. It is
// produced fresh on every call and immutable once produced; persistence is
// the caller's concern.
type RiskScoreBreakdown struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// Base components on the 0-100 scale. Maxima: 30/20/15/15/10/5/5.
	StatedPreferencePoints  decimal.Decimal `json:"stated_preference_points"`
	EmergencyAdequacyPoints decimal.Decimal `json:"emergency_adequacy_points"`
	DebtPoints              decimal.Decimal `json:"debt_points"`
	LifeCyclePoints         decimal.Decimal `json:"life_cycle_points"`
	IncomePoints            decimal.Decimal `json:"income_points"`
	DependentsPoints        decimal.Decimal `json:"dependents_points"`
	ExperiencePoints        decimal.Decimal `json:"experience_points"`

	// Supporting figures used by the emergency-fund and debt components.
	RequiredEmergencyFund decimal.Decimal `json:"required_emergency_fund"`
	AdequacyRatio         decimal.Decimal `json:"adequacy_ratio"`
	DebtBurdenRatio       decimal.Decimal `json:"debt_burden_ratio"`
	Age                   int             `json:"age"`

	BaseScore decimal.Decimal `json:"base_score"`

	EconomicAdjustment decimal.Decimal `json:"economic_adjustment"`
	EconomicDetail     string          `json:"economic_detail"`
	EconomicFallback   bool            `json:"economic_fallback"`
	GoalAdjustment     decimal.Decimal `json:"goal_adjustment"`
	GoalDetail         string          `json:"goal_detail"`

	AdjustedScore decimal.Decimal `json:"adjusted_score"`
	FinalScore    int             `json:"final_score"`
	Rating        RiskRating      `json:"rating"`
	Reason        string          `json:"reason"`
}
