package domain

import "github.com/shopspring/decimal"

// GoalType is one of the fixed goal categories with a fixed priority
// ranking. Lower rank means higher priority.
type GoalType string

const (
	GoalDebtReduction  GoalType = "debt-reduction"
	GoalEmergencyFund  GoalType = "emergency-fund"
	GoalChildEducation GoalType = "child-education"
	GoalChildMarriage  GoalType = "child-marriage"
	GoalRetirement     GoalType = "retirement"
	GoalHomePurchase   GoalType = "home-purchase"
	GoalSelfEducation  GoalType = "self-education"
	GoalOther          GoalType = "other"
)

// goalPriorities is the fixed goal-type ranking. Unknown types sort last.
var goalPriorities = map[GoalType]int{
	GoalDebtReduction:  1,
	GoalEmergencyFund:  2,
	GoalChildEducation: 3,
	GoalChildMarriage:  4,
	GoalRetirement:     5,
	GoalHomePurchase:   6,
	GoalSelfEducation:  7,
	GoalOther:          8,
}

// Priority returns the fixed priority rank for the goal type, 1 highest.
func (g GoalType) Priority() int {
	if p, ok := goalPriorities[g]; ok {
		return p
	}
	return 99
}

// Valid reports whether the goal type is one of the fixed categories.
func (g GoalType) Valid() bool {
	_, ok := goalPriorities[g]
	return ok
}

// FundType is a suggested fund category with a worst/best annual return
// band defined in the fund-return table.
type FundType string

const (
	FundUltraShort    FundType = "Ultra Short/Low Duration"
	FundLiquid        FundType = "Liquid Fund"
	FundBalancedAdv   FundType = "Balanced Advantage"
	FundValue         FundType = "Value Fund"
	FundDividendYield FundType = "Dividend Yield Fund"
	FundContra        FundType = "Contra Fund"
	FundMultiCap      FundType = "Multi Cap Fund"
	FundAggressiveHyb FundType = "Aggressive Hybrid"
)

// FinancialGoal is one target the investor is saving towards.
type FinancialGoal struct {
	Name          string          `yaml:"name,omitempty" json:"name,omitempty"`
	Type          GoalType        `yaml:"type" json:"type"`
	TargetAmount  decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	TimelineYears int             `yaml:"timeline_years" json:"timeline_years"`
	CurrentCorpus decimal.Decimal `yaml:"current_corpus,omitempty" json:"current_corpus"`
}

// SIPScenario is one return scenario: the annual rate assumed and the
// monthly contribution it requires.
type SIPScenario struct {
	AnnualReturn decimal.Decimal `json:"annual_return"`
	Monthly      decimal.Decimal `json:"monthly"`
}

// SIPScenarios holds the worst/base/best-case contributions for a goal.
type SIPScenarios struct {
	Worst SIPScenario `json:"worst"`
	Base  SIPScenario `json:"base"`
	Best  SIPScenario `json:"best"`
}

// GoalPlan is a goal enriched with its priority rank, suggested fund type
// and SIP scenarios.
type GoalPlan struct {
	Goal      FinancialGoal `json:"goal"`
	Priority  int           `json:"priority"`
	FundType  FundType      `json:"fund_type"`
	Scenarios SIPScenarios  `json:"scenarios"`
}
