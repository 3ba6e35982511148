package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueKind distinguishes hard field problems from advisory warnings.
type IssueKind string

const (
	IssueError   IssueKind = "error"
	IssueWarning IssueKind = "warning"
)

// Issue is one finding from the advisory validation layer.
type Issue struct {
	Field   string    `json:"field"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// ValidationResult is the outcome of the advisory validation layer. It
// never blocks downstream computation; OverallValid is false only when a
// hard field issue was found.
type ValidationResult struct {
	OverallValid bool     `json:"overall_valid"`
	Issues       []Issue  `json:"issues"`
	Suggestions  []string `json:"suggestions"`
}

// AddError records a hard field issue and marks the result invalid.
func (r *ValidationResult) AddError(field, message string) {
	r.OverallValid = false
	r.Issues = append(r.Issues, Issue{Field: field, Kind: IssueError, Message: message})
}

// AddWarning records an advisory finding without affecting validity.
func (r *ValidationResult) AddWarning(field, message string) {
	r.Issues = append(r.Issues, Issue{Field: field, Kind: IssueWarning, Message: message})
}

// PlanResult is the complete output of one planning run: classification,
// risk breakdown, savings detail and goal projections for a single
// investor snapshot.
type PlanResult struct {
	InvestorName string    `json:"investor_name,omitempty"`
	AsOf         time.Time `json:"as_of"`

	ProfileCode        ProfileCode `json:"profile_code"`
	ProfileDescription string      `json:"profile_description,omitempty"`
	LifeStage          LifeStage   `json:"life_stage"`
	Age                int         `json:"age"`

	Risk    *RiskScoreBreakdown `json:"risk"`
	Savings SavingsDetail       `json:"savings"`

	RequiredEmergencyFund decimal.Decimal `json:"required_emergency_fund"`
	AnnualStepUpRate      decimal.Decimal `json:"annual_step_up_rate"`

	Goals []GoalPlan `json:"goals"`

	Indicators EconomicIndicators `json:"indicators"`
	Validation ValidationResult   `json:"validation"`
}
