package calculation

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/domain"
)

// Engine orchestrates one full planning run: classification, risk
// scoring, savings, goal projections and advisory validation. It holds
// no per-request state; a single Engine serves concurrent callers.
type Engine struct {
	classifier *Classifier
	scorer     *RiskScorer
	savings    *SavingsCalculator
	goals      *GoalEngine
	validator  *Validator
	emergency  EmergencyFundCalculator
	log        zerolog.Logger
}

// NewEngine wires the calculators together. The recorder receives one
// audit entry per risk-scoring call; nil discards them.
func NewEngine(recorder audit.Recorder, log zerolog.Logger) *Engine {
	return &Engine{
		classifier: NewClassifier(),
		scorer:     NewRiskScorer(recorder, log),
		savings:    NewSavingsCalculator(log),
		goals:      NewGoalEngine(),
		validator:  NewValidator(log),
		log:        log.With().Str("component", "engine").Logger(),
	}
}

// BuildPlan computes the complete plan for one investor snapshot. The
// zero asOf defaults to the current time. Errors are limited to
// malformed input; unmatched profiles and advisory findings are carried
// inside the result.
func (e *Engine) BuildPlan(inv *domain.InvestorInput, goals []domain.FinancialGoal, ind domain.EconomicIndicators, asOf time.Time) (*domain.PlanResult, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	if err := inv.Validate(asOf); err != nil {
		return nil, fmt.Errorf("invalid investor input: %w", err)
	}
	for i := range goals {
		if !goals[i].Type.Valid() {
			return nil, fmt.Errorf("goal %d: unknown goal type %q: %w", i, goals[i].Type, domain.ErrInvalidInput)
		}
	}

	age, err := inv.Age(asOf)
	if err != nil {
		return nil, err
	}

	profile, err := e.classifier.Classify(inv.Occupation, inv.BirthDate, inv.MonthlyIncome, len(inv.Dependents), asOf)
	if err != nil {
		return nil, fmt.Errorf("classification: %w", err)
	}

	risk, err := e.scorer.Score(inv, ind, goals, asOf)
	if err != nil {
		return nil, fmt.Errorf("risk scoring: %w", err)
	}

	result := &domain.PlanResult{
		InvestorName:       inv.Name,
		AsOf:               asOf,
		ProfileCode:        profile,
		ProfileDescription: e.classifier.Describe(profile),
		LifeStage:          LifeStageFor(age),
		Age:                age,

		Risk:    risk,
		Savings: e.savings.Compute(inv),

		RequiredEmergencyFund: risk.RequiredEmergencyFund,
		AnnualStepUpRate:      AnnualStepUpRate(profile, ind.Slowdown()),

		Goals: e.goals.BuildPlans(goals, risk.Rating),

		Indicators: ind,
		Validation: e.validator.Validate(inv, profile, &ind, asOf),
	}

	e.log.Info().
		Str("profile", string(profile)).
		Int("risk_score", risk.FinalScore).
		Str("rating", string(risk.Rating)).
		Str("savings", result.Savings.FinalSavings.StringFixed(0)).
		Msg("built plan")

	return result, nil
}

// ValidateOnly runs classification and the advisory checks without
// scoring or savings computation.
func (e *Engine) ValidateOnly(inv *domain.InvestorInput, ind *domain.EconomicIndicators, asOf time.Time) (domain.ValidationResult, domain.ProfileCode) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	profile := domain.ProfileNone
	if p, err := e.classifier.Classify(inv.Occupation, inv.BirthDate, inv.MonthlyIncome, len(inv.Dependents), asOf); err == nil {
		profile = p
	}
	return e.validator.Validate(inv, profile, ind, asOf), profile
}
