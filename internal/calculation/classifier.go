package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// Classifier assigns a profile code by matching the investor's age,
// individual income and dependents count against the ordered bracket
// tables. The first matching definition wins.
type Classifier struct{}

// NewClassifier creates a new classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the first profile whose age, income and dependents
// ranges all contain the inputs. A ProfileNone result is a valid terminal
// outcome, not an error: it is returned for occupation Other and whenever
// the table is exhausted without a match.
func (c *Classifier) Classify(occ domain.Occupation, birthDate time.Time, monthlyIncome decimal.Decimal, dependents int, asOf time.Time) (domain.ProfileCode, error) {
	age, err := domain.AgeAt(birthDate, asOf)
	if err != nil {
		return domain.ProfileNone, err
	}
	if monthlyIncome.IsNegative() {
		return domain.ProfileNone, fmt.Errorf("monthly income cannot be negative: %w", domain.ErrInvalidInput)
	}
	if dependents < 0 {
		return domain.ProfileNone, fmt.Errorf("dependents count cannot be negative: %w", domain.ErrInvalidInput)
	}

	for _, p := range profileTableFor(occ) {
		if p.matches(age, monthlyIncome, dependents) {
			return p.code, nil
		}
	}
	return domain.ProfileNone, nil
}

// Describe returns the stored description for a profile code, or an empty
// string for unknown codes and ProfileNone.
func (c *Classifier) Describe(code domain.ProfileCode) string {
	if p, ok := profileByCode(code); ok {
		return p.desc
	}
	return ""
}

// IncomeRange returns the inclusive income range of a profile code. The
// upper bound is reported as unbounded=true when the bracket is open.
func (c *Classifier) IncomeRange(code domain.ProfileCode) (min, max decimal.Decimal, unbounded, ok bool) {
	p, found := profileByCode(code)
	if !found {
		return decimal.Zero, decimal.Zero, false, false
	}
	return p.minIncome, p.maxIncome, p.maxIncome.Equal(noMax), true
}

// LifeStage returns the stored life stage for a profile code.
func (c *Classifier) LifeStage(code domain.ProfileCode) domain.LifeStage {
	if p, ok := profileByCode(code); ok {
		return p.stage
	}
	return domain.StageUnclassified
}
