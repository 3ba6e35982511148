package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// EmergencyFundCalculator derives the required liquid reserve using the
// essential-expense ratio method: essential monthly expense is a fixed
// fraction of household income keyed on home ownership and residence
// type, and the required number of months depends on occupation and
// income level.
type EmergencyFundCalculator struct{}

// essentialExpenseRatio is the share of household income treated as
// essential spending.
func essentialExpenseRatio(ownsHome bool, residence domain.Residence) decimal.Decimal {
	if ownsHome {
		if residence == domain.ResidenceRural {
			return decimal.NewFromFloat(0.3)
		}
		return decimal.NewFromFloat(0.4)
	}
	if residence == domain.ResidenceRural {
		return decimal.NewFromFloat(0.5)
	}
	return decimal.NewFromFloat(0.6)
}

// requiredMonths is the number of months of essential expenses the
// reserve must cover, in the 2..6 range.
func requiredMonths(occ domain.Occupation, level domain.IncomeLevel) int64 {
	switch occ {
	case domain.OccupationBlueCollar:
		switch level {
		case domain.IncomeLow:
			return 6
		case domain.IncomeSufficient:
			return 4
		default:
			return 3
		}
	case domain.OccupationWhiteCollar:
		switch level {
		case domain.IncomeLow:
			return 4
		case domain.IncomeSufficient:
			return 3
		default:
			return 2
		}
	default:
		return 3
	}
}

// Required returns the required emergency fund for the household, or zero
// when household income is not positive.
func (EmergencyFundCalculator) Required(householdIncome decimal.Decimal, occ domain.Occupation, residence domain.Residence, ownsHome bool) decimal.Decimal {
	if !householdIncome.IsPositive() {
		return decimal.Zero
	}
	expense := householdIncome.Mul(essentialExpenseRatio(ownsHome, residence))
	months := requiredMonths(occ, incomeLevelFor(householdIncome, occ))
	return expense.Mul(decimal.NewFromInt(months))
}
