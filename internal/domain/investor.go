package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Occupation is the coarse occupation class used by the bracket tables.
type Occupation string

const (
	OccupationWhiteCollar Occupation = "white-collar"
	OccupationBlueCollar  Occupation = "blue-collar"
	OccupationOther       Occupation = "other"
)

// NormalizeOccupation maps free-form occupation labels onto the three
// classes the bracket tables know about. Salaried office roles count as
// white-collar, manual and trade roles as blue-collar, everything else
// (self-employed, retired, student) as other.
func NormalizeOccupation(raw string) Occupation {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch {
	case strings.Contains(normalized, "white-collar"):
		return OccupationWhiteCollar
	case strings.Contains(normalized, "blue-collar"):
		return OccupationBlueCollar
	case normalized == "":
		return OccupationOther
	}

	occupationMap := map[string]Occupation{
		"salaried":     OccupationWhiteCollar,
		"professional": OccupationWhiteCollar,
		"office":       OccupationWhiteCollar,
		"manual":       OccupationBlueCollar,
		"labour":       OccupationBlueCollar,
		"labor":        OccupationBlueCollar,
		"trade":        OccupationBlueCollar,
	}
	if mapped, ok := occupationMap[normalized]; ok {
		return mapped
	}
	return OccupationOther
}

// Valid reports whether the occupation is one of the three known classes.
func (o Occupation) Valid() bool {
	switch o {
	case OccupationWhiteCollar, OccupationBlueCollar, OccupationOther:
		return true
	}
	return false
}

// Residence is the urban/rural residence type.
type Residence string

const (
	ResidenceUrban Residence = "urban"
	ResidenceRural Residence = "rural"
)

// Valid reports whether the residence type is known.
func (r Residence) Valid() bool {
	return r == ResidenceUrban || r == ResidenceRural
}

// MarketExperience is the investor's experience with market-linked
// instruments, on a four-level scale.
type MarketExperience string

const (
	ExperienceNone      MarketExperience = "none"
	ExperienceLimited   MarketExperience = "limited"
	ExperienceModerate  MarketExperience = "moderate"
	ExperienceExtensive MarketExperience = "extensive"
)

// Valid reports whether the experience level is known.
func (m MarketExperience) Valid() bool {
	switch m {
	case ExperienceNone, ExperienceLimited, ExperienceModerate, ExperienceExtensive:
		return true
	}
	return false
}

// Dependent is one financially dependent family member.
type Dependent struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Age  int    `yaml:"age" json:"age"`
}

// InvestorInput is one submission snapshot: everything the planning engine
// needs to classify, score and compute savings for an investor. All fields
// are plain values; the engine never mutates an input.
type InvestorInput struct {
	Name                    string           `yaml:"name,omitempty" json:"name,omitempty"`
	Mobile                  string           `yaml:"mobile,omitempty" json:"mobile,omitempty"`
	Email                   string           `yaml:"email,omitempty" json:"email,omitempty"`
	BirthDate               time.Time        `yaml:"birth_date" json:"birth_date"`
	Occupation              Occupation       `yaml:"occupation" json:"occupation"`
	MonthlyIncome           decimal.Decimal  `yaml:"monthly_income" json:"monthly_income"`
	SpouseMonthlyIncome     decimal.Decimal  `yaml:"spouse_monthly_income,omitempty" json:"spouse_monthly_income"`
	Residence               Residence        `yaml:"residence" json:"residence"`
	OwnsHome                bool             `yaml:"owns_home" json:"owns_home"`
	MonthlyRent             decimal.Decimal  `yaml:"monthly_rent,omitempty" json:"monthly_rent"`
	MonthlyEMI              decimal.Decimal  `yaml:"monthly_emi,omitempty" json:"monthly_emi"`
	Dependents              []Dependent      `yaml:"dependents,omitempty" json:"dependents,omitempty"`
	MarketExperience        MarketExperience `yaml:"market_experience" json:"market_experience"`
	EmergencyFund           decimal.Decimal  `yaml:"emergency_fund,omitempty" json:"emergency_fund"`
	CompletedDependentGoals int              `yaml:"completed_dependent_goals,omitempty" json:"completed_dependent_goals"`

	// Questionnaire holds the five psychometric answers in fixed question
	// order (greed, product preference, willingness, drawdown reaction,
	// anxiety). An incomplete set scores as neutral, never as an error.
	Questionnaire []string `yaml:"questionnaire,omitempty" json:"questionnaire,omitempty"`
}

// HouseholdIncome returns individual plus spouse monthly income.
func (inv *InvestorInput) HouseholdIncome() decimal.Decimal {
	return inv.MonthlyIncome.Add(inv.SpouseMonthlyIncome)
}

// Age returns the investor's age in completed years at the given date.
func (inv *InvestorInput) Age(at time.Time) (int, error) {
	return AgeAt(inv.BirthDate, at)
}

// AgeAt computes age in completed years between a birth date and a
// reference date. The birth date must parse and must not be after the
// reference date.
func AgeAt(birthDate, reference time.Time) (int, error) {
	if birthDate.IsZero() {
		return 0, fmt.Errorf("birth date is not set: %w", ErrInvalidDate)
	}
	if reference.IsZero() {
		return 0, fmt.Errorf("reference date is not set: %w", ErrInvalidDate)
	}
	if birthDate.After(reference) {
		return 0, fmt.Errorf("birth date %s is after reference date %s: %w",
			birthDate.Format("2006-01-02"), reference.Format("2006-01-02"), ErrInvalidDate)
	}

	age := reference.Year() - birthDate.Year()
	if reference.Month() < birthDate.Month() ||
		(reference.Month() == birthDate.Month() && reference.Day() < birthDate.Day()) {
		age--
	}
	return age, nil
}

// Validate checks the snapshot's hard invariants. Advisory consistency
// checks live in the validation layer; this only rejects input the engine
// cannot compute on at all.
func (inv *InvestorInput) Validate(asOf time.Time) error {
	if !inv.Occupation.Valid() {
		return fmt.Errorf("unknown occupation %q: %w", inv.Occupation, ErrInvalidInput)
	}
	if !inv.Residence.Valid() {
		return fmt.Errorf("unknown residence type %q: %w", inv.Residence, ErrInvalidInput)
	}
	if inv.MarketExperience != "" && !inv.MarketExperience.Valid() {
		return fmt.Errorf("unknown market experience %q: %w", inv.MarketExperience, ErrInvalidInput)
	}
	if inv.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative: %w", ErrInvalidInput)
	}
	if inv.SpouseMonthlyIncome.IsNegative() {
		return fmt.Errorf("spouse monthly income cannot be negative: %w", ErrInvalidInput)
	}
	if inv.MonthlyRent.IsNegative() || inv.MonthlyEMI.IsNegative() {
		return fmt.Errorf("rent and EMI cannot be negative: %w", ErrInvalidInput)
	}
	if inv.EmergencyFund.IsNegative() {
		return fmt.Errorf("emergency fund cannot be negative: %w", ErrInvalidInput)
	}
	for i, dep := range inv.Dependents {
		if dep.Age < 0 {
			return fmt.Errorf("dependent %d has negative age: %w", i, ErrInvalidInput)
		}
	}
	if _, err := inv.Age(asOf); err != nil {
		return err
	}
	return nil
}
