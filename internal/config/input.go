// Package config loads and validates the YAML plan-input files consumed
// by the CLI and HTTP surfaces.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/finplan/finplan/internal/domain"
)

// PlanInput is the top-level document: one investor snapshot, the goals
// to project and an optional reference date.
type PlanInput struct {
	Investor domain.InvestorInput   `yaml:"investor" json:"investor"`
	Goals    []domain.FinancialGoal `yaml:"goals,omitempty" json:"goals,omitempty"`
	AsOf     time.Time              `yaml:"as_of,omitempty" json:"as_of,omitempty"`
}

// InputParser loads PlanInput documents from YAML.
type InputParser struct{}

func NewInputParser() *InputParser { return &InputParser{} }

// LoadFromFile reads and parses a plan-input file.
func (p *InputParser) LoadFromFile(path string) (*PlanInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	input, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return input, nil
}

// Parse unmarshals a plan-input document, normalizes free-form
// occupation labels and checks the hard input invariants.
func (p *InputParser) Parse(data []byte) (*PlanInput, error) {
	var input PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.Validate(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// Validate normalizes and checks a parsed input in place.
func (p *InputParser) Validate(input *PlanInput) error {
	input.Investor.Occupation = domain.NormalizeOccupation(string(input.Investor.Occupation))
	if input.Investor.Residence == "" {
		input.Investor.Residence = domain.ResidenceUrban
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	if err := input.Investor.Validate(asOf); err != nil {
		return fmt.Errorf("investor: %w", err)
	}

	for i, g := range input.Goals {
		if !g.Type.Valid() {
			return fmt.Errorf("goal %d: unknown goal type %q: %w", i, g.Type, domain.ErrInvalidInput)
		}
		if g.TargetAmount.IsNegative() {
			return fmt.Errorf("goal %d: target amount cannot be negative: %w", i, domain.ErrInvalidInput)
		}
		if g.TimelineYears < 0 {
			return fmt.Errorf("goal %d: timeline cannot be negative: %w", i, domain.ErrInvalidInput)
		}
		if g.CurrentCorpus.IsNegative() {
			return fmt.Errorf("goal %d: current corpus cannot be negative: %w", i, domain.ErrInvalidInput)
		}
	}
	return nil
}
