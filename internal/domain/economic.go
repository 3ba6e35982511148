package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Indicator is one named macroeconomic indicator value tagged with the
// reference period it was observed in.
type Indicator struct {
	Value  decimal.Decimal `yaml:"value" json:"value"`
	Period string          `yaml:"period" json:"period"`
}

// EconomicIndicators is the small read-only snapshot the risk scorer
// consumes. It is fetched at most once per TTL window; when the external
// source is unavailable the documented fallback constant is used and
// IsFallback is set rather than an error raised.
type EconomicIndicators struct {
	GDPGrowth    Indicator `yaml:"gdp_growth" json:"gdp_growth"`
	CPIInflation Indicator `yaml:"cpi_inflation" json:"cpi_inflation"`
	IsFallback   bool      `yaml:"is_fallback" json:"is_fallback"`
	FetchedAt    time.Time `yaml:"fetched_at" json:"fetched_at"`
}

// Fallback values used when the external indicator source is unavailable
// or returns malformed data.
const fallbackPeriod = "N/A (Fallback)"

// FallbackIndicators returns the documented fallback snapshot:
// GDP growth 6.5%, CPI inflation 5.0%.
func FallbackIndicators() EconomicIndicators {
	return EconomicIndicators{
		GDPGrowth:    Indicator{Value: decimal.NewFromFloat(6.5), Period: fallbackPeriod},
		CPIInflation: Indicator{Value: decimal.NewFromFloat(5.0), Period: fallbackPeriod},
		IsFallback:   true,
		FetchedAt:    time.Now().UTC(),
	}
}

// Slowdown reports whether the snapshot indicates an economic slowdown
// (GDP growth below 5%). The savings step-up rate drops to its fallback
// value under slowdown conditions.
func (e EconomicIndicators) Slowdown() bool {
	return e.GDPGrowth.Value.LessThan(decimal.NewFromInt(5))
}
