package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"small amount", 500, "₹500"},
		{"thousands", 4000, "₹4,000"},
		{"lakh grouping", 100000, "₹1,00,000"},
		{"crore grouping", 12345678, "₹1,23,45,678"},
		{"with paise", 1234567.5, "₹12,34,567.50"},
		{"zero", 0, "₹0"},
		{"negative", -4000, "-₹4,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.NewFromFloat(tt.in)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "17.50%", FormatPercent(decimal.NewFromFloat(0.175)))
	assert.Equal(t, "5.00%", FormatPercent(decimal.NewFromFloat(0.05)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
}
