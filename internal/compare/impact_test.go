package compare

import (
	"testing"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBudgetImpact(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  domain.ImpactLevel
	}{
		{"small", 50, domain.ImpactLow},
		{"exactly medium threshold", 50_000, domain.ImpactLow},
		{"just over medium", 50_001, domain.ImpactMedium},
		{"exactly high threshold", 100_000, domain.ImpactMedium},
		{"just over high", 100_001, domain.ImpactHigh},
		{"negative large", -200_000, domain.ImpactHigh},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, budgetImpact(tc.delta))
		})
	}
}

func TestCapacityImpact(t *testing.T) {
	assert.Equal(t, domain.ImpactLow, capacityImpact(10))
	assert.Equal(t, domain.ImpactMedium, capacityImpact(15))
	assert.Equal(t, domain.ImpactMedium, capacityImpact(-15))
	assert.Equal(t, domain.ImpactHigh, capacityImpact(25))
	assert.Equal(t, domain.ImpactLow, capacityImpact(0))
}

func TestDateImpact(t *testing.T) {
	assert.Equal(t, domain.ImpactLow, dateImpact(14))
	assert.Equal(t, domain.ImpactMedium, dateImpact(15))
	assert.Equal(t, domain.ImpactMedium, dateImpact(60))
	assert.Equal(t, domain.ImpactHigh, dateImpact(61))
}

func TestOverallImpact(t *testing.T) {
	assert.Equal(t, domain.ImpactLow, overallImpact(0))
	assert.Equal(t, domain.ImpactLow, overallImpact(2))
	assert.Equal(t, domain.ImpactMedium, overallImpact(3))
	assert.Equal(t, domain.ImpactMedium, overallImpact(5))
	assert.Equal(t, domain.ImpactHigh, overallImpact(6))
}

func TestCurrencyFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{100, "$100"},
		{1234, "$1,234"},
		{1234567.8, "$1,234,568"},
		{-500, "-$500"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Currency(tc.in))
	}

	assert.Equal(t, "+$50", SignedCurrency(50))
	assert.Equal(t, "-$50", SignedCurrency(-50))
}

func TestHoursFormatting(t *testing.T) {
	assert.Equal(t, "40 h", Hours(40))
	assert.Equal(t, "12.5 h", Hours(12.5))
	assert.Equal(t, "+25 h", SignedHours(25))
	assert.Equal(t, "-4.5 h", SignedHours(-4.5))
}
