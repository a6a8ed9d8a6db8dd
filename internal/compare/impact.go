package compare

import (
	"math"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Impact classification is magnitude-based and entity-specific. All
// thresholds are strict: a delta exactly at a threshold stays in the lower
// band.

const (
	budgetHighThreshold   = 100_000
	budgetMediumThreshold = 50_000

	capacityHighThreshold   = 20 // hours
	capacityMediumThreshold = 10

	dateHighThresholdDays   = 60
	dateMediumThresholdDays = 14

	effortHighThreshold   = 80 // hours
	effortMediumThreshold = 40
)

func budgetImpact(delta float64) domain.ImpactLevel {
	switch abs := math.Abs(delta); {
	case abs > budgetHighThreshold:
		return domain.ImpactHigh
	case abs > budgetMediumThreshold:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func capacityImpact(delta float64) domain.ImpactLevel {
	switch abs := math.Abs(delta); {
	case abs > capacityHighThreshold:
		return domain.ImpactHigh
	case abs > capacityMediumThreshold:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func dateImpact(days int) domain.ImpactLevel {
	switch {
	case days > dateHighThresholdDays:
		return domain.ImpactHigh
	case days > dateMediumThresholdDays:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func effortImpact(delta float64) domain.ImpactLevel {
	switch abs := math.Abs(delta); {
	case abs > effortHighThreshold:
		return domain.ImpactHigh
	case abs > effortMediumThreshold:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

// overallImpact derives the report-level rating from the number of
// high-impact changes it contains.
func overallImpact(highCount int) domain.ImpactLevel {
	switch {
	case highCount > 5:
		return domain.ImpactHigh
	case highCount > 2:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}
