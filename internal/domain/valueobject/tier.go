package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is an immutable value object bucketing a transaction by its amount.
// The tier fixes the fraud probability and confidence bands used by the scorer.
type Tier struct {
	value string
}

var (
	TierLow    = Tier{value: "LOW"}
	TierMedium = Tier{value: "MEDIUM"}
	TierHigh   = Tier{value: "HIGH"}
)

var (
	mediumTierFloor = decimal.NewFromInt(1000)
	highTierFloor   = decimal.NewFromInt(5000)
)

// TierFromAmount derives the tier of an amount. Bounds are exclusive below and
// inclusive above: 1000 is LOW, 1000.01 is MEDIUM, 5000 is MEDIUM.
func TierFromAmount(amount decimal.Decimal) Tier {
	switch {
	case amount.GreaterThan(highTierFloor):
		return TierHigh
	case amount.GreaterThan(mediumTierFloor):
		return TierMedium
	default:
		return TierLow
	}
}

// TierFromString reconstructs a Tier from its string representation.
func TierFromString(s string) (Tier, error) {
	switch s {
	case "LOW":
		return TierLow, nil
	case "MEDIUM":
		return TierMedium, nil
	case "HIGH":
		return TierHigh, nil
	default:
		return Tier{}, fmt.Errorf("invalid tier: %s", s)
	}
}

// FraudProbability returns the chance that a transaction in this tier is
// flagged as fraudulent.
func (t Tier) FraudProbability() float64 {
	switch t.value {
	case "HIGH":
		return 0.30
	case "MEDIUM":
		return 0.10
	case "LOW":
		return 0.05
	default:
		return 0
	}
}

// ConfidenceRange returns the inclusive confidence band, in percent, for the
// given verdict.
func (t Tier) ConfidenceRange(fraudulent bool) (lo, hi float64) {
	switch t.value {
	case "HIGH":
		if fraudulent {
			return 85, 95
		}
		return 75, 90
	case "MEDIUM":
		if fraudulent {
			return 90, 95
		}
		return 85, 95
	case "LOW":
		if fraudulent {
			return 95, 100
		}
		return 90, 98
	default:
		return 0, 0
	}
}

// String returns the string representation.
func (t Tier) String() string {
	return t.value
}

// IsZero returns true if the Tier has not been set.
func (t Tier) IsZero() bool {
	return t.value == ""
}

// Equal checks equality with another Tier.
func (t Tier) Equal(other Tier) bool {
	return t.value == other.value
}

var amountRiskBands = []struct {
	ceiling decimal.Decimal
	risk    float64
}{
	{decimal.NewFromInt(500), 0.1},
	{decimal.NewFromInt(1000), 0.3},
	{decimal.NewFromInt(5000), 0.5},
	{decimal.NewFromInt(10000), 0.7},
}

// AmountRisk normalises an amount into a risk feature in [0,1].
func AmountRisk(amount decimal.Decimal) float64 {
	for _, band := range amountRiskBands {
		if amount.LessThanOrEqual(band.ceiling) {
			return band.risk
		}
	}
	return 0.9
}
