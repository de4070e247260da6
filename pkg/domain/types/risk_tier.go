package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskTier represents a discrete risk classification derived from a 0-100 score
type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

// Score thresholds for each tier. A tier covers scores from its threshold
// (inclusive) up to the next tier's threshold (exclusive).
const (
	ThresholdLow    = 75.0
	ThresholdMedium = 50.0
	ThresholdHigh   = 25.0
)

// TierOf classifies a 0-100 percentage into a RiskTier
func TierOf(score float64) RiskTier {
	switch {
	case score >= ThresholdLow:
		return RiskTierLow
	case score >= ThresholdMedium:
		return RiskTierMedium
	case score >= ThresholdHigh:
		return RiskTierHigh
	default:
		return RiskTierCritical
	}
}

// Validate checks if the RiskTier is a known tier
func (r RiskTier) Validate() error {
	switch r {
	case RiskTierLow, RiskTierMedium, RiskTierHigh, RiskTierCritical:
		return nil
	default:
		return goerr.New("unknown risk tier", goerr.V("tier", r))
	}
}

// String returns the string representation of RiskTier
func (r RiskTier) String() string {
	return string(r)
}

// Label returns a human readable label for the tier
func (r RiskTier) Label() string {
	switch r {
	case RiskTierLow:
		return "Low Risk"
	case RiskTierMedium:
		return "Medium Risk"
	case RiskTierHigh:
		return "High Risk"
	case RiskTierCritical:
		return "Critical Risk"
	default:
		return string(r)
	}
}
