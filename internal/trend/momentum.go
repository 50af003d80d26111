package trend

import (
	"marketscore/internal/audit"
)

const momentumAlgorithm = "momentum_pct = (current - previous) / previous * 100; " +
	"velocity_per_day = momentum_pct / days; zero previous score reports stable"

// MomentumResult describes how a topic's trend score changed between two
// measurements separated by the given number of days.
type MomentumResult struct {
	audit.Meta

	MomentumPct    float64 `json:"momentum_pct"`
	VelocityPerDay float64 `json:"velocity_per_day"`
	Direction      string  `json:"direction"`
}

// Momentum computes the percentage change between two scores. A zero previous
// score is an expected cold-start case and reports stable with zero momentum.
func Momentum(current, previous float64, days int) MomentumResult {
	if previous == 0 {
		return MomentumResult{
			Meta:      audit.Degenerate(momentumAlgorithm, "previous score is zero"),
			Direction: "stable",
		}
	}

	pct := (current - previous) / previous * 100

	velocity := 0.0
	if days > 0 {
		velocity = pct / float64(days)
	}

	return MomentumResult{
		Meta:           audit.Verified(momentumAlgorithm),
		MomentumPct:    round2(pct),
		VelocityPerDay: round2(velocity),
		Direction:      momentumDirection(pct),
	}
}

func momentumDirection(pct float64) string {
	switch {
	case pct > 25:
		return "surging"
	case pct > 10:
		return "rising"
	case pct > -10:
		return "stable"
	case pct > -25:
		return "declining"
	default:
		return "collapsing"
	}
}
