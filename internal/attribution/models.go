// Package attribution distributes a conversion's value across the marketing
// touchpoints that preceded it, using five standard multi-touch models. Every
// model conserves value: the per-channel allocations sum to the conversion
// value within floating-point tolerance.
package attribution

import (
	"math"
	"time"

	"marketscore/internal/audit"
)

// Touchpoint is one marketing interaction in a customer journey. Journeys
// are ordered oldest first; the last touchpoint immediately precedes the
// conversion.
type Touchpoint struct {
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// Result maps channels to their allocated share of the conversion value.
type Result struct {
	audit.Meta

	Model       string             `json:"model"`
	Attribution map[string]float64 `json:"attribution"`
}

// HalfLifeDays is the time-decay half-life: a touchpoint seven days before
// conversion carries half the weight of one at the moment of conversion.
const HalfLifeDays = 7.0

// FirstTouch credits the entire conversion value to the first touchpoint.
func FirstTouch(touchpoints []Touchpoint, conversionValue float64) Result {
	if r, bad := validate("first_touch", "100% of value to the first touchpoint's channel",
		touchpoints, conversionValue); bad {
		return r
	}
	return Result{
		Meta:        audit.Verified("100% of value to the first touchpoint's channel"),
		Model:       "first_touch",
		Attribution: map[string]float64{touchpoints[0].Channel: conversionValue},
	}
}

// LastTouch credits the entire conversion value to the final touchpoint.
func LastTouch(touchpoints []Touchpoint, conversionValue float64) Result {
	if r, bad := validate("last_touch", "100% of value to the last touchpoint's channel",
		touchpoints, conversionValue); bad {
		return r
	}
	return Result{
		Meta:        audit.Verified("100% of value to the last touchpoint's channel"),
		Model:       "last_touch",
		Attribution: map[string]float64{touchpoints[len(touchpoints)-1].Channel: conversionValue},
	}
}

// Linear splits the conversion value evenly across all touchpoints,
// aggregating by channel when a channel appears more than once.
func Linear(touchpoints []Touchpoint, conversionValue float64) Result {
	const alg = "equal split across all touchpoints, aggregated by channel"
	if r, bad := validate("linear", alg, touchpoints, conversionValue); bad {
		return r
	}

	share := conversionValue / float64(len(touchpoints))
	attribution := make(map[string]float64, len(touchpoints))
	for _, tp := range touchpoints {
		attribution[tp.Channel] += share
	}
	return Result{
		Meta:        audit.Verified(alg),
		Model:       "linear",
		Attribution: attribution,
	}
}

// TimeDecay weights touchpoints by 2^(-daysBeforeConversion/7), normalized to
// sum to one. The conversion moment is the final touchpoint's timestamp.
func TimeDecay(touchpoints []Touchpoint, conversionValue float64) Result {
	const alg = "exponential decay weighting, weight = 2^(-days_before_conversion/7), normalized"
	if r, bad := validate("time_decay", alg, touchpoints, conversionValue); bad {
		return r
	}

	conversionAt := touchpoints[len(touchpoints)-1].Timestamp

	weights := make([]float64, len(touchpoints))
	totalWeight := 0.0
	for i, tp := range touchpoints {
		days := conversionAt.Sub(tp.Timestamp).Hours() / 24
		if days < 0 {
			days = 0
		}
		w := math.Exp2(-days / HalfLifeDays)
		weights[i] = w
		totalWeight += w
	}

	attribution := make(map[string]float64, len(touchpoints))
	for i, tp := range touchpoints {
		attribution[tp.Channel] += conversionValue * weights[i] / totalWeight
	}
	return Result{
		Meta:        audit.Verified(alg),
		Model:       "time_decay",
		Attribution: attribution,
	}
}

// PositionBased gives 40% to the first touch, 40% to the last, and splits the
// remaining 20% evenly across the middle. One touchpoint takes 100%; two
// split 50/50.
func PositionBased(touchpoints []Touchpoint, conversionValue float64) Result {
	const alg = "40% first touch, 40% last touch, 20% split across middle touches"
	if r, bad := validate("position_based", alg, touchpoints, conversionValue); bad {
		return r
	}

	attribution := make(map[string]float64, len(touchpoints))
	switch n := len(touchpoints); n {
	case 1:
		attribution[touchpoints[0].Channel] = conversionValue
	case 2:
		attribution[touchpoints[0].Channel] += conversionValue * 0.5
		attribution[touchpoints[1].Channel] += conversionValue * 0.5
	default:
		attribution[touchpoints[0].Channel] += conversionValue * 0.4
		attribution[touchpoints[n-1].Channel] += conversionValue * 0.4
		middleShare := conversionValue * 0.2 / float64(n-2)
		for _, tp := range touchpoints[1 : n-1] {
			attribution[tp.Channel] += middleShare
		}
	}
	return Result{
		Meta:        audit.Verified(alg),
		Model:       "position_based",
		Attribution: attribution,
	}
}

// Models maps wire names to model functions, for callers that select a model
// by request parameter.
var Models = map[string]func([]Touchpoint, float64) Result{
	"first_touch":    FirstTouch,
	"last_touch":     LastTouch,
	"linear":         Linear,
	"time_decay":     TimeDecay,
	"position_based": PositionBased,
}

func validate(model, alg string, touchpoints []Touchpoint, conversionValue float64) (Result, bool) {
	if len(touchpoints) == 0 {
		return Result{
			Meta:        audit.Degenerate(alg, "journey has no touchpoints"),
			Model:       model,
			Attribution: map[string]float64{},
		}, true
	}
	if conversionValue < 0 {
		return Result{
			Meta:        audit.Degenerate(alg, "conversion value must be non-negative"),
			Model:       model,
			Attribution: map[string]float64{},
		}, true
	}
	return Result{}, false
}
