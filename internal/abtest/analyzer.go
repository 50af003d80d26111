// Package abtest evaluates conversion-rate experiments with a two-proportion
// z-test. Significance is decided at a fixed alpha of 0.05.
package abtest

import (
	"marketscore/internal/audit"
	"marketscore/internal/textstat"
)

const analyzeAlgorithm = "two-proportion z-test: pooled proportion, standard error, " +
	"two-tailed p-value via normal CDF; significant at alpha=0.05"

// Alpha is the fixed significance level. It is a named constant rather than a
// parameter: experiments across the platform must be judged identically.
const Alpha = 0.05

const (
	RecommendShipVariant  = "ship variant"
	RecommendKeepControl  = "keep control"
	RecommendInconclusive = "inconclusive - gather more data"
)

// Result is the statistical read-out of one experiment.
type Result struct {
	audit.Meta

	ControlRate     float64 `json:"control_rate"`
	VariantRate     float64 `json:"variant_rate"`
	RelativeLiftPct float64 `json:"relative_lift_pct"`
	ZStatistic      float64 `json:"z_statistic"`
	PValue          float64 `json:"p_value"`
	Significant     bool    `json:"significant"`
	Recommendation  string  `json:"recommendation"`
}

// Analyze runs the z-test over the two experiment arms. Zero visitors in
// either arm is a defined error result, never a division by zero.
func Analyze(controlConversions, controlVisitors, variantConversions, variantVisitors int) Result {
	if controlVisitors <= 0 || variantVisitors <= 0 {
		return Result{
			Meta:           audit.Degenerate(analyzeAlgorithm, "both arms need at least one visitor"),
			Recommendation: RecommendInconclusive,
		}
	}
	if controlConversions < 0 || variantConversions < 0 ||
		controlConversions > controlVisitors || variantConversions > variantVisitors {
		return Result{
			Meta:           audit.Degenerate(analyzeAlgorithm, "conversions must be between 0 and visitors"),
			Recommendation: RecommendInconclusive,
		}
	}

	cc := float64(controlConversions)
	cv := float64(controlVisitors)
	vc := float64(variantConversions)
	vv := float64(variantVisitors)

	controlRate := cc / cv
	variantRate := vc / vv

	lift := 0.0
	if controlRate > 0 {
		lift = (variantRate - controlRate) / controlRate * 100
	}

	z := textstat.TwoProportionZ(cc, cv, vc, vv)
	p := 1.0
	if z != 0 {
		p = textstat.TwoTailedP(z)
	}

	significant := p < Alpha

	return Result{
		Meta:            audit.Verified(analyzeAlgorithm),
		ControlRate:     controlRate,
		VariantRate:     variantRate,
		RelativeLiftPct: lift,
		ZStatistic:      z,
		PValue:          p,
		Significant:     significant,
		Recommendation:  recommendationFor(significant, lift),
	}
}

func recommendationFor(significant bool, lift float64) string {
	switch {
	case significant && lift > 0:
		return RecommendShipVariant
	case significant && lift < 0:
		return RecommendKeepControl
	default:
		return RecommendInconclusive
	}
}
