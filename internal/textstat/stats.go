package textstat

import "math"

// Mean returns the arithmetic mean, 0 for an empty sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// Variance returns the population variance, 0 for an empty sample.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	s := 0.0
	for _, v := range xs {
		d := v - m
		s += d * d
	}
	return s / float64(len(xs))
}

// StdDev returns the population standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// CoefficientOfVariation returns stddev/mean, 0 when the mean is 0.
func CoefficientOfVariation(xs []float64) float64 {
	m := Mean(xs)
	if m == 0 {
		return 0
	}
	return StdDev(xs) / m
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WeightedAverage averages values by their weights, renormalizing over the
// weights actually supplied: missing entries do not dilute toward zero.
// Returns 0 when the weight mass is 0.
func WeightedAverage(values, weights map[string]float64) float64 {
	totalWeight := 0.0
	weightedSum := 0.0
	for name, v := range values {
		w, ok := weights[name]
		if !ok {
			continue
		}
		totalWeight += w
		weightedSum += v * w
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// NormalCDF returns P(Z <= x) for a standard normal Z.
func NormalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// TwoProportionZ computes the pooled two-proportion z-statistic for
// successes/trials in two samples. Returns 0 when the pooled standard error
// degenerates (all successes or none, or an empty sample).
func TwoProportionZ(successes1, trials1, successes2, trials2 float64) float64 {
	if trials1 <= 0 || trials2 <= 0 {
		return 0
	}
	p1 := successes1 / trials1
	p2 := successes2 / trials2
	pooled := (successes1 + successes2) / (trials1 + trials2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/trials1 + 1/trials2))
	if se == 0 {
		return 0
	}
	return (p2 - p1) / se
}

// TwoTailedP converts a z-statistic into a two-tailed p-value.
func TwoTailedP(z float64) float64 {
	return 2 * (1 - NormalCDF(math.Abs(z)))
}
