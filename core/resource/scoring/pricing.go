package scoring

import "math"

// GrossNeeded returns the gross revenue required to net `net` after annual overhead and taxes:
// (net + annualOverhead) / (1 − taxRate/100). A tax rate ≥ 100 has no solution and returns +Inf.
func GrossNeeded(net, annualOverhead, taxRatePercent float64) float64 {
	keep := 1 - taxRatePercent/100
	if keep <= 0 {
		return math.Inf(1)
	}
	return (net + annualOverhead) / keep
}

// Per divides total evenly, returning 0 for a non-positive divisor.
func Per(total, n float64) float64 {
	if n <= 0 {
		return 0
	}
	return total / n
}

// ClientsNeeded is ceil(gross / valuePerClient): partial clients are not sold.
func ClientsNeeded(gross, valuePerClient float64) int {
	if valuePerClient <= 0 || math.IsInf(gross, 0) || math.IsNaN(gross) {
		return 0
	}
	return int(math.Ceil(gross / valuePerClient))
}
