package service

import "math"

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// annuityDueFactor is ((1+r)^n - 1)/r * (1+r): the future value of n
// contributions of 1 made at the start of each period.
func annuityDueFactor(r float64, n int) float64 {
	return (math.Pow(1+r, float64(n)) - 1) / r * (1 + r)
}

// SIPFutureValue returns the maturity of a monthly SIP with contribution p,
// monthly rate r and n instalments.
func SIPFutureValue(p, r float64, n int) float64 {
	return p * annuityDueFactor(r, n)
}

// EMI returns the equated monthly instalment for principal p at monthly rate r
// over n months.
func EMI(p, r float64, n int) float64 {
	growth := math.Pow(1+r, float64(n))
	return p * r * growth / (growth - 1)
}

// CompoundAmount is P·(1 + r/f)^(f·t) with r as a fraction.
func CompoundAmount(p, r float64, f int, t float64) float64 {
	return p * math.Pow(1+r/float64(f), float64(f)*t)
}

// CAGR returns the compound annual growth rate as a fraction.
func CAGR(initial, final, years float64) float64 {
	return math.Pow(final/initial, 1/years) - 1
}
