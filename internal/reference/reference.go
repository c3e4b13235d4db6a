// Package reference provides an independent floating-point Gaussian
// reference for tests to compare the fixed-point engine against. Spec.md
// places "Gaussian reference evaluation for tests" outside the core's
// concern; this package is that external collaborator, wrapping
// gonum's distuv.Normal rather than reimplementing erf. It must never be
// imported from a non-test file.
package reference

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const q60Scale = 1 << 60
const q63Scale = 1 << 63

// sqrt2Pi undoes distuv.Normal's normalization: Prob/CDF give the
// normalized density phi(x) = exp(-x^2/2)/sqrt(2*pi), but g(x) in this
// engine's sense is the unnormalized exp(-x^2/2). Multiplying by
// sqrt(2*pi) converts the former into the latter.
var sqrt2Pi = math.Sqrt(2 * math.Pi)

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Density returns g(x) = exp(-x^2/2) for real-valued x, recovered from
// distuv.Normal's normalized Prob by undoing its 1/sqrt(2*pi) scaling.
func Density(x float64) float64 {
	return standardNormal.Prob(x) * sqrt2Pi
}

// RangeMass returns the integral of g(x) = exp(-x^2/2) over [l, r],
// recovered from distuv.Normal's normalized CDF difference by undoing its
// 1/sqrt(2*pi) scaling.
func RangeMass(l, r float64) float64 {
	return (standardNormal.CDF(r) - standardNormal.CDF(l)) * sqrt2Pi
}

// Q60ToFloat converts a Q0.60 fixed-point value to its real value.
func Q60ToFloat(x int64) float64 {
	return float64(x) / q60Scale
}

// FloatToQ60 rounds a real value to its nearest Q0.60 representation.
func FloatToQ60(x float64) int64 {
	return int64(x*q60Scale + 0.5)
}

// Q63ToFloat converts a Q1.63 fixed-point value to its real value.
func Q63ToFloat(x int64) float64 {
	return float64(x) / q63Scale
}
