// Package gaussfix implements a fixed-point evaluation engine for the
// standard Gaussian density g(x) = exp(-x^2/2) over the non-negative real
// line, suitable for embedded or FPGA-style deployment where floating
// point is unavailable or undesirable.
//
// The engine answers two questions using only signed 64-bit integer
// arithmetic:
//
//   - Point value: an approximation of g(x), via Value/ValueWithSteps.
//   - Range area: an approximation of the integral of g over [left,
//     right], via Area, backed by AreaPolyValue and SubscaleIntegral.
//
// # Fixed-point formats
//
// Arguments and value-spline results use Q0.60 (a signed 64-bit integer
// with 60 fractional bits, representing 0 <= x < 8). Range-area results
// use Q1.63. See the Qk.f convention in the package's design notes for
// the general format.
//
// # Construction
//
// An Engine is built from three groups of precomputed table files -- a
// cubic value-spline table, a quintic area-spline table, and eleven
// dyadic-scale precomputed-area tables -- generated offline by
// cmd/gentables and shipped under tabledata/. Load reads them once;
// after construction, evaluation never fails. Each evaluation allocates
// its Horner step slices, also in calls such as Value and Area that
// return only the result.
//
//	eng, err := gaussfix.Load("tabledata")
//	if err != nil {
//	    // tables missing or malformed; construction-time only.
//	}
//	v := eng.Value(1 << 60)
//	a := eng.Area(0, 1<<62)
//
// Negative x, runtime sigma != 1, floating-point evaluation, and dynamic
// retabulation are out of scope; sigma is baked into the shipped tables
// and callers needing negative-x support compose it externally via the
// engine's own symmetry (area(-a, b) = area(0, a) + area(0, b)).
package gaussfix
