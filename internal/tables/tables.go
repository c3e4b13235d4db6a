// Package tables loads and holds the three fixed-point table-file groups
// the evaluation engine consumes: value-spline coefficients, area-spline
// coefficients, and the eleven dyadic precomputed-area arrays. Tables are
// read-only once Load returns; concurrent readers need no synchronisation.
package tables

import "fmt"

// Segment counts derived from the cutoff constants (SPEC_FULL.md §3):
// ValueSegmentCount = ceil(XCutoffVal / 2^54), AreaSegmentCount (scale 0) =
// ceil(XCutoffArea / 2^53).
const (
	ValueSegmentCount = 433
	AreaSegmentCount  = 830

	// NumDyadicScales is the number of parallel dyadic area arrays, scale
	// 0 (finest, width 2^53) through scale 10 (coarsest, the whole-support
	// single entry used by the fast path).
	NumDyadicScales = 11
)

// DyadicScaleCounts holds the entry count of each dyadic scale, each the
// ceil(prevCount/2) of the one before it, starting from AreaSegmentCount.
var DyadicScaleCounts = [NumDyadicScales]int{830, 415, 208, 104, 52, 26, 13, 7, 4, 2, 1}

// ValueSegment is the immutable cubic coefficient tuple for one
// value-spline segment, in Q0.60: g(x) ~= A*x^3 + B*x^2 + C*x + D.
type ValueSegment struct {
	A, B, C, D int64
}

// AreaSegment is the immutable quintic-antiderivative coefficient tuple
// for one area-spline segment, in Q0.60. The stored c_k are already
// pre-divided by the antiderivative's power factor (7-k); evaluation does
// no division.
type AreaSegment struct {
	C1, C2, C3, C4, C5, C6 int64
}

// Set is the complete, immutable collection of loaded tables.
type Set struct {
	ValueSplines []ValueSegment
	AreaSplines  []AreaSegment
	DyadicAreas  [NumDyadicScales][]int64
}

// LoadFailureReason classifies why table loading failed.
type LoadFailureReason int

const (
	// ReasonNotFound means the file could not be opened.
	ReasonNotFound LoadFailureReason = iota
	// ReasonParse means a line could not be parsed as the expected tuple shape.
	ReasonParse
	// ReasonCountMismatch means the file parsed but had the wrong record count.
	ReasonCountMismatch
)

func (r LoadFailureReason) String() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonParse:
		return "parse error"
	case ReasonCountMismatch:
		return "count mismatch"
	default:
		return "unknown"
	}
}

// LoadFailure is the single failure kind table loading can produce: a
// construction-time error naming the offending file path and the reason.
// Once Load returns successfully, evaluation is total and this type never
// appears again.
type LoadFailure struct {
	Path   string
	Reason LoadFailureReason
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("tables: %s: %s", e.Path, e.Reason)
}
