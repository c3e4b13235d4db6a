// Package eval implements the Horner-schedule polynomial evaluators that
// read the value-spline and area-spline tables: the six-step cubic value
// schedule (C5) and the eleven-step quintic-antiderivative schedule used
// both as a point evaluator and, via two evaluations, a sub-segment
// integrator (C6).
package eval

import (
	"github.com/SemyonDr/gaussfix/internal/fixedpoint"
	"github.com/SemyonDr/gaussfix/internal/tables"
)

// XCutoffVal is the Q0.60 argument beyond which the value evaluator
// returns 0: g(x) rounds to zero at the chosen fractional precision past
// this point.
const XCutoffVal = 7798021677424194372

// XCutoffArea is the Q0.60 argument beyond which the area-spline table has
// no further segments.
const XCutoffArea = 7468738554291142405

// XAreaLast is the Q0.60 right edge of the final scale-0 area segment,
// exactly AreaSegmentCount * 2^53.
const XAreaLast = 7475975381435023360

// valueSegmentShift and areaSegmentShift are the right-shifts that turn a
// Q0.60 argument into its segment index for each table.
const (
	valueSegmentShift = 54
	areaSegmentShift  = 53
)

// StepValues holds the intermediate Horner values of one evaluation,
// exposed for test introspection (spec.md §4.3 step 4 / §6).
type StepValues struct {
	Steps  []int64
	Result int64
}

// Value returns the six-step Horner evaluation of the value-spline cubic
// at x (Q0.60 in, Q0.60 out). x == 0 or x beyond XCutoffVal returns 0 by
// the engine's explicit convention (spec.md §9: value(0) == 0 is
// deliberate, not an oversight).
func Value(set *tables.Set, x int64) int64 {
	return ValueWithSteps(set, x).Result
}

// ValueWithSteps is Value plus the six intermediate s_i, for tests that
// assert on the Horner schedule itself rather than only its result.
func ValueWithSteps(set *tables.Set, x int64) StepValues {
	if x == 0 || x > XCutoffVal {
		return StepValues{Steps: make([]int64, 6), Result: 0}
	}

	idx := x >> valueSegmentShift
	seg := set.ValueSplines[idx]

	steps := make([]int64, 6)
	steps[0] = fixedpoint.MulQ60(seg.A, x)
	steps[1] = fixedpoint.AddSatQ60(steps[0], seg.B)
	steps[2] = fixedpoint.MulQ60(steps[1], x)
	steps[3] = fixedpoint.AddSatQ60(steps[2], seg.C)
	steps[4] = fixedpoint.MulQ60(steps[3], x)
	steps[5] = fixedpoint.AddSatQ60(steps[4], seg.D)

	return StepValues{Steps: steps, Result: steps[5]}
}

// AreaPolyValue evaluates the eleven-step quintic-antiderivative schedule
// at x using the pre-scaled coefficients of the segment x falls into (or
// of the explicitly forced segment, when forceSegment >= 0). Out-of-range
// x (0 or beyond XAreaLast) returns 0.
func AreaPolyValue(set *tables.Set, x int64, forceSegment int) StepValues {
	if x == 0 || x > XAreaLast {
		return StepValues{Steps: make([]int64, 11), Result: 0}
	}

	idx := forceSegment
	if idx < 0 {
		idx = int(x >> areaSegmentShift)
		// x == XAreaLast shifts to one past the last segment index (it is
		// that segment's right edge, not its own segment's left edge);
		// clamp so the boundary value still reads the final segment.
		if idx >= len(set.AreaSplines) {
			idx = len(set.AreaSplines) - 1
		}
	}
	seg := set.AreaSplines[idx]

	steps := make([]int64, 11)
	steps[0] = fixedpoint.MulQ60(seg.C1, x)
	steps[1] = fixedpoint.AddSatQ60(steps[0], seg.C2)
	steps[2] = fixedpoint.MulQ60(steps[1], x)
	steps[3] = fixedpoint.AddSatQ60(steps[2], seg.C3)
	steps[4] = fixedpoint.MulQ60(steps[3], x)
	steps[5] = fixedpoint.AddSatQ60(steps[4], seg.C4)
	steps[6] = fixedpoint.MulQ60(steps[5], x)
	steps[7] = fixedpoint.AddSatQ60(steps[6], seg.C5)
	steps[8] = fixedpoint.MulQ60(steps[7], x)
	steps[9] = fixedpoint.AddSatQ60(steps[8], seg.C6)
	steps[10] = fixedpoint.MulQ60(steps[9], x)

	return StepValues{Steps: steps, Result: steps[10]}
}

// SubscaleIntegral returns the Q1.63 approximation of the integral of g
// over [left, right], where both endpoints must fall in the same scale-0
// area segment (left>>53 == right>>53). Equal endpoints return 0.
//
// The Q0.60 difference of antiderivative values is promoted to Q1.63 by a
// left shift of 3, the convention spec.md §4.5 fixes for this engine.
func SubscaleIntegral(set *tables.Set, left, right int64) int64 {
	if left == right {
		return 0
	}
	idx := int(left >> areaSegmentShift)
	hi := AreaPolyValue(set, right, idx).Result
	lo := AreaPolyValue(set, left, idx).Result
	return (hi - lo) << 3
}
