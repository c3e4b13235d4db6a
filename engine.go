// engine.go wires the table loader, polynomial evaluators, and range-area
// aggregator behind the public operations of the fixed-point engine.

package gaussfix

import (
	"github.com/SemyonDr/gaussfix/internal/aggregate"
	"github.com/SemyonDr/gaussfix/internal/eval"
	"github.com/SemyonDr/gaussfix/internal/tables"
)

// Engine evaluates the fixed-point Gaussian approximation against one
// immutable table set. The zero value is not usable; construct with
// NewEngine or Load. Once constructed, an *Engine is safe for concurrent
// use by multiple goroutines: tables are read-only after construction and
// evaluation mutates no shared state.
type Engine struct {
	set *tables.Set
}

// NewEngine wraps an already-loaded table set. Use this when the caller
// builds or caches its own *tables.Set; most callers want Load instead.
func NewEngine(set *tables.Set) *Engine {
	return &Engine{set: set}
}

// Load reads the three table-file groups from dir and returns a ready
// Engine, or a *TableLoadFailure naming the offending file and reason.
// This mirrors the teacher's validate-then-construct constructor idiom:
// construction either fully succeeds or returns a typed error, never a
// partially usable Engine.
func Load(dir string) (*Engine, error) {
	set, err := tables.Load(dir)
	if err != nil {
		return nil, wrapTableLoadFailure(err)
	}
	return NewEngine(set), nil
}

// Value returns the fixed-point approximation of g(x) in Q0.60. x == 0 or
// x beyond the value cutoff returns 0; see the package's design notes for
// why x == 0 is not special-cased to g(0) == 1.
func (e *Engine) Value(x int64) int64 {
	return eval.Value(e.set, x)
}

// ValueWithSteps is Value plus the six Horner intermediates, for tests
// that assert on the evaluation schedule itself.
func (e *Engine) ValueWithSteps(x int64) StepValues {
	return fromInternalSteps(eval.ValueWithSteps(e.set, x))
}

// Area returns the Q1.63 approximation of the integral of g over
// [left, right]. Reversed or zero-width intervals return 0.
func (e *Engine) Area(left, right int64) int64 {
	return aggregate.Area(e.set, left, right)
}

// AreaPolyValue evaluates the eleven-step quintic-antiderivative schedule
// at x. forceSegment, if >= 0, pins the segment used instead of deriving
// it from x; pass -1 to let x select its own segment.
func (e *Engine) AreaPolyValue(x int64, forceSegment int) StepValues {
	return fromInternalSteps(eval.AreaPolyValue(e.set, x, forceSegment))
}

// SubscaleIntegral returns the Q1.63 integral of g over [left, right],
// both of which must fall within the same scale-0 area segment.
func (e *Engine) SubscaleIntegral(left, right int64) int64 {
	return eval.SubscaleIntegral(e.set, left, right)
}
