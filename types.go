package gaussfix

import "github.com/SemyonDr/gaussfix/internal/eval"

// StepValues holds the intermediate Horner values of one evaluation,
// exposed for test introspection: six values for Value/ValueWithSteps,
// eleven for AreaPolyValue.
type StepValues struct {
	Steps  []int64
	Result int64
}

func fromInternalSteps(sv eval.StepValues) StepValues {
	return StepValues{Steps: sv.Steps, Result: sv.Result}
}
