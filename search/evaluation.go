package search

// Evaluation wraps the real-valued result of evaluating a solution or
// move, plus optional opaque delta metadata a Problem may attach (e.g. a
// per-constraint breakdown) for its own later use.
type Evaluation struct {
	Value float64
	Delta interface{}
}

// NewEvaluation constructs an Evaluation with no delta metadata.
func NewEvaluation(value float64) Evaluation {
	return Evaluation{Value: value}
}

// Validation reports whether a solution satisfies a problem's
// constraints. For penalizing constraints, Penalty is the nonnegative
// amount by which the objective is softly discouraged. Penalty is zero
// whenever Passed is true; a failing Validation may also carry zero
// penalty (Rejected clamps a negative penalty to zero and keeps Passed
// false).
type Validation struct {
	Passed  bool
	Penalty float64
}

// Valid is the zero-penalty, passing Validation.
var Valid = Validation{Passed: true}

// Rejected constructs a failing Validation carrying penalty.
func Rejected(penalty float64) Validation {
	if penalty < 0 {
		penalty = 0
	}
	return Validation{Passed: false, Penalty: penalty}
}

// And combines two validations: passes only if both pass, and sums
// penalties (constraints are independent and additive).
func (v Validation) And(other Validation) Validation {
	return Validation{
		Passed:  v.Passed && other.Passed,
		Penalty: v.Penalty + other.Penalty,
	}
}
