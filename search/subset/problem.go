package subset

import (
	"math"

	"github.com/ls-engine/localsearch-go/search"
)

// ObjectiveFunc computes the raw objective value of a selected subset.
type ObjectiveFunc func(selected []int) float64

// PenalizingConstraint checks one constraint against a selected subset,
// returning search.Valid if it holds or a Validation carrying a
// nonnegative penalty otherwise. Multiple constraints compose via
// Validation.And.
type PenalizingConstraint func(selected []int) search.Validation

// FixedSize returns a PenalizingConstraint requiring the selected subset
// to have exactly size members, penalizing proportionally to the excess
// or shortfall.
func FixedSize(size int) PenalizingConstraint {
	return func(selected []int) search.Validation {
		if len(selected) == size {
			return search.Valid
		}
		return search.Rejected(math.Abs(float64(len(selected) - size)))
	}
}

// SizeRange returns a PenalizingConstraint allowing the selected subset's
// size to vary within [minSize, maxSize] (inclusive), penalizing
// proportionally to the shortfall below minSize or the excess above
// maxSize.
func SizeRange(minSize, maxSize int) PenalizingConstraint {
	return func(selected []int) search.Validation {
		n := len(selected)
		switch {
		case n < minSize:
			return search.Rejected(float64(minSize - n))
		case n > maxSize:
			return search.Rejected(float64(n - maxSize))
		default:
			return search.Valid
		}
	}
}

// PenalizingSubsetProblem is a search.Problem[*SubsetSolution] combining
// an objective over the selected IDs with zero or more penalizing
// constraints.
type PenalizingSubsetProblem struct {
	orientation search.Orientation
	universe    []int
	objective   ObjectiveFunc
	constraints []PenalizingConstraint
	targetSize  int // 0: CreateRandomSolution draws a random nonempty size

	rng *search.RNGSource
}

// NewPenalizingSubsetProblem constructs a problem over universe. Pass
// targetSize > 0 to have CreateRandomSolution draw exactly that many
// initial IDs (callers typically also register subset.FixedSize(targetSize)
// as a constraint so the search maintains it); pass 0 for a random size.
func NewPenalizingSubsetProblem(
	orientation search.Orientation,
	universe []int,
	targetSize int,
	seed int64,
	objective ObjectiveFunc,
	constraints ...PenalizingConstraint,
) *PenalizingSubsetProblem {
	return &PenalizingSubsetProblem{
		orientation: orientation,
		universe:    universe,
		objective:   objective,
		constraints: constraints,
		targetSize:  targetSize,
		rng:         search.NewRNGSource(seed),
	}
}

// Orientation implements search.Problem.
func (p *PenalizingSubsetProblem) Orientation() search.Orientation {
	return p.orientation
}

// Evaluate implements search.Problem.
func (p *PenalizingSubsetProblem) Evaluate(s *SubsetSolution) search.Evaluation {
	return search.NewEvaluation(p.objective(s.Selected()))
}

// Validate implements search.Problem.
func (p *PenalizingSubsetProblem) Validate(s *SubsetSolution) search.Validation {
	v := search.Valid
	selected := s.Selected()
	for _, constraint := range p.constraints {
		v = v.And(constraint(selected))
	}
	return v
}

// RejectSolution implements search.Problem.
func (p *PenalizingSubsetProblem) RejectSolution(s *SubsetSolution) bool {
	return !p.Validate(s).Passed
}

// CreateRandomSolution implements search.Problem.
func (p *PenalizingSubsetProblem) CreateRandomSolution() *SubsetSolution {
	rng := p.rng.Next()

	shuffled := make([]int, len(p.universe))
	copy(shuffled, p.universe)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	size := p.targetSize
	if size <= 0 {
		if len(shuffled) == 0 {
			size = 0
		} else {
			size = 1 + rng.Intn(len(shuffled))
		}
	}
	if size > len(shuffled) {
		size = len(shuffled)
	}

	return New(p.universe, shuffled[:size])
}
