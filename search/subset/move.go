package subset

// SwapMove removes Del from the selected set and adds Add, in one
// reversible step. Both fields make SwapMove a small comparable value
// type, suitable as an EvaluatedMoveCache key.
type SwapMove struct {
	Add int
	Del int
}

// Apply implements search.Move.
func (m SwapMove) Apply(s *SubsetSolution) {
	s.Deselect(m.Del)
	s.Select(m.Add)
}

// Undo implements search.Move.
func (m SwapMove) Undo(s *SubsetSolution) {
	s.Deselect(m.Add)
	s.Select(m.Del)
}
