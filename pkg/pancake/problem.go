package pancake

// Problem adapts stacks to the search engine as a greedy best-first problem:
// the priority is the heuristic alone and the depth is ignored.
type Problem struct{}

func (Problem) IsGoal(s Stack) bool {
	return s.IsSolved()
}

func (Problem) Actions(s Stack) []Flip {
	return flipTable[s.n]
}

func (Problem) Apply(s Stack, f Flip) (Stack, error) {
	return s.Flip(f)
}

func (Problem) Cost(s Stack, _ int) float64 {
	return float64(Cost(s))
}
