package runtime

// Backpointer records how a state was first (or most cheaply) reached.
type Backpointer[S comparable, A any] struct {
	Parent S
	Action A
}

// Reconstruct walks parents back from goal until it reaches a state with no entry
// (the start) and returns the collected actions in start-to-goal order.
// The result is empty, not nil, when goal is the start.
func Reconstruct[S comparable, A any](goal S, parents map[S]Backpointer[S, A]) []A {
	path := make([]A, 0)
	for key := goal; ; {
		bp, ok := parents[key]
		if !ok {
			break
		}
		path = append(path, bp.Action)
		key = bp.Parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
