package domain

// Frame is what a renderer receives after each applied action.
type Frame struct {
	Puzzle string `json:"puzzle"`

	// Step is 1-based; Total is the number of actions being played.
	Step  int `json:"step"`
	Total int `json:"total"`

	// Move is the action just applied, in the puzzle's notation. Empty for the initial frame.
	Move string `json:"move,omitempty"`

	// State is a copy of the new state's symbols.
	State []int `json:"state"`
}
