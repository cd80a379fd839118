// Package cube binds the 3×3 cube to the search engine.
//
// A State is the flat list of 54 facelet colors, six 9-facelet chunks stored in
// U, L, F, R, B, D order. Centers (offset 4 of each chunk) never move and define the
// face's color, so the goal is every chunk uniform. Actions are quarter turns.
//
// The heuristic (misplaced facelets / 6) is not admissible: one turn moves up to 20
// facelets, so it can overestimate. Search with it is informed, not optimal.
package cube

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Name identifies the puzzle in logs, stores and transports.
const Name = "cube"

const (
	Facelets        = 54
	FaceletsPerFace = 9
	Colors          = 6
	centerOffset    = 4
)

// Color is a facelet color index in [0,5].
type Color uint8

// State is an immutable facelet configuration.
type State [Facelets]Color

// New validates 54 color indices in [0,5] and returns the state.
func New(values []int) (State, error) {
	var s State
	if len(values) != Facelets {
		return s, fmt.Errorf("%w: want %d facelets, got %d", domain.ErrMalformedState, Facelets, len(values))
	}
	for i, v := range values {
		if v < 0 || v >= Colors {
			return State{}, fmt.Errorf("%w: color %d at facelet %d is outside [0,%d)", domain.ErrMalformedState, v, i, Colors)
		}
		s[i] = Color(v)
	}
	return s, nil
}

// Solved returns the goal cube: chunk k is all color k.
func Solved() State {
	var s State
	for i := range s {
		s[i] = Color(i / FaceletsPerFace)
	}
	return s
}

// Values returns a fresh slice of the facelet colors.
func (s State) Values() []int {
	out := make([]int, Facelets)
	for i, c := range s {
		out[i] = int(c)
	}
	return out
}

// Rotate returns the state after m. The receiver is a copy, so all 20 sources are
// read from the original colors before any destination is written.
func (s State) Rotate(m Move) (State, error) {
	if !m.valid() {
		return s, fmt.Errorf("%w: %s %s", domain.ErrInvalidAction, m.Face, m.Dir)
	}
	t := &turns[m.Face][m.Dir]
	next := s
	for i := range t.src {
		next[t.dst[i]] = s[t.src[i]]
	}
	return next, nil
}

// Misplaced counts facelets whose color differs from their chunk's center.
func (s State) Misplaced() int {
	wrong := 0
	for chunk := 0; chunk < Colors; chunk++ {
		base := chunk * FaceletsPerFace
		center := s[base+centerOffset]
		for i := base; i < base+FaceletsPerFace; i++ {
			if s[i] != center {
				wrong++
			}
		}
	}
	return wrong
}

// IsSolved reports whether every chunk is uniform.
func (s State) IsSolved() bool {
	return s.Misplaced() == 0
}

func (s State) String() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 && i%FaceletsPerFace == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte('0' + c))
	}
	return b.String()
}

// Heuristic is the average number of misplaced facelets per face.
func Heuristic(s State) float64 {
	return float64(s.Misplaced()) / Colors
}

// Cost is g + h: moves taken so far plus Heuristic.
func Cost(s State, depth int) float64 {
	return float64(depth) + Heuristic(s)
}

// ErrScrambleLength is returned for a negative scramble length.
var ErrScrambleLength = errors.New("scramble length must be >= 0")

// Scramble applies n pseudo-random quarter turns to the solved cube, reproducible for a seed.
func Scramble(n int, seed int64) (State, []Move, error) {
	if n < 0 {
		return State{}, nil, ErrScrambleLength
	}
	rng := rand.New(rand.NewSource(seed))
	s := Solved()
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = allMoves[rng.Intn(len(allMoves))]
		s, _ = s.Rotate(moves[i])
	}
	return s, moves, nil
}

// Problem adapts cube states to the search engine as A*: priority is Cost(s, depth).
// Pair it with cost-aware admission so cheaper rediscoveries replace older entries.
type Problem struct{}

func (Problem) IsGoal(s State) bool {
	return s.IsSolved()
}

func (Problem) Actions(State) []Move {
	return allMoves
}

func (Problem) Apply(s State, m Move) (State, error) {
	return s.Rotate(m)
}

func (Problem) Cost(s State, depth int) float64 {
	return Cost(s, depth)
}
