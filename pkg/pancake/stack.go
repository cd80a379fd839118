// Package pancake binds the pancake-flipping puzzle to the search engine.
//
// A Stack is a permutation of 0..n-1 listed top to bottom. The goal is the identity
// permutation (smallest pancake on top). The only action is Flip(p): reverse the top
// p pancakes. Stacks are comparable values, so they key maps directly.
package pancake

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Name identifies the puzzle in logs, stores and transports.
const Name = "pancake"

// MaxSize is the largest stack a Stack value can hold.
const MaxSize = 32

// Stack is an immutable pancake stack, index 0 on top.
type Stack struct {
	n     uint8
	cakes [MaxSize]uint8
}

// New validates values as a permutation of 0..len(values)-1 and returns the stack.
func New(values []int) (Stack, error) {
	n := len(values)
	if n == 0 {
		return Stack{}, fmt.Errorf("%w: empty stack", domain.ErrMalformedState)
	}
	if n > MaxSize {
		return Stack{}, fmt.Errorf("%w: %d pancakes exceeds the maximum of %d", domain.ErrMalformedState, n, MaxSize)
	}

	var seen [MaxSize]bool
	s := Stack{n: uint8(n)}
	for i, v := range values {
		if v < 0 || v >= n {
			return Stack{}, fmt.Errorf("%w: pancake %d at position %d is outside [0,%d)", domain.ErrMalformedState, v, i, n)
		}
		if seen[v] {
			return Stack{}, fmt.Errorf("%w: pancake %d appears more than once", domain.ErrMalformedState, v)
		}
		seen[v] = true
		s.cakes[i] = uint8(v)
	}
	return s, nil
}

// Solved returns the goal stack of size n.
func Solved(n int) (Stack, error) {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return New(values)
}

// Len returns the number of pancakes.
func (s Stack) Len() int {
	return int(s.n)
}

// At returns the pancake at position i (0 is the top).
func (s Stack) At(i int) int {
	return int(s.cakes[i])
}

// Values returns a fresh slice of the stack, top first.
func (s Stack) Values() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = int(s.cakes[i])
	}
	return out
}

// IsSolved reports whether every pancake sits at its own index.
func (s Stack) IsSolved() bool {
	return Cost(s) == 0
}

// Flip returns a new stack with the top p pancakes reversed.
func (s Stack) Flip(f Flip) (Stack, error) {
	p := int(f)
	if p < 2 || p > int(s.n) {
		return s, fmt.Errorf("%w: cannot flip %d of %d pancakes", domain.ErrInvalidAction, p, s.n)
	}
	next := s
	for i, j := 0, p-1; i < j; i, j = i+1, j-1 {
		next.cakes[i], next.cakes[j] = next.cakes[j], next.cakes[i]
	}
	return next, nil
}

func (s Stack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < int(s.n); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s.cakes[i])
	}
	b.WriteByte(']')
	return b.String()
}

// Cost is the number of pancakes out of place. It is 0 exactly at the goal.
func Cost(s Stack) int {
	h := 0
	for i := 0; i < int(s.n); i++ {
		if int(s.cakes[i]) != i {
			h++
		}
	}
	return h
}
