package pancake

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Flip reverses the top p pancakes. Valid values are 2..n.
type Flip int

func (f Flip) String() string {
	return strconv.Itoa(int(f))
}

// ParseFlip parses a flip count for a stack of n pancakes.
func ParseFlip(tok string, n int) (Flip, error) {
	p, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a flip count", domain.ErrInvalidAction, tok)
	}
	if p < 2 || p > n {
		return 0, fmt.Errorf("%w: flip %d outside [2,%d]", domain.ErrInvalidAction, p, n)
	}
	return Flip(p), nil
}

// flipTable[n] lists the legal flips for a stack of n, in ascending order.
var flipTable = func() [MaxSize + 1][]Flip {
	var t [MaxSize + 1][]Flip
	for n := range t {
		flips := make([]Flip, 0, max(n-1, 0))
		for p := 2; p <= n; p++ {
			flips = append(flips, Flip(p))
		}
		t[n] = flips
	}
	return t
}()

// Flips returns the legal flips for a stack of n pancakes (2..n). Flipping one is a no-op and excluded.
func Flips(n int) []Flip {
	if n < 0 || n > MaxSize {
		return nil
	}
	out := make([]Flip, len(flipTable[n]))
	copy(out, flipTable[n])
	return out
}

// Shuffle returns a pseudo-random stack of n pancakes, reproducible for a given seed.
func Shuffle(n int, seed int64) (Stack, error) {
	if n < 1 || n > MaxSize {
		return Stack{}, fmt.Errorf("%w: cannot shuffle %d pancakes", domain.ErrMalformedState, n)
	}
	rng := rand.New(rand.NewSource(seed))
	return New(rng.Perm(n))
}
