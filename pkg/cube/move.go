package cube

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Face names one of the six turnable faces.
type Face uint8

const (
	U Face = iota
	D
	L
	R
	B
	F
)

const faceLetters = "UDLRBF"

func (f Face) String() string {
	if int(f) < len(faceLetters) {
		return faceLetters[f : f+1]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// Chunk returns the index of the face's 9-facelet chunk in a State.
func (f Face) Chunk() int {
	return faceChunks[f]
}

// faceChunks maps Face to its chunk (U, L, F, R, B, D storage order).
var faceChunks = [6]int{U: 0, L: 1, F: 2, R: 3, B: 4, D: 5}

// Direction is the quarter-turn sense, looking at the face.
type Direction uint8

const (
	CW Direction = iota
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Move is one quarter turn of one face.
type Move struct {
	Face Face
	Dir  Direction
}

// String renders the move in standard notation: "U" for clockwise, "U'" for counterclockwise.
func (m Move) String() string {
	if m.Dir == CCW {
		return m.Face.String() + "'"
	}
	return m.Face.String()
}

// Key renders the move as the key chord that performs it: "U" or "Shift+U".
func (m Move) Key() string {
	if m.Dir == CCW {
		return "Shift+" + m.Face.String()
	}
	return m.Face.String()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	if m.Dir == CW {
		return Move{Face: m.Face, Dir: CCW}
	}
	return Move{Face: m.Face, Dir: CW}
}

func (m Move) valid() bool {
	return m.Face <= F && m.Dir <= CCW
}

// allMoves is the fixed expansion order: faces U D L R B F, each CW then CCW.
var allMoves = func() []Move {
	moves := make([]Move, 0, 12)
	for f := U; f <= F; f++ {
		moves = append(moves, Move{Face: f, Dir: CW}, Move{Face: f, Dir: CCW})
	}
	return moves
}()

// Moves returns the 12 quarter turns in expansion order.
func Moves() []Move {
	out := make([]Move, len(allMoves))
	copy(out, allMoves)
	return out
}

// ParseMove accepts "U", "u", "U'", "Ui", "Shift+U", "U CCW" and "U:CW".
func ParseMove(tok string) (Move, error) {
	t := strings.TrimSpace(tok)
	dir := CW
	if len(t) > 6 && strings.EqualFold(t[:6], "shift+") {
		dir = CCW
		t = t[6:]
	}

	fields := strings.FieldsFunc(t, func(r rune) bool { return r == ' ' || r == ':' || r == '/' })
	if len(fields) == 0 || len(fields) > 2 {
		return Move{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, tok)
	}

	head := fields[0]
	idx := strings.IndexByte(faceLetters, upper(head[0]))
	if idx < 0 {
		return Move{}, fmt.Errorf("%w: unknown face in %q", domain.ErrInvalidAction, tok)
	}

	switch suffix := head[1:]; suffix {
	case "":
	case "'", "’", "i", "-":
		dir = CCW
	default:
		return Move{}, fmt.Errorf("%w: unknown modifier %q in %q", domain.ErrInvalidAction, suffix, tok)
	}

	if len(fields) == 2 {
		switch strings.ToUpper(fields[1]) {
		case "CW":
			dir = CW
		case "CCW":
			dir = CCW
		default:
			return Move{}, fmt.Errorf("%w: unknown direction in %q", domain.ErrInvalidAction, tok)
		}
	}

	return Move{Face: Face(idx), Dir: dir}, nil
}

// FormatKeys joins moves in key-chord notation ("U, Shift+F").
func FormatKeys(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Key()
	}
	return strings.Join(parts, ", ")
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
