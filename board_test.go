package puzzler_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/puzzler"
	"github.com/aretw0/puzzler/pkg/cube"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/pancake"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(frames *[]domain.Frame) ports.Renderer {
	return ports.RendererFunc(func(_ context.Context, f domain.Frame) error {
		*frames = append(*frames, f)
		return nil
	})
}

func TestBoard_ApplyUndoReset(t *testing.T) {
	board, err := puzzler.New().NewBoard(cube.Name, cube.Solved().Values())
	require.NoError(t, err)

	require.NoError(t, board.Apply("U", "Shift+R"))
	assert.Equal(t, []string{"U", "R'"}, board.Moves())
	assert.False(t, board.IsSolved())

	c, err := board.Cost()
	require.NoError(t, err)
	assert.Greater(t, c, 2.0)

	assert.True(t, board.Undo())
	assert.Equal(t, []string{"U"}, board.Moves())

	assert.True(t, board.Undo())
	assert.True(t, board.IsSolved())
	assert.False(t, board.Undo(), "history is empty")

	require.NoError(t, board.Apply("F"))
	board.Reset()
	assert.Empty(t, board.Moves())
	assert.Equal(t, cube.Solved().Values(), board.State())
}

func TestBoard_ApplyIsAtomic(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{2, 0, 1})
	require.NoError(t, err)

	err = board.Apply("2", "7")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, []int{2, 0, 1}, board.State())
	assert.Empty(t, board.Moves())
}

func TestBoard_StateIsACopy(t *testing.T) {
	values := []int{1, 0}
	board, err := puzzler.New().NewBoard(pancake.Name, values)
	require.NoError(t, err)

	values[0] = 9
	state := board.State()
	state[1] = 9
	assert.Equal(t, []int{1, 0}, board.State())
}

func TestBoard_Play(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)

	var frames []domain.Frame
	solution, err := board.Play(context.Background(), recorder(&frames), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFound, solution.Status)
	assert.Len(t, frames, len(solution.Moves)+1)
	assert.True(t, board.IsSolved())
	assert.Equal(t, solution.Moves, board.Moves())

	// Each played step is undoable
	assert.True(t, board.Undo())
	assert.False(t, board.IsSolved())
}

func TestBoard_PlayPartial(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)

	errScreen := errors.New("screen gone")
	r := ports.RendererFunc(func(_ context.Context, f domain.Frame) error {
		if f.Step == 2 {
			return errScreen
		}
		return nil
	})

	_, err = board.Play(context.Background(), r, 0)
	assert.ErrorIs(t, err, errScreen)
	assert.Equal(t, []string{"4"}, board.Moves(), "only rendered steps are applied")
}

func TestNewBoard_Invalid(t *testing.T) {
	_, err := puzzler.New().NewBoard(pancake.Name, []int{0, 2})
	assert.ErrorIs(t, err, domain.ErrMalformedState)

	_, err = puzzler.New().NewBoard("hanoi", []int{0})
	assert.ErrorIs(t, err, domain.ErrUnknownPuzzle)
}

func TestRunner_Session(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{3, 1, 0, 2})
	require.NoError(t, err)

	var frames []domain.Frame
	var out bytes.Buffer
	runner := &puzzler.Runner{
		Input:    strings.NewReader("4\nundo\n9\nsolve\nstate\ncost\nquit\nstate\n"),
		Output:   &out,
		Renderer: recorder(&frames),
		Headless: true,
	}

	require.NoError(t, runner.Run(context.Background(), board))

	output := out.String()
	assert.Contains(t, output, "error: ")
	assert.Contains(t, output, "found after")
	assert.Contains(t, output, "0 1 2 3\n")
	assert.Contains(t, output, "cost: 0\n")
	assert.Contains(t, output, "Bye!")
	assert.Equal(t, 1, strings.Count(output, "0 1 2 3\n"), "input after quit is ignored")

	// initial, "4", undo, then the initial frame and three steps of the solve
	require.Len(t, frames, 7)
	assert.Equal(t, []int{2, 0, 1, 3}, frames[1].State)
	assert.Equal(t, []int{3, 1, 0, 2}, frames[2].State)
	assert.True(t, board.IsSolved())
}

func TestRunner_EOFWithoutNewline(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{1, 0})
	require.NoError(t, err)

	var frames []domain.Frame
	runner := &puzzler.Runner{
		Input:    strings.NewReader("2"),
		Output:   &bytes.Buffer{},
		Renderer: recorder(&frames),
		Headless: true,
	}
	require.NoError(t, runner.Run(context.Background(), board))
	assert.True(t, board.IsSolved())
}

func TestRunner_DirectionWords(t *testing.T) {
	board, err := puzzler.New().NewBoard(cube.Name, cube.Solved().Values())
	require.NoError(t, err)

	var frames []domain.Frame
	var out bytes.Buffer
	runner := &puzzler.Runner{
		Input:    strings.NewReader("U CCW R\nU cw\nquit\n"),
		Output:   &out,
		Renderer: recorder(&frames),
		Headless: true,
	}
	require.NoError(t, runner.Run(context.Background(), board))

	assert.NotContains(t, out.String(), "error: ")
	assert.Equal(t, []string{"U'", "R", "U"}, board.Moves())
	assert.Equal(t, "U CCW R", frames[1].Move)
}

func TestBoard_ApplyErrorNamesMove(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{2, 1, 0})
	require.NoError(t, err)

	err = board.Apply("2", "9")
	require.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, "move 2: invalid action: flip 9 outside [2,3]", err.Error())
}

func TestRunner_RequiresIO(t *testing.T) {
	board, err := puzzler.New().NewBoard(pancake.Name, []int{0})
	require.NoError(t, err)

	assert.Error(t, (&puzzler.Runner{}).Run(context.Background(), board))
}
