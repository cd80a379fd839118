/*
Package puzzler solves discrete puzzles with heuristically guided best-first search.

Two puzzles are built in: the pancake stack (greedy best-first on the number of
misplaced pancakes) and the 3×3 cube (A* on moves so far plus misplaced facelets / 6).
The cube heuristic overestimates, so paths are found quickly but are not guaranteed
shortest.

# Architecture

The search loop in internal/runtime is generic over a comparable state type and an
action type. Each puzzle package (pkg/pancake, pkg/cube) binds its state, actions,
simulator and cost to that loop. Everything outside the core is a port (pkg/ports)
with adapters in pkg/adapters: state loaders, renderers, solution stores and locks.

# Usage

	solver := puzzler.New(puzzler.WithMaxExpansions(100_000))

	result, err := solver.SolvePancakes(ctx, []int{3, 1, 0, 2})
	if err != nil {
		log.Fatal(err)
	}
	if result.Found() {
		fmt.Println(result.Path) // [4 3 2]
	}

The untyped entry points (Solve, Apply, Cost, Play) take the puzzle name and plain
integer symbols, which is what the CLI and the HTTP adapter use. Board keeps an
interactive session with undo and reset; Runner drives a Board from line input.

# Outcomes

A search that ends without reaching the goal is not an error: Status is NotFound
(frontier empty), Exhausted (expansion budget) or Timeout (context done). Status.Err
maps these to domain.ErrNotFound, domain.ErrExhausted and domain.ErrTimeout.
*/
package puzzler
