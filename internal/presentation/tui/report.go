package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzler/internal/presentation/graph"
	"github.com/aretw0/puzzler/pkg/domain"
)

// Report builds the Markdown summary of a search. frames is the played path
// (optional); when present a Mermaid diagram of it is appended.
func Report(solution *domain.Solution, frames []domain.Frame) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s: %s\n\n", solution.Puzzle, solution.Status)

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Start | `%s` |\n", join(solution.Start))
	fmt.Fprintf(&sb, "| Moves | %d |\n", len(solution.Moves))
	fmt.Fprintf(&sb, "| Expanded | %d |\n", solution.NodesExpanded)
	fmt.Fprintf(&sb, "| Duration | %s |\n", solution.Duration)
	if solution.Cached {
		sb.WriteString("| Cached | yes |\n")
	}
	if solution.RunID != "" {
		fmt.Fprintf(&sb, "| Run | `%s` |\n", solution.RunID)
	}

	if len(solution.Moves) > 0 {
		sb.WriteString("\n## Solution\n\n")
		for i, m := range solution.Moves {
			fmt.Fprintf(&sb, "%d. `%s`\n", i+1, m)
		}
	} else if solution.Status == domain.StatusFound {
		sb.WriteString("\nThe start state is already solved.\n")
	}

	if len(frames) > 1 {
		sb.WriteString("\n## Path\n\n```mermaid\n")
		sb.WriteString(graph.GenerateMermaid(frames, nil))
		sb.WriteString("```\n")
	}

	return sb.String()
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
