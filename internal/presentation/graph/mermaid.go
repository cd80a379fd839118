package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzler/pkg/domain"
)

// PathOverlay highlights one frame of a played path.
type PathOverlay struct {
	CurrentStep int
}

// GenerateMermaid produces a Mermaid flowchart of a solution path: one node per frame
// state, one edge per move. Frames must be in step order, starting with the initial
// frame (Step 0). Shapes:
// - Start: ((Circle))
// - Goal (last frame): (((Double circle)))
// - Default: [Rectangle]
func GenerateMermaid(frames []domain.Frame, overlay *PathOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, f := range frames {
		id := nodeID(f.Step)

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == len(frames)-1:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label(f.State), closer))

		if i > 0 {
			prev := nodeID(frames[i-1].Step)
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", prev, escape(f.Move), id))
		}
	}

	if overlay != nil && len(frames) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, f := range frames {
			switch {
			case f.Step < overlay.CurrentStep:
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(f.Step)))
			case f.Step == overlay.CurrentStep:
				sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(f.Step)))
			}
		}
	}

	return sb.String()
}

func nodeID(step int) string {
	return fmt.Sprintf("s%d", step)
}

// label renders symbols compactly; single-digit symbols are run together (cube nets).
func label(values []int) string {
	compact := true
	for _, v := range values {
		if v < 0 || v > 9 {
			compact = false
			break
		}
	}

	var sb strings.Builder
	for i, v := range values {
		if i > 0 && !compact {
			sb.WriteByte(' ')
		}
		if i > 0 && compact && len(values) > 9 && i%9 == 0 {
			sb.WriteString("<br/>")
		}
		sb.WriteString(fmt.Sprint(v))
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
