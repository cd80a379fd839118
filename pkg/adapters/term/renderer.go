// Package term renders puzzle frames to a terminal with termenv colors.
package term

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/puzzler/pkg/cube"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/pancake"
	"github.com/muesli/termenv"
)

// faceColors are the sticker colors by color index (chunk order U, L, F, R, B, D).
var faceColors = [cube.Colors]string{"#f5f5f5", "#ff8c00", "#22c55e", "#ef4444", "#3b82f6", "#facc15"}

// Renderer implements ports.Renderer. It is safe for concurrent use; frames are
// written one at a time.
type Renderer struct {
	out   *termenv.Output
	clear bool
	mu    sync.Mutex
}

type options struct {
	clear   bool
	outOpts []termenv.OutputOption
}

type Option func(*options)

// WithClear redraws in place by clearing the screen before each frame.
func WithClear(clear bool) Option {
	return func(o *options) {
		o.clear = clear
	}
}

// WithProfile forces a color profile instead of detecting it (tests use termenv.Ascii).
func WithProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.outOpts = append(o.outOpts, termenv.WithProfile(p))
	}
}

// New creates a renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		out:   termenv.NewOutput(w, o.outOpts...),
		clear: o.clear,
	}
}

// Render draws one frame.
func (r *Renderer) Render(ctx context.Context, frame domain.Frame) error {
	var body string
	switch frame.Puzzle {
	case pancake.Name:
		body = r.stack(frame.State)
	case cube.Name:
		body = r.net(frame.State)
	default:
		body = fmt.Sprint(frame.State) + "\n"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clear {
		r.out.ClearScreen()
		r.out.MoveCursor(1, 1)
	}
	if _, err := fmt.Fprintln(r.out, r.header(frame)); err != nil {
		return err
	}
	_, err := io.WriteString(r.out, body)
	return err
}

func (r *Renderer) header(f domain.Frame) string {
	title := r.out.String(f.Puzzle).Bold().String()
	switch {
	case f.Move == "":
		return fmt.Sprintf("%s  step %d/%d", title, f.Step, f.Total)
	default:
		move := r.out.String(f.Move).Foreground(r.out.Color("#c084fc")).String()
		return fmt.Sprintf("%s  step %d/%d  %s", title, f.Step, f.Total, move)
	}
}

// stack draws each pancake as a bar whose width grows with its size; index 0 is on top.
// Pancakes already in their goal position are highlighted.
func (r *Renderer) stack(values []int) string {
	n := len(values)
	var sb strings.Builder
	for i, v := range values {
		width := max(2*v+1, 1)
		pad := max(n-v, 0)
		bar := strings.Repeat("█", width)
		style := r.out.String(bar)
		if v == i {
			style = style.Foreground(r.out.Color("#f59e0b"))
		} else {
			style = style.Foreground(r.out.Color("#a16207"))
		}
		fmt.Fprintf(&sb, "%s%s %2d\n", strings.Repeat(" ", pad), style, v)
	}
	return sb.String()
}

// net draws the cube as a cross:
//
//	    U
//	L F R B
//	    D
func (r *Renderer) net(values []int) string {
	if len(values) != cube.Facelets {
		return fmt.Sprint(values) + "\n"
	}
	row := func(face cube.Face, line int) string {
		var sb strings.Builder
		base := face.Chunk()*cube.FaceletsPerFace + line*3
		for i := base; i < base+3; i++ {
			c := values[i]
			if c < 0 || c >= cube.Colors {
				sb.WriteString("??")
				continue
			}
			sb.WriteString(r.out.String(fmt.Sprintf("%d ", c)).Background(r.out.Color(faceColors[c])).Foreground(r.out.Color("#000000")).String())
		}
		return sb.String()
	}

	const blank = "      "
	var sb strings.Builder
	for line := 0; line < 3; line++ {
		sb.WriteString(blank + " " + row(cube.U, line) + "\n")
	}
	for line := 0; line < 3; line++ {
		sb.WriteString(row(cube.L, line) + " " + row(cube.F, line) + " " + row(cube.R, line) + " " + row(cube.B, line) + "\n")
	}
	for line := 0; line < 3; line++ {
		sb.WriteString(blank + " " + row(cube.D, line) + "\n")
	}
	return sb.String()
}
