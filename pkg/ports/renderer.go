package ports

import (
	"context"

	"github.com/aretw0/puzzler/pkg/domain"
)

// Renderer displays the effect of an applied action.
// It is called once per frame, in order, and must not retain frame.State.
type Renderer interface {
	Render(ctx context.Context, frame domain.Frame) error
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(ctx context.Context, frame domain.Frame) error

// Render calls f(ctx, frame).
func (f RendererFunc) Render(ctx context.Context, frame domain.Frame) error {
	return f(ctx, frame)
}
