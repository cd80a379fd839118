package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererFunc(t *testing.T) {
	var got []domain.Frame
	var r ports.Renderer = ports.RendererFunc(func(_ context.Context, f domain.Frame) error {
		got = append(got, f)
		return nil
	})

	require.NoError(t, r.Render(context.Background(), domain.Frame{Puzzle: "pancake", Step: 1, Total: 2}))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Step)
}

func TestStaticLoader_Copies(t *testing.T) {
	l := ports.StaticLoader{2, 0, 1}
	values, err := l.Load(context.Background())
	require.NoError(t, err)
	values[0] = 9

	again, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, again)
}
