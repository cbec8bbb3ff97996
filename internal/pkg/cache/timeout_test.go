package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopedidos/internal/pkg/cache"
)

// stalledClient simula um Redis que não responde: toda chamada espera o contexto.
type stalledClient struct{}

func (stalledClient) Get(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (stalledClient) Set(ctx context.Context, _ string, _ interface{}, _ time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledClient) Delete(ctx context.Context, _ ...string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledClient) Incr(ctx context.Context, _ string, _ time.Duration) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestWithTimeout_BoundsEveryCall(t *testing.T) {
	c := cache.WithTimeout(stalledClient{}, 20*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, c.Set(ctx, "k", "v", time.Minute), context.DeadlineExceeded)
	assert.ErrorIs(t, c.Delete(ctx, "k"), context.DeadlineExceeded)
	_, err = c.Incr(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	mem := cache.NewMemoryClient()
	assert.Same(t, mem, cache.WithTimeout(mem, 0))

	c := cache.WithTimeout(mem, time.Second)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
