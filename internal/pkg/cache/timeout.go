package cache

import (
	"context"
	"time"
)

// timeoutClient limita a duração de cada chamada ao cache.
type timeoutClient struct {
	next    Client
	timeout time.Duration
}

// WithTimeout envolve c para que nenhuma operação espere mais que timeout.
// Com timeout <= 0 devolve c sem alteração.
func WithTimeout(c Client, timeout time.Duration) Client {
	if timeout <= 0 {
		return c
	}
	return &timeoutClient{next: c, timeout: timeout}
}

func (t *timeoutClient) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Get(ctx, key)
}

func (t *timeoutClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Set(ctx, key, value, expiration)
}

func (t *timeoutClient) Delete(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Delete(ctx, keys...)
}

func (t *timeoutClient) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Incr(ctx, key, window)
}
