package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultSweepInterval é o intervalo mínimo entre varreduras de chaves expiradas.
const DefaultSweepInterval = time.Minute

// MemoryClient é um Client em processo, usado quando o Redis não está configurado
// e nos testes. Não é compartilhado entre réplicas. Chaves expiradas são removidas
// nas escritas, no máximo uma varredura por sweepInterval.
type MemoryClient struct {
	mu            sync.Mutex
	items         map[string]memoryItem
	now           func() time.Time
	sweepInterval time.Duration
	nextSweep     time.Time
}

// MemoryOption ajusta o MemoryClient.
type MemoryOption func(*MemoryClient)

// WithSweepInterval define o intervalo entre varreduras; zero varre a cada escrita.
func WithSweepInterval(d time.Duration) MemoryOption {
	return func(c *MemoryClient) { c.sweepInterval = d }
}

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// NewMemoryClient cria um cache vazio.
func NewMemoryClient(opts ...MemoryOption) *MemoryClient {
	c := &MemoryClient{
		items:         make(map[string]memoryItem),
		now:           time.Now,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len informa quantas chaves estão armazenadas, expiradas ainda não varridas incluídas.
func (c *MemoryClient) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// sweepLocked remove as chaves expiradas. Exige c.mu.
func (c *MemoryClient) sweepLocked() {
	now := c.now()
	if now.Before(c.nextSweep) {
		return
	}
	for k, it := range c.items {
		if !it.expiresAt.IsZero() && !now.Before(it.expiresAt) {
			delete(c.items, k)
		}
	}
	c.nextSweep = now.Add(c.sweepInterval)
}

func (c *MemoryClient) live(key string) (memoryItem, bool) {
	it, ok := c.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if !it.expiresAt.IsZero() && !c.now().Before(it.expiresAt) {
		delete(c.items, key)
		return memoryItem{}, false
	}
	return it, true
}

func (c *MemoryClient) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.live(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return it.value, nil
}

func (c *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	it := memoryItem{}
	switch v := value.(type) {
	case string:
		it.value = v
	case []byte:
		it.value = string(v)
	default:
		it.value = fmt.Sprint(v)
	}
	if expiration > 0 {
		it.expiresAt = c.now().Add(expiration)
	}
	c.items[key] = it
	return nil
}

func (c *MemoryClient) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func (c *MemoryClient) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	it, ok := c.live(key)
	var n int64
	if ok {
		if _, err := fmt.Sscan(it.value, &n); err != nil {
			return 0, fmt.Errorf("valor não numérico na chave %s", key)
		}
	} else if window > 0 {
		it.expiresAt = c.now().Add(window)
	}
	n++
	it.value = fmt.Sprint(n)
	c.items[key] = it
	return n, nil
}
