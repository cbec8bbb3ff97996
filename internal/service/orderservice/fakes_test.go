package orderservice_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
)

type movementKey struct {
	orderID string
	line    int
}

// memStore simula o PostgreSQL: uma transação por vez, com rollback por snapshot.
type memStore struct {
	mu        sync.Mutex
	products  map[string]domain.Product
	orders    map[string]domain.Order
	movements map[movementKey]int
	failNext  error
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]domain.Product{},
		orders:    map[string]domain.Order{},
		movements: map[movementKey]int{},
	}
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context, q database.Querier) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}

	products := make(map[string]domain.Product, len(m.products))
	for k, v := range m.products {
		products[k] = v
	}
	orders := make(map[string]domain.Order, len(m.orders))
	for k, v := range m.orders {
		orders[k] = v
	}
	movements := make(map[movementKey]int, len(m.movements))
	for k, v := range m.movements {
		movements[k] = v
	}

	if err := fn(ctx, nil); err != nil {
		m.products, m.orders, m.movements = products, orders, movements
		return err
	}
	return nil
}

func (m *memStore) stock(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func (m *memStore) order(id string) domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id]
}

// --- OrderRepository ---

func (m *memStore) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return order, nil
}

func (m *memStore) FindByID(_ context.Context, id string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findOrder(id)
}

func (m *memStore) FindByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Order{}
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) LockByID(_ context.Context, _ database.Querier, id string) (domain.Order, error) {
	return m.findOrder(id)
}

func (m *memStore) UpdateIfPending(_ context.Context, _ database.Querier, order domain.Order) (bool, error) {
	current, ok := m.orders[order.ID]
	if !ok || current.State != domain.OrderPending {
		return false, nil
	}
	m.orders[order.ID] = order
	return true, nil
}

func (m *memStore) findOrder(id string) (domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, apperror.NewNotFoundErrorWithCode(apperror.CodeOrderNotFound, fmt.Sprintf("Pedido com ID %s não existe.", id))
	}
	return o, nil
}

// --- stockservice.StockRepository (executado sob a transação de RunInTx) ---

func (m *memStore) ApplyDelta(_ context.Context, _ database.Querier, productID string, delta int) (domain.StockLevel, error) {
	p, ok := m.products[productID]
	if !ok {
		return domain.StockLevel{}, productNotFound(productID)
	}
	if p.Stock+delta < 0 {
		return domain.StockLevel{}, apperror.NewInsufficientStockError(productID, p.Stock, -delta)
	}
	p.Stock += delta
	m.products[productID] = p
	return domain.StockLevel{ProductID: productID, Stock: p.Stock, Price: p.Price}, nil
}

func (m *memStore) RecordMovement(_ context.Context, _ database.Querier, orderID string, lineIndex int, _ string, delta int) (bool, error) {
	key := movementKey{orderID, lineIndex}
	if _, ok := m.movements[key]; ok {
		return false, nil
	}
	m.movements[key] = delta
	return true, nil
}

func (m *memStore) CurrentStock(_ context.Context, _ database.Querier, productID string) (domain.StockLevel, error) {
	p, ok := m.products[productID]
	if !ok {
		return domain.StockLevel{}, productNotFound(productID)
	}
	return domain.StockLevel{ProductID: productID, Stock: p.Stock, Price: p.Price}, nil
}

// priceBook implementa PriceLookup fora de transação.
type priceBook struct{ store *memStore }

func (p priceBook) FindByID(_ context.Context, id string) (domain.Product, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	prod, ok := p.store.products[id]
	if !ok {
		return domain.Product{}, productNotFound(id)
	}
	return prod, nil
}

func productNotFound(id string) error {
	return apperror.NewNotFoundErrorWithCode(apperror.CodeProductNotFound, fmt.Sprintf("Produto com ID %s não existe.", id))
}

type nopCache struct{}

func (nopCache) Invalidate(context.Context, ...string) {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderTransitioned
	err    error
}

func (p *recordingPublisher) PublishOrderTransitioned(_ context.Context, e domain.OrderTransitioned) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}
