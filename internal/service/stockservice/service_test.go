package stockservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/service/stockservice"
)

// MockStockRepository é uma implementação mock da interface StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ApplyDelta(ctx context.Context, q database.Querier, productID string, delta int) (domain.StockLevel, error) {
	args := m.Called(ctx, q, productID, delta)
	return args.Get(0).(domain.StockLevel), args.Error(1)
}

func (m *MockStockRepository) RecordMovement(ctx context.Context, q database.Querier, orderID string, lineIndex int, productID string, delta int) (bool, error) {
	args := m.Called(ctx, q, orderID, lineIndex, productID, delta)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) CurrentStock(ctx context.Context, q database.Querier, productID string) (domain.StockLevel, error) {
	args := m.Called(ctx, q, productID)
	return args.Get(0).(domain.StockLevel), args.Error(1)
}

// directUoW executa fn sem transação real.
type directUoW struct{ calls int }

func (u *directUoW) RunInTx(ctx context.Context, fn func(ctx context.Context, q database.Querier) error) error {
	u.calls++
	return fn(ctx, nil)
}

type recordingCache struct{ invalidated []string }

func (c *recordingCache) Invalidate(_ context.Context, ids ...string) {
	c.invalidated = append(c.invalidated, ids...)
}

func newService(repo *MockStockRepository) (*stockservice.Service, *directUoW, *recordingCache) {
	uow := &directUoW{}
	cache := &recordingCache{}
	return stockservice.NewService(repo, uow, cache, logger.NewNop()), uow, cache
}

func TestApplyDelta_Success(t *testing.T) {
	repo := new(MockStockRepository)
	svc, uow, cache := newService(repo)
	productID := uuid.NewString()

	repo.On("ApplyDelta", mock.Anything, mock.Anything, productID, -3).Return(domain.StockLevel{ProductID: productID, Stock: 7}, nil)

	level, err := svc.ApplyDelta(context.Background(), productID, -3)

	require.NoError(t, err)
	assert.Equal(t, 7, level.Stock)
	assert.Equal(t, 1, uow.calls)
	assert.Equal(t, []string{productID}, cache.invalidated)
	repo.AssertExpectations(t)
}

func TestApplyDelta_InsufficientStock(t *testing.T) {
	repo := new(MockStockRepository)
	svc, _, cache := newService(repo)
	productID := uuid.NewString()

	repo.On("ApplyDelta", mock.Anything, mock.Anything, productID, -1).
		Return(domain.StockLevel{}, apperror.NewInsufficientStockError(productID, 0, 1))

	_, err := svc.ApplyDelta(context.Background(), productID, -1)

	require.Error(t, err)
	assert.IsType(t, &apperror.InsufficientStockError{}, err)
	assert.Empty(t, cache.invalidated)
}

func TestApplyDelta_ZeroDeltaRejected(t *testing.T) {
	repo := new(MockStockRepository)
	svc, uow, _ := newService(repo)

	_, err := svc.ApplyDelta(context.Background(), uuid.NewString(), 0)

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Zero(t, uow.calls)
	repo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyDelta_InvalidProductID(t *testing.T) {
	repo := new(MockStockRepository)
	svc, _, _ := newService(repo)

	_, err := svc.ApplyDelta(context.Background(), "nao-e-uuid", 5)

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestApplyOrderLine_FirstApplication(t *testing.T) {
	repo := new(MockStockRepository)
	svc, _, _ := newService(repo)
	orderID, productID := uuid.NewString(), uuid.NewString()

	repo.On("RecordMovement", mock.Anything, mock.Anything, orderID, 0, productID, -3).Return(true, nil)
	repo.On("ApplyDelta", mock.Anything, mock.Anything, productID, -3).Return(domain.StockLevel{ProductID: productID, Stock: 7}, nil)

	level, err := svc.ApplyOrderLine(context.Background(), nil, orderID, 0, productID, -3)

	require.NoError(t, err)
	assert.Equal(t, 7, level.Stock)
	repo.AssertExpectations(t)
}

func TestApplyOrderLine_AlreadyAppliedIsIdempotent(t *testing.T) {
	repo := new(MockStockRepository)
	svc, _, _ := newService(repo)
	orderID, productID := uuid.NewString(), uuid.NewString()

	repo.On("RecordMovement", mock.Anything, mock.Anything, orderID, 0, productID, -3).Return(false, nil)
	repo.On("CurrentStock", mock.Anything, mock.Anything, productID).Return(domain.StockLevel{ProductID: productID, Stock: 7}, nil)

	level, err := svc.ApplyOrderLine(context.Background(), nil, orderID, 0, productID, -3)

	require.NoError(t, err)
	assert.Equal(t, 7, level.Stock)
	repo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
