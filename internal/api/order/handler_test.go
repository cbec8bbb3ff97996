package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopedidos/internal/api/order"
	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, input domain.NewOrder) (domain.Order, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) Transition(ctx context.Context, id string, update domain.OrderUpdate) (domain.Order, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func newMux(h *order.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/orders", h.CreateOrderHandler)
	mux.HandleFunc("PUT /v1/orders/{id}", h.UpdateOrderHandler)
	mux.HandleFunc("GET /v1/orders/{id}", h.GetOrderHandler)
	return mux
}

func TestCreateOrderHandler_DefaultsSalespersonToCurrentUser(t *testing.T) {
	svc := new(MockOrderService)
	mux := newMux(order.NewHandler(svc, logger.NewNop()))

	svc.On("Create", mock.Anything, mock.MatchedBy(func(in domain.NewOrder) bool {
		return in.SalespersonID == "u-1" && in.CustomerID == "c-1" && len(in.Items) == 1 && in.Items[0].Quantity == 3
	})).Return(domain.Order{ID: "o-1", State: domain.OrderPending}, nil)

	body := `{"pedido":[{"id":"p-1","cantidad":3}],"cliente":"c-1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{ID: "u-1", Login: "ana"}))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "o-1", got.ID)
	assert.Equal(t, domain.OrderPending, got.State)
	svc.AssertExpectations(t)
}

func TestUpdateOrderHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"finalizado", apperror.NewConflictErrorWithCode(apperror.CodeAlreadyFinalized, "x"), http.StatusConflict, "ALREADY_FINALIZED"},
		{"estoque", apperror.NewInsufficientStockError("p", 0, 1), http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{"transição", apperror.NewInvalidTransitionError("x"), http.StatusBadRequest, "INVALID_TRANSITION"},
		{"produto", apperror.NewNotFoundErrorWithCode(apperror.CodeProductNotFound, "x"), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockOrderService)
			mux := newMux(order.NewHandler(svc, logger.NewNop()))
			svc.On("Transition", mock.Anything, "o-1", domain.OrderUpdate{State: domain.OrderCompleted}).
				Return(domain.Order{}, tc.err)

			req := httptest.NewRequest(http.MethodPut, "/v1/orders/o-1", strings.NewReader(`{"estado":"COMPLETADO"}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}

func TestGetOrderHandler(t *testing.T) {
	svc := new(MockOrderService)
	mux := newMux(order.NewHandler(svc, logger.NewNop()))
	svc.On("Get", mock.Anything, "o-9").Return(domain.Order{ID: "o-9", State: domain.OrderCancelled}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders/o-9", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estado":"CANCELADO"`)
}
