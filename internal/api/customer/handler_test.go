package customer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gopedidos/internal/api/customer"
	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *MockCustomerService) Get(ctx context.Context, id string) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func TestCreateCustomerHandler_AssignsCurrentSalesperson(t *testing.T) {
	svc := new(MockCustomerService)
	h := customer.NewHandler(svc, logger.NewNop())

	svc.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Customer) bool {
		return c.SalespersonID == "u-7" && c.Name == "Lucía"
	})).Return(domain.Customer{ID: "c-1", Name: "Lucía", SalespersonID: "u-7"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(`{"nombre":"Lucía","emails":["l@x.com"]}`))
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{ID: "u-7"}))
	rec := httptest.NewRecorder()
	h.CreateCustomerHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"vendedor":"u-7"`)
	svc.AssertExpectations(t)
}
