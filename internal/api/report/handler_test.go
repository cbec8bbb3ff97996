package report_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gopedidos/internal/api/report"
	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) TopCustomers(ctx context.Context) ([]domain.TopCustomer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TopCustomer), args.Error(1)
}

func (m *MockReportService) TopSalespeople(ctx context.Context) ([]domain.TopSalesperson, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TopSalesperson), args.Error(1)
}

func TestTopCustomersHandler(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, logger.NewNop())

	svc.On("TopCustomers", mock.Anything).Return([]domain.TopCustomer{
		{Total: decimal.RequireFromString("42.5"), Customer: domain.Customer{ID: "c-1", Name: "Maria"}},
	}, nil)

	rec := httptest.NewRecorder()
	h.TopCustomersHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/top-customers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"42.5"`)
	assert.Contains(t, rec.Body.String(), `"nombre":"Maria"`)
}

func TestTopSalespeopleHandler_Empty(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, logger.NewNop())

	svc.On("TopSalespeople", mock.Anything).Return([]domain.TopSalesperson{}, nil)

	rec := httptest.NewRecorder()
	h.TopSalespeopleHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/top-salespeople", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTopSalespeopleHandler_StoreUnavailable(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, logger.NewNop())

	svc.On("TopSalespeople", mock.Anything).
		Return([]domain.TopSalesperson(nil), apperror.NewUnavailableError("banco fora do ar", errors.New("dial tcp")))

	rec := httptest.NewRecorder()
	h.TopSalespeopleHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/top-salespeople", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
}
