package report

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/respond"
)

// ReportService define os rankings expostos.
type ReportService interface {
	TopCustomers(ctx context.Context) ([]domain.TopCustomer, error)
	TopSalespeople(ctx context.Context) ([]domain.TopSalesperson, error)
}

// Handler agrupa os handlers de relatório.
type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// TopCustomersHandler lida com a requisição GET /v1/reports/top-customers.
// @Summary Top 10 clientes por total de pedidos COMPLETADO
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.TopCustomer
// @Router /reports/top-customers [get]
func (h *Handler) TopCustomersHandler(w http.ResponseWriter, r *http.Request) {
	top, err := h.Service.TopCustomers(r.Context())
	respond.Handle(w, r, h.Logger, top, err, http.StatusOK)
}

// TopSalespeopleHandler lida com a requisição GET /v1/reports/top-salespeople.
// @Summary Top 10 vendedores por total de pedidos COMPLETADO
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.TopSalesperson
// @Router /reports/top-salespeople [get]
func (h *Handler) TopSalespeopleHandler(w http.ResponseWriter, r *http.Request) {
	top, err := h.Service.TopSalespeople(r.Context())
	respond.Handle(w, r, h.Logger, top, err, http.StatusOK)
}
