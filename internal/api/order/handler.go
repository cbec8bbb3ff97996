package order

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
	"gopedidos/internal/pkg/respond"
)

// OrderService define o contrato que o Handler espera do ciclo de vida de pedidos.
type OrderService interface {
	Create(ctx context.Context, input domain.NewOrder) (domain.Order, error)
	Transition(ctx context.Context, id string, update domain.OrderUpdate) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}

// Handler agrupa os handlers de pedido.
type Handler struct {
	Service OrderService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc OrderService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateOrderHandler lida com a requisição POST /v1/orders.
// @Summary Cria um pedido PENDIENTE
// @Description Sem vendedor informado, o pedido é atribuído ao usuário autenticado. Total zero é calculado pelos preços atuais.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body domain.NewOrder true "Linhas, cliente e vendedor"
// @Success 201 {object} domain.Order
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "PRODUCT_NOT_FOUND"
// @Router /orders [post]
func (h *Handler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.NewOrder
	if err := respond.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if input.SalespersonID == "" {
		if user, ok := middleware.UserFromContext(r.Context()); ok {
			input.SalespersonID = user.ID
		}
	}

	created, err := h.Service.Create(r.Context(), input)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// UpdateOrderHandler lida com a requisição PUT /v1/orders/{id}.
// @Summary Finaliza um pedido
// @Description Leva o pedido a COMPLETADO (consome estoque) ou CANCELADO (devolve estoque) numa única transação.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do pedido"
// @Param update body domain.OrderUpdate true "Novo estado e, opcionalmente, novas linhas"
// @Success 200 {object} domain.Order
// @Failure 400 {object} domain.ErrorResponse "INVALID_TRANSITION"
// @Failure 404 {object} domain.ErrorResponse "ORDER_NOT_FOUND ou PRODUCT_NOT_FOUND"
// @Failure 409 {object} domain.ErrorResponse "ALREADY_FINALIZED"
// @Failure 422 {object} domain.ErrorResponse "INSUFFICIENT_STOCK"
// @Failure 503 {object} domain.ErrorResponse "STORE_UNAVAILABLE"
// @Router /orders/{id} [put]
func (h *Handler) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var update domain.OrderUpdate
	if err := respond.DecodeJSON(r, &update); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Transition(r.Context(), r.PathValue("id"), update)
	respond.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// GetOrderHandler lida com a requisição GET /v1/orders/{id}.
// @Summary Busca um pedido
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do pedido"
// @Success 200 {object} domain.Order
// @Failure 404 {object} domain.ErrorResponse "ORDER_NOT_FOUND"
// @Router /orders/{id} [get]
func (h *Handler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Get(r.Context(), r.PathValue("id"))
	respond.Handle(w, r, h.Logger, order, err, http.StatusOK)
}

// ListCustomerOrdersHandler lida com a requisição GET /v1/customers/{id}/orders.
// @Summary Lista os pedidos de um cliente
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do cliente"
// @Success 200 {array} domain.Order
// @Router /customers/{id}/orders [get]
func (h *Handler) ListCustomerOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListByCustomer(r.Context(), r.PathValue("id"))
	respond.Handle(w, r, h.Logger, orders, err, http.StatusOK)
}
