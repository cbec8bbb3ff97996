package customer

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
	"gopedidos/internal/pkg/respond"
)

// CustomerService define o contrato esperado pelo Handler de clientes.
type CustomerService interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Get(ctx context.Context, id string) (domain.Customer, error)
}

// Handler agrupa os handlers de cliente.
type Handler struct {
	Service CustomerService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc CustomerService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateCustomerHandler lida com a requisição POST /v1/customers.
// @Summary Cadastra um cliente
// @Description Sem vendedor informado, o cliente é atribuído ao usuário autenticado.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body domain.Customer true "Dados do cliente"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} domain.ErrorResponse
// @Router /customers [post]
func (h *Handler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.Customer
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

// GetCustomerHandler lida com a requisição GET /v1/customers/{id}.
// @Summary Busca um cliente
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do cliente"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} domain.ErrorResponse "CUSTOMER_NOT_FOUND"
// @Router /customers/{id} [get]
func (h *Handler) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Get(r.Context(), r.PathValue("id"))
	respond.Handle(w, r, h.Logger, c, err, http.StatusOK)
}
