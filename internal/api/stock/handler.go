package stock

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/respond"
)

// StockService define o contrato que o Handler espera do livro de estoque.
type StockService interface {
	ApplyDelta(ctx context.Context, productID string, delta int) (domain.StockLevel, error)
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// AdjustStockHandler lida com a requisição POST /v1/products/{id}/stock.
// @Summary Ajuste manual de estoque
// @Description Soma delta (positivo ou negativo) ao estoque. O estoque nunca fica negativo.
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param adjustment body domain.StockAdjustmentRequest true "Delta"
// @Success 200 {object} domain.StockLevel
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "PRODUCT_NOT_FOUND"
// @Failure 422 {object} domain.ErrorResponse "INSUFFICIENT_STOCK"
// @Router /products/{id}/stock [post]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockAdjustmentRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	level, err := h.Service.ApplyDelta(r.Context(), r.PathValue("id"), req.Delta)
	respond.Handle(w, r, h.Logger, level, err, http.StatusOK)
}
