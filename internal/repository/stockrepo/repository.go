package stockrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/logger"
)

// StockRepository aplica deltas de estoque. Todos os métodos recebem o Querier para
// participar da transação do chamador (ou rodar em autocommit com *sql.DB).
type StockRepository struct {
	logger logger.Logger
}

// NewStockRepository cria e retorna uma nova instância do Repositório de Estoque.
func NewStockRepository(logger logger.Logger) *StockRepository {
	return &StockRepository{logger: logger}
}

// ApplyDelta soma delta ao estoque numa única instrução atômica. A condição
// stock + delta >= 0 faz parte do UPDATE, então a linha do produto fica bloqueada
// e deltas concorrentes sobre o mesmo produto são serializados pelo PostgreSQL.
// Em caso de rejeição o estoque não é alterado.
func (r *StockRepository) ApplyDelta(ctx context.Context, q database.Querier, productID string, delta int) (domain.StockLevel, error) {
	r.logger.Debug("Aplicando delta de estoque.", map[string]interface{}{"product_id": productID, "delta": delta})

	const updateSQL = `
        UPDATE products
        SET stock = stock + $1, updated_at = now()
        WHERE id = $2 AND stock + $1 >= 0
        RETURNING stock, price`

	adj := domain.StockLevel{ProductID: productID}
	err := q.QueryRowContext(ctx, updateSQL, delta, productID).Scan(&adj.Stock, &adj.Price)
	if err == nil {
		r.logger.Info("Estoque ajustado.", map[string]interface{}{"product_id": productID, "delta": delta, "new_stock": adj.Stock})
		return adj, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.logger.Error("Falha ao aplicar delta de estoque.", err)
		return domain.StockLevel{}, apperror.NewDBError("falha ao atualizar estoque", err)
	}

	// Nenhuma linha: ou o produto não existe, ou o delta deixaria o estoque negativo.
	var current int
	err = q.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StockLevel{}, apperror.NewNotFoundErrorWithCode(apperror.CodeProductNotFound, fmt.Sprintf("Produto com ID %s não existe.", productID))
	}
	if err != nil {
		r.logger.Error("Falha ao consultar estoque atual.", err)
		return domain.StockLevel{}, apperror.NewDBError("falha ao consultar estoque", err)
	}

	r.logger.Warn("Ajuste recusado: estoque ficaria negativo.", map[string]interface{}{"product_id": productID, "current_stock": current, "delta": delta})
	return domain.StockLevel{}, apperror.NewInsufficientStockError(productID, current, -delta)
}

// RecordMovement registra o movimento da linha lineIndex do pedido. Devolve false quando o
// movimento já existia, ou seja, o efeito desta linha já foi aplicado antes.
func (r *StockRepository) RecordMovement(ctx context.Context, q database.Querier, orderID string, lineIndex int, productID string, delta int) (bool, error) {
	const insertSQL = `
        INSERT INTO stock_movements (order_id, line_index, product_id, delta, created_at)
        VALUES ($1, $2, $3, $4, now())
        ON CONFLICT (order_id, line_index) DO NOTHING`

	res, err := q.ExecContext(ctx, insertSQL, orderID, lineIndex, productID, delta)
	if err != nil {
		r.logger.Error("Falha ao registrar movimento de estoque.", err)
		return false, apperror.NewDBError("falha ao registrar movimento de estoque", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.NewDBError("falha ao verificar linhas afetadas", err)
	}
	if n == 0 {
		r.logger.Warn("Movimento de estoque já aplicado; ignorando.", map[string]interface{}{"order_id": orderID, "line_index": lineIndex})
		return false, nil
	}
	return true, nil
}

// CurrentStock lê o estoque e o preço atuais sem alterá-los.
func (r *StockRepository) CurrentStock(ctx context.Context, q database.Querier, productID string) (domain.StockLevel, error) {
	adj := domain.StockLevel{ProductID: productID}
	err := q.QueryRowContext(ctx, `SELECT stock, price FROM products WHERE id = $1`, productID).Scan(&adj.Stock, &adj.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StockLevel{}, apperror.NewNotFoundErrorWithCode(apperror.CodeProductNotFound, fmt.Sprintf("Produto com ID %s não existe.", productID))
	}
	if err != nil {
		return domain.StockLevel{}, apperror.NewDBError("falha ao consultar estoque", err)
	}
	return adj, nil
}
