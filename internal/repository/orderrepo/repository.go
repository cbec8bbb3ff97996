package orderrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/logger"
)

// foreignKeyViolation é o SQLSTATE para referência a cliente/vendedor inexistente.
const foreignKeyViolation = "23503"

const orderColumns = `id, items, total, created_at, customer_id, salesperson_id, state, stock_applied_at`

// OrderRepository persiste pedidos. As linhas ficam num documento JSONB.
type OrderRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewOrderRepository cria o repositório de pedidos.
func NewOrderRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *OrderRepository {
	return &OrderRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Save insere um novo pedido.
func (r *OrderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return domain.Order{}, apperror.NewInternalError("falha ao serializar linhas do pedido", err)
	}

	const insertSQL = `INSERT INTO orders (` + orderColumns + `)
                       VALUES ($1, $2::jsonb, $3, $4, $5, $6, $7, $8)`

	_, err = r.DB.ExecContext(ctxTimeout, insertSQL,
		order.ID,
		string(items),
		order.Total,
		order.CreatedAt,
		order.CustomerID,
		order.SalespersonID,
		order.State,
		order.StockAppliedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.Order{}, apperror.NewValidationError("Cliente ou vendedor do pedido não existe.")
		}
		r.logger.Error("Falha ao inserir pedido no DB.", err)
		return domain.Order{}, apperror.NewDBError("falha ao inserir pedido", err)
	}

	r.logger.Info("Pedido salvo com sucesso.", map[string]interface{}{"order_id": order.ID, "lines": len(order.Items)})
	return order, nil
}

// FindByID busca um pedido fora de transação.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return r.scanOne(row, id)
}

// LockByID lê o pedido com SELECT ... FOR UPDATE dentro da transação q. Transições
// concorrentes do mesmo pedido esperam aqui até a primeira terminar.
func (r *OrderRepository) LockByID(ctx context.Context, q database.Querier, id string) (domain.Order, error) {
	row := q.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
	return r.scanOne(row, id)
}

// UpdateIfPending grava estado, linhas, total e stock_applied_at somente se o pedido ainda
// estiver PENDIENTE (compare-and-swap). Devolve false se outro chamador já o finalizou.
func (r *OrderRepository) UpdateIfPending(ctx context.Context, q database.Querier, order domain.Order) (bool, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return false, apperror.NewInternalError("falha ao serializar linhas do pedido", err)
	}

	const updateSQL = `
        UPDATE orders
        SET state = $1, items = $2::jsonb, total = $3, stock_applied_at = $4
        WHERE id = $5 AND state = $6`

	res, err := q.ExecContext(ctx, updateSQL,
		order.State,
		string(items),
		order.Total,
		order.StockAppliedAt,
		order.ID,
		domain.OrderPending,
	)
	if err != nil {
		r.logger.Error("Falha ao atualizar pedido.", err)
		return false, apperror.NewDBError("falha ao atualizar pedido", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.NewDBError("falha ao verificar linhas afetadas", err)
	}
	return n == 1, nil
}

// FindByCustomer lista os pedidos de um cliente, mais recentes primeiro.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		r.logger.Error("Falha ao listar pedidos do cliente.", err)
		return nil, apperror.NewDBError("falha ao listar pedidos", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler pedido", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar pedidos", err)
	}
	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *OrderRepository) scanOne(row scanner, id string) (domain.Order, error) {
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, apperror.NewNotFoundErrorWithCode(apperror.CodeOrderNotFound, fmt.Sprintf("Pedido com ID %s não existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar pedido.", err)
		return domain.Order{}, apperror.NewDBError("falha ao buscar pedido", err)
	}
	return order, nil
}

func scanOrder(row scanner) (domain.Order, error) {
	var (
		order     domain.Order
		items     []byte
		appliedAt sql.NullTime
	)
	err := row.Scan(
		&order.ID,
		&items,
		&order.Total,
		&order.CreatedAt,
		&order.CustomerID,
		&order.SalespersonID,
		&order.State,
		&appliedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return domain.Order{}, fmt.Errorf("linhas do pedido %s ilegíveis: %w", order.ID, err)
	}
	if appliedAt.Valid {
		t := appliedAt.Time
		order.StockAppliedAt = &t
	}
	return order, nil
}
