package database

import (
	"context"
	"database/sql"
	"time"

	apperror "gopedidos/internal/errors"
)

// Querier é o subconjunto comum de *sql.DB e *sql.Tx usado pelos repositórios.
// Permite que o mesmo repositório rode dentro ou fora de uma transação.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL com timeout.
type TxRunner struct {
	DB      *sql.DB
	Timeout time.Duration
}

// NewTxRunner constrói o runner com o pool e o timeout por unidade de trabalho.
func NewTxRunner(db *sql.DB, timeout time.Duration) *TxRunner {
	return &TxRunner{DB: db, Timeout: timeout}
}

// RunInTx inicia uma transação, executa fn e faz Commit; qualquer erro de fn provoca Rollback
// e é devolvido sem alteração.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return apperror.NewDBError("falha ao iniciar transação", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctxTimeout, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperror.NewDBError("falha ao commitar transação", err)
	}
	return nil
}
