package reportrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
)

// ReportRepository executa os rankings sobre pedidos COMPLETADO.
type ReportRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewReportRepository cria o repositório de relatórios.
func NewReportRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ReportRepository {
	return &ReportRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// TopCustomers agrupa os pedidos completados por cliente, soma o total e ordena desc.
func (r *ReportRepository) TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT SUM(o.total) AS total,
               c.id, c.name, c.surname, c.company, c.emails, c.age, c.type, c.salesperson_id, c.created_at
        FROM orders o
        JOIN customers c ON c.id = o.customer_id
        WHERE o.state = $1
        GROUP BY c.id
        ORDER BY total DESC
        LIMIT $2`

	rows, err := r.DB.QueryContext(ctxTimeout, query, domain.OrderCompleted, limit)
	if err != nil {
		r.logger.Error("Falha ao calcular ranking de clientes.", err)
		return nil, apperror.NewDBError("falha ao calcular ranking de clientes", err)
	}
	defer rows.Close()

	result := []domain.TopCustomer{}
	for rows.Next() {
		var tc domain.TopCustomer
		c := &tc.Customer
		if err := rows.Scan(&tc.Total, &c.ID, &c.Name, &c.Surname, &c.Company, pq.Array(&c.Emails), &c.Age, &c.Type, &c.SalespersonID, &c.CreatedAt); err != nil {
			return nil, apperror.NewDBError("falha ao ler ranking de clientes", err)
		}
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar ranking de clientes", err)
	}
	return result, nil
}

// TopSalespeople agrupa os pedidos completados por vendedor.
func (r *ReportRepository) TopSalespeople(ctx context.Context, limit int) ([]domain.TopSalesperson, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT SUM(o.total) AS total,
               u.id, u.login, u.name, u.role, u.created_at, u.updated_at
        FROM orders o
        JOIN users u ON u.id = o.salesperson_id
        WHERE o.state = $1
        GROUP BY u.id
        ORDER BY total DESC
        LIMIT $2`

	rows, err := r.DB.QueryContext(ctxTimeout, query, domain.OrderCompleted, limit)
	if err != nil {
		r.logger.Error("Falha ao calcular ranking de vendedores.", err)
		return nil, apperror.NewDBError("falha ao calcular ranking de vendedores", err)
	}
	defer rows.Close()

	result := []domain.TopSalesperson{}
	for rows.Next() {
		var ts domain.TopSalesperson
		u := &ts.Salesperson
		if err := rows.Scan(&ts.Total, &u.ID, &u.Login, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, apperror.NewDBError("falha ao ler ranking de vendedores", err)
		}
		result = append(result, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar ranking de vendedores", err)
	}
	return result, nil
}
