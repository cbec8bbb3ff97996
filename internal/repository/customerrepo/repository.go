package customerrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
)

// CustomerRepository implementa domain.CustomerRepository sobre PostgreSQL.
type CustomerRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCustomerRepository cria o repositório de clientes.
func NewCustomerRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CustomerRepository {
	return &CustomerRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Save insere um novo cliente.
func (r *CustomerRepository) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now().UTC()

	const insertSQL = `INSERT INTO customers (id, name, surname, company, emails, age, type, salesperson_id, created_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(ctxTimeout, insertSQL,
		c.ID, c.Name, c.Surname, c.Company, pq.Array(c.Emails), c.Age, c.Type, c.SalespersonID, c.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir cliente no DB.", err)
		return domain.Customer{}, apperror.NewDBError("falha ao inserir cliente", err)
	}

	r.logger.Info("Cliente salvo com sucesso.", map[string]interface{}{"customer_id": c.ID})
	return c, nil
}

// FindByID busca um cliente pelo ID.
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name, surname, company, emails, age, type, salesperson_id, created_at
                   FROM customers WHERE id = $1`

	var c domain.Customer
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&c.ID, &c.Name, &c.Surname, &c.Company, pq.Array(&c.Emails), &c.Age, &c.Type, &c.SalespersonID, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, apperror.NewNotFoundErrorWithCode(apperror.CodeCustomerNotFound, fmt.Sprintf("Cliente com ID %s não existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cliente no DB.", err)
		return domain.Customer{}, apperror.NewDBError("falha ao buscar cliente", err)
	}
	return c, nil
}
