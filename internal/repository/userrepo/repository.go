package userrepo

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

// uniqueViolation é o SQLSTATE do PostgreSQL para violação de índice único.
const uniqueViolation = "23505"

// UserRepository implementa a interface domain.UserRepository
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Save insere um novo usuário. O índice único em users.login é a fonte da verdade
// para unicidade: uma violação vira ConflictError USER_ALREADY_EXISTS.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"login": user.Login})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	const insertSQL = `INSERT INTO users (id, login, name, password_hash, role, created_at, updated_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctxTimeout, insertSQL,
		user.ID,
		user.Login,
		user.Name,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.logger.Info("Login já existente (violação de unicidade).", map[string]interface{}{"login": user.Login})
			return domain.User{}, apperror.NewConflictErrorWithCode(apperror.CodeUserAlreadyExists, fmt.Sprintf("O usuário '%s' já existe.", user.Login))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("falha ao inserir usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "login": user.Login})
	return user, nil
}

// FindByLogin busca um usuário pelo login.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, login, name, password_hash, role, created_at, updated_at FROM users WHERE login = $1`

	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, login).Scan(
		&user.ID,
		&user.Login,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug("Usuário não encontrado no DB por login.", map[string]interface{}{"login": login})
			return domain.User{}, apperror.NewNotFoundErrorWithCode(apperror.CodeUserNotFound, fmt.Sprintf("Usuário '%s' não encontrado.", login))
		}
		r.logger.Error("Falha ao buscar usuário por login no DB.", err)
		return domain.User{}, apperror.NewDBError("falha ao buscar usuário por login", err)
	}

	return user, nil
}

// UpdatePasswordHash troca o hash armazenado. É o único caminho que altera a senha.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, login string, hash string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE login = $3`

	res, err := r.DB.ExecContext(ctxTimeout, query, hash, time.Now().UTC(), login)
	if err != nil {
		r.logger.Error("Falha ao atualizar senha no DB.", err)
		return apperror.NewDBError("falha ao atualizar senha", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("falha ao verificar linhas afetadas", err)
	}
	if n == 0 {
		return apperror.NewNotFoundErrorWithCode(apperror.CodeUserNotFound, fmt.Sprintf("Usuário '%s' não encontrado.", login))
	}

	r.logger.Info("Senha do usuário atualizada.", map[string]interface{}{"login": login})
	return nil
}
