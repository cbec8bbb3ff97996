package domain

import (
	"context"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// User representa a entidade do usuário no sistema.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"usuario"`
	Name         string    `json:"nombre"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         UserRole  `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMINISTRADOR"
	RoleSalesperson UserRole = "VENDEDOR"
)

// Valid informa se o papel é um dos reconhecidos.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleSalesperson
}

// UserCreatedStatus é a resposta de sucesso de createUser.
const UserCreatedStatus = "Creado Correctamente"

// UserRegistration representa o payload de entrada para o registro.
type UserRegistration struct {
	Login    string   `json:"usuario"`
	Name     string   `json:"nombre"`
	Password string   `json:"password"`
	Role     UserRole `json:"rol"`
}

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Validate aplica as regras de formato do registro.
func (r UserRegistration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required, validation.Length(3, 50), validation.Match(loginPattern)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.Role, validation.Required, validation.In(RoleAdmin, RoleSalesperson)),
	)
}

// LoginRequest é o payload de authenticate.
type LoginRequest struct {
	Login    string `json:"usuario"`
	Password string `json:"password"`
}

// PasswordChange é o payload da troca de senha.
type PasswordChange struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

// UserRepository define o contrato de persistência para a entidade User.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByLogin(ctx context.Context, login string) (User, error)
	UpdatePasswordHash(ctx context.Context, login string, hash string) error
}
