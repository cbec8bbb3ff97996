package userservice

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/token"
)

// PasswordHasher é o contrato do armazenamento de credenciais (internal/pkg/password).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(login string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*token.Claims, error)
	Revoke(ctx context.Context, claims *token.Claims) error
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo domain.UserRepository
	Hasher   PasswordHasher
	TokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo domain.UserRepository, hasher PasswordHasher, tokenSvc TokenService, logger logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Hasher:   hasher,
		TokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register registra um novo usuário e devolve o status de criação.
// A busca prévia por login evita o hash desnecessário; a unicidade em si é garantida pelo índice do banco.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (string, error) {
	if err := registration.Validate(); err != nil {
		return "", apperror.NewValidationError(err.Error())
	}

	_, err := s.UserRepo.FindByLogin(ctx, registration.Login)
	if err == nil {
		return "", apperror.NewConflictErrorWithCode(apperror.CodeUserAlreadyExists, fmt.Sprintf("O usuário '%s' já existe.", registration.Login))
	}
	if !apperror.HasCode(err, apperror.CodeUserNotFound) {
		return "", err
	}

	hash, err := s.Hasher.Hash(registration.Password)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return "", err
	}

	user := domain.User{
		Login:        registration.Login,
		Name:         registration.Name,
		PasswordHash: hash,
		Role:         registration.Role,
	}
	if _, err := s.UserRepo.Save(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"login": registration.Login, "role": registration.Role})
	return domain.UserCreatedStatus, nil
}

// Authenticate verifica as credenciais e emite um JWT vinculado ao login.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (string, error) {
	req := domain.LoginRequest{Login: login, Password: password}
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Login, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return "", apperror.NewValidationError(err.Error())
	}

	user, err := s.UserRepo.FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	ok, err := s.Hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("Hash de senha ilegível.", err)
		return "", err
	}
	if !ok {
		s.logger.Info("Credenciais inválidas.", map[string]interface{}{"login": login})
		return "", apperror.NewUnauthorizedErrorWithCode(apperror.CodeBadCredentials, "Credenciais inválidas.")
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.Login)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// CurrentUser resolve o usuário do token da requisição. Sem token (ou "null") o resultado é
// anônimo (nil, nil); um token válido cujo usuário não existe mais também resolve para nil.
func (s *UserService) CurrentUser(ctx context.Context, rawToken string) (*domain.User, error) {
	tokenString := bareToken(rawToken)
	if tokenString == "" {
		return nil, nil
	}

	claims, err := s.TokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByLogin(ctx, claims.Login)
	if apperror.HasCode(err, apperror.CodeUserNotFound) {
		s.logger.Warn("Token válido para usuário inexistente.", map[string]interface{}{"login": claims.Login})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword troca a senha após conferir a atual.
func (s *UserService) ChangePassword(ctx context.Context, login string, change domain.PasswordChange) error {
	err := validation.ValidateStruct(&change,
		validation.Field(&change.Current, validation.Required),
		validation.Field(&change.New, validation.Required, validation.Length(6, 72)),
	)
	if err != nil {
		return apperror.NewValidationError(err.Error())
	}

	user, err := s.UserRepo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}
	ok, err := s.Hasher.Verify(change.Current, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewUnauthorizedErrorWithCode(apperror.CodeBadCredentials, "Senha atual incorreta.")
	}

	hash, err := s.Hasher.Hash(change.New)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePasswordHash(ctx, login, hash)
}

// Logout revoga o token apresentado até a sua expiração.
func (s *UserService) Logout(ctx context.Context, rawToken string) error {
	tokenString := bareToken(rawToken)
	if tokenString == "" {
		return apperror.NewUnauthorizedErrorWithCode(apperror.CodeTokenInvalid, "Token ausente.")
	}
	claims, err := s.TokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if err := s.TokenSvc.Revoke(ctx, claims); err != nil {
		return err
	}
	s.logger.Info("Token revogado.", map[string]interface{}{"login": claims.Login, "jti": claims.ID})
	return nil
}

// bareToken remove o prefixo Bearer; "null" conta como ausência de token.
func bareToken(raw string) string {
	t := strings.TrimSpace(raw)
	if len(t) >= 7 && strings.EqualFold(t[:7], "Bearer ") {
		t = strings.TrimSpace(t[7:])
	}
	if t == "null" {
		return ""
	}
	return t
}
