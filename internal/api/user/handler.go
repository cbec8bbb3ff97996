package user

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
	"gopedidos/internal/pkg/respond"
)

// UserService define o contrato para as operações de registro e sessão.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ChangePassword(ctx context.Context, login string, change domain.PasswordChange) error
	Logout(ctx context.Context, rawToken string) error
}

// StatusResponse é a resposta de createUser.
type StatusResponse struct {
	Status string `json:"status" example:"Creado Correctamente"`
}

// TokenResponse é a resposta de authenticate.
type TokenResponse struct {
	Token string `json:"token"`
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterUserHandler lida com a requisição POST /v1/users.
// @Summary Registra um novo usuário
// @Description Cria um usuário com senha em hash bcrypt. O login é único.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Dados do usuário"
// @Success 201 {object} StatusResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "USER_ALREADY_EXISTS"
// @Failure 503 {object} domain.ErrorResponse "STORE_UNAVAILABLE"
// @Router /users [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.UserRegistration
	if err := respond.DecodeJSON(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	status, err := h.Service.Register(r.Context(), reg)
	respond.Handle(w, r, h.Logger, StatusResponse{Status: status}, err, http.StatusCreated)
}

// LoginUserHandler lida com a requisição POST /v1/auth/login.
// @Summary Autentica um usuário e retorna um JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Credenciais"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "BAD_CREDENTIALS"
// @Failure 404 {object} domain.ErrorResponse "USER_NOT_FOUND"
// @Router /auth/login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	token, err := h.Service.Authenticate(r.Context(), req.Login, req.Password)
	respond.Handle(w, r, h.Logger, TokenResponse{Token: token}, err, http.StatusOK)
}

// CurrentUserHandler lida com a requisição GET /v1/users/me.
// @Summary Usuário atual
// @Description Devolve o usuário do token ou null para requisições anônimas.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} domain.ErrorResponse "TOKEN_EXPIRED ou TOKEN_INVALID"
// @Router /users/me [get]
func (h *Handler) CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := middleware.AuthErrorFromContext(r.Context()); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	user, _ := middleware.UserFromContext(r.Context())
	respond.JSON(w, h.Logger, http.StatusOK, user)
}

// ChangePasswordHandler lida com a requisição PUT /v1/users/me/password.
// @Summary Troca a senha do usuário atual
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param change body domain.PasswordChange true "Senha atual e nova"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me/password [put]
func (h *Handler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var change domain.PasswordChange
	if err := respond.DecodeJSON(r, &change); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err := h.Service.ChangePassword(r.Context(), user.Login, change)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// LogoutHandler lida com a requisição POST /v1/auth/logout.
// @Summary Revoga o token atual
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Logout(r.Context(), middleware.RawTokenFromContext(r.Context()))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
