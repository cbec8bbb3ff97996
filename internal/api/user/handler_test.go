package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gopedidos/internal/api/user"
	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/middleware"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, reg domain.UserRegistration) (string, error) {
	args := m.Called(ctx, reg)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, login, password string) (string, error) {
	args := m.Called(ctx, login, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, login string, change domain.PasswordChange) error {
	return m.Called(ctx, login, change).Error(0)
}

func (m *MockUserService) Logout(ctx context.Context, raw string) error {
	return m.Called(ctx, raw).Error(0)
}

func TestRegisterUserHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	reg := domain.UserRegistration{Login: "ana", Name: "Ana", Password: "segredo123", Role: domain.RoleSalesperson}
	svc.On("Register", mock.Anything, reg).Return(domain.UserCreatedStatus, nil)

	body := `{"usuario":"ana","nombre":"Ana","password":"segredo123","rol":"VENDEDOR"}`
	rec := httptest.NewRecorder()
	h.RegisterUserHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"Creado Correctamente"}`, rec.Body.String())
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	svc.On("Register", mock.Anything, mock.Anything).
		Return("", apperror.NewConflictErrorWithCode(apperror.CodeUserAlreadyExists, "existe"))

	body := `{"usuario":"ana","nombre":"Ana","password":"segredo123","rol":"VENDEDOR"}`
	rec := httptest.NewRecorder()
	h.RegisterUserHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestLoginUserHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	svc.On("Authenticate", mock.Anything, "ana", "segredo123").Return("tok", nil)
	svc.On("Authenticate", mock.Anything, "ana", "errada").
		Return("", apperror.NewUnauthorizedErrorWithCode(apperror.CodeBadCredentials, "Credenciais inválidas."))

	rec := httptest.NewRecorder()
	h.LoginUserHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"usuario":"ana","password":"segredo123"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.LoginUserHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"usuario":"ana","password":"errada"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.LoginUserHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentUserHandler(t *testing.T) {
	h := user.NewHandler(new(MockUserService), logger.NewNop())

	rec := httptest.NewRecorder()
	h.CurrentUserHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/users/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{Login: "ana", PasswordHash: "hash"}))
	rec = httptest.NewRecorder()
	h.CurrentUserHandler(rec, req)
	assert.Contains(t, rec.Body.String(), `"usuario":"ana"`)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestChangePasswordHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	change := domain.PasswordChange{Current: "segredo123", New: "novasenha1"}
	svc.On("ChangePassword", mock.Anything, "ana", change).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/users/me/password", strings.NewReader(`{"current_password":"segredo123","new_password":"novasenha1"}`))
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{Login: "ana"}))
	rec := httptest.NewRecorder()
	h.ChangePasswordHandler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestLogoutHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNop())

	svc.On("Logout", mock.Anything, "Bearer tok").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RawTokenKey, "Bearer tok"))
	rec := httptest.NewRecorder()
	h.LogoutHandler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
