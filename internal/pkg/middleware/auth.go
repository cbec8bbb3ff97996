package middleware

import (
	"context"
	"net/http"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/respond"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	UserKey ContextKey = iota
	RawTokenKey
	AuthErrorKey
)

// UserResolver resolve o usuário a partir do valor cru do header Authorization.
type UserResolver interface {
	CurrentUser(ctx context.Context, rawToken string) (*domain.User, error)
}

// NewAuthMiddleware resolve o usuário atual e o anexa ao contexto. Sem token (ou "null")
// a requisição segue anônima. Um token que não resolve também segue anônimo: o erro fica
// no contexto e só é devolvido pelas rotas que exigem usuário.
func NewAuthMiddleware(resolver UserResolver, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			ctx := context.WithValue(r.Context(), RawTokenKey, raw)

			user, err := resolver.CurrentUser(r.Context(), raw)
			if err != nil {
				log.Info("Token não resolvido; seguindo como anônimo.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				ctx = context.WithValue(ctx, AuthErrorKey, err)
			} else if user != nil {
				ctx = WithUser(ctx, user)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthErrorFromContext devolve o erro de resolução do token da requisição, se houve.
func AuthErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(AuthErrorKey).(error)
	return err
}

// unauthenticated responde 401, preferindo o erro do token (TOKEN_EXPIRED, TOKEN_INVALID).
func unauthenticated(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	if err := AuthErrorFromContext(r.Context()); err != nil {
		respond.Error(w, r, log, err)
		return
	}
	respond.Error(w, r, log, apperror.NewUnauthorizedError("Autenticação necessária."))
}

// WithUser anexa o usuário ao contexto.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// UserFromContext devolve o usuário autenticado, se houver.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

// RawTokenFromContext devolve o header Authorization original.
func RawTokenFromContext(ctx context.Context) string {
	raw, _ := ctx.Value(RawTokenKey).(string)
	return raw
}

// RequireUser recusa requisições anônimas.
func RequireUser(log logger.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				unauthenticated(w, r, log)
				return
			}
			next(w, r)
		}
	}
}

// PermissionMiddleware exige um usuário autenticado com um dos papéis informados.
func PermissionMiddleware(log logger.Logger, requiredRoles ...domain.UserRole) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthenticated(w, r, log)
				return
			}

			for _, role := range requiredRoles {
				if user.Role == role {
					next(w, r)
					return
				}
			}

			log.Info("Acesso negado por papel.", map[string]interface{}{"login": user.Login, "role": user.Role, "path": r.URL.Path})
			respond.Error(w, r, log, apperror.NewForbiddenError("Você não tem a permissão necessária."))
		}
	}
}
