package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperror "gopedidos/internal/errors"
)

// Claims é a identidade codificada no token. Só o login é carregado:
// o papel do usuário é sempre relido do repositório.
type Claims struct {
	Login string `json:"usuario"`
	jwt.RegisteredClaims
}

// Issue assina claims com HS256 e expiração ttl a partir de agora.
func Issue(claims Claims, secret string, ttl time.Duration) (string, error) {
	return issueAt(claims, secret, ttl, time.Now())
}

// Verify valida assinatura, estrutura e expiração, e devolve as claims decodificadas.
func Verify(tokenString, secret string) (*Claims, error) {
	return verifyAt(tokenString, secret, time.Now)
}

func issueAt(claims Claims, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", apperror.NewInternalErrorWithCode(apperror.CodeSigningFailed, "Segredo de assinatura ausente.", nil)
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
	if claims.Subject == "" {
		claims.Subject = claims.Login
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", apperror.NewInternalErrorWithCode(apperror.CodeSigningFailed, "Falha ao assinar o token.", err)
	}
	return tokenString, nil
}

func verifyAt(tokenString, secret string, now func() time.Time) (*Claims, error) {
	if secret == "" {
		return nil, apperror.NewInternalErrorWithCode(apperror.CodeSigningFailed, "Segredo de assinatura ausente.", nil)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewUnauthorizedErrorWithCode(apperror.CodeTokenExpired, "Token expirado.")
		}
		return nil, apperror.NewUnauthorizedErrorWithCode(apperror.CodeTokenInvalid, "Token inválido.")
	}
	if !token.Valid || claims.Login == "" {
		return nil, apperror.NewUnauthorizedErrorWithCode(apperror.CodeTokenInvalid, "Token inválido.")
	}
	return claims, nil
}

// Service vincula segredo, validade e emissor, como usado pelos serviços e middlewares.
type Service struct {
	secretKey string
	expiry    time.Duration
	issuer    string
	denylist  *Denylist
	now       func() time.Time
}

// Option ajusta o Service.
type Option func(*Service)

// WithDenylist ativa a revogação de tokens.
func WithDenylist(d *Denylist) Option {
	return func(s *Service) { s.denylist = d }
}

// WithIssuer define o campo iss.
func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// WithClock substitui o relógio (testes).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey: secretKey,
		expiry:    expiry,
		issuer:    "GoPedidos-API",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken cria um novo JWT assinado para o login.
func (s *Service) GenerateToken(login string) (string, error) {
	claims := Claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: s.issuer,
		},
	}
	return issueAt(claims, s.secretKey, s.expiry, s.now())
}

// ValidateToken valida o token e, se houver denylist, recusa tokens revogados.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := verifyAt(tokenString, s.secretKey, s.now)
	if err != nil {
		return nil, err
	}
	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, apperror.NewUnauthorizedErrorWithCode(apperror.CodeTokenInvalid, "Token revogado.")
		}
	}
	return claims, nil
}

// Revoke coloca o token na denylist até sua expiração. Sem denylist é um no-op.
func (s *Service) Revoke(ctx context.Context, claims *Claims) error {
	if s.denylist == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, claims, s.now())
}
