package token

import (
	"context"
	"fmt"
	"time"

	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/cache"
)

const denylistKey = "token:revoked:%s"

// Denylist guarda os jti de tokens revogados até a expiração de cada um.
type Denylist struct {
	cache cache.Client
}

// NewDenylist cria a denylist sobre o cliente de cache.
func NewDenylist(c cache.Client) *Denylist {
	return &Denylist{cache: c}
}

// Revoke marca o token; a entrada expira junto com o próprio token.
func (d *Denylist) Revoke(ctx context.Context, claims *Claims, now time.Time) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return apperror.NewValidationError("Token sem jti ou expiração não pode ser revogado.")
	}
	ttl := claims.ExpiresAt.Time.Sub(now)
	if ttl <= 0 {
		return nil
	}
	if err := d.cache.Set(ctx, fmt.Sprintf(denylistKey, claims.ID), "1", ttl); err != nil {
		return apperror.NewUnavailableError("falha ao registrar revogação do token", err)
	}
	return nil
}

// IsRevoked consulta a denylist.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := d.cache.Get(ctx, fmt.Sprintf(denylistKey, jti))
	if err == cache.ErrCacheMiss {
		return false, nil
	}
	if err != nil {
		return false, apperror.NewUnavailableError("falha ao consultar revogação do token", err)
	}
	return true, nil
}
