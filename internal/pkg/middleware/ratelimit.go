package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"gopedidos/internal/pkg/cache"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/respond"
)

// RateLimiter limita requisições por IP numa janela fixa. Falhas do cache deixam a requisição passar.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip

			count, err := client.Incr(r.Context(), key, window)
			if err != nil {
				log.Warn("Rate limiter indisponível; liberando requisição.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				w.Header().Set("X-RateLimit-Remaining", "0")
				respond.JSON(w, log, http.StatusTooManyRequests, map[string]interface{}{
					"code":     http.StatusTooManyRequests,
					"category": "RATE_LIMITED",
					"message":  "Limite de requisições excedido.",
				})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
