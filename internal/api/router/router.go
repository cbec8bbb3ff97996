package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gopedidos/docs" // registra o documento OpenAPI servido em /swagger/
	"gopedidos/internal/api/customer"
	"gopedidos/internal/api/order"
	"gopedidos/internal/api/product"
	"gopedidos/internal/api/report"
	"gopedidos/internal/api/stock"
	"gopedidos/internal/api/user"
	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/cache"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/metrics"
	"gopedidos/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	User     *user.Handler
	Order    *order.Handler
	Product  *product.Handler
	Stock    *stock.Handler
	Customer *customer.Handler
	Report   *report.Handler
}

// Options configura os middlewares globais.
type Options struct {
	Resolver        middleware.UserResolver
	RateLimitCache  cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
	Metrics         *metrics.ServerMetrics
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	log := opts.Logger

	requireUser := middleware.RequireUser(log)
	adminOnly := middleware.PermissionMiddleware(log, domain.RoleAdmin)

	// --- Operação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /metrics", opts.Metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- Usuários e sessão ---
	mux.HandleFunc("POST /v1/users", h.User.RegisterUserHandler)
	mux.HandleFunc("POST /v1/auth/login", h.User.LoginUserHandler)
	mux.HandleFunc("POST /v1/auth/logout", requireUser(h.User.LogoutHandler))
	mux.HandleFunc("GET /v1/users/me", h.User.CurrentUserHandler)
	mux.HandleFunc("PUT /v1/users/me/password", requireUser(h.User.ChangePasswordHandler))

	// --- Pedidos ---
	mux.HandleFunc("POST /v1/orders", requireUser(h.Order.CreateOrderHandler))
	mux.HandleFunc("PUT /v1/orders/{id}", requireUser(h.Order.UpdateOrderHandler))
	mux.HandleFunc("GET /v1/orders/{id}", requireUser(h.Order.GetOrderHandler))
	mux.HandleFunc("GET /v1/customers/{id}/orders", requireUser(h.Order.ListCustomerOrdersHandler))

	// --- Produtos e estoque ---
	mux.HandleFunc("POST /v1/products", adminOnly(h.Product.CreateProductHandler))
	mux.HandleFunc("GET /v1/products/{id}", h.Product.GetProductByIDHandler)
	mux.HandleFunc("POST /v1/products/{id}/stock", adminOnly(h.Stock.AdjustStockHandler))

	// --- Clientes ---
	mux.HandleFunc("POST /v1/customers", requireUser(h.Customer.CreateCustomerHandler))
	mux.HandleFunc("GET /v1/customers/{id}", requireUser(h.Customer.GetCustomerHandler))

	// --- Relatórios ---
	mux.HandleFunc("GET /v1/reports/top-customers", requireUser(h.Report.TopCustomersHandler))
	mux.HandleFunc("GET /v1/reports/top-salespeople", requireUser(h.Report.TopSalespeopleHandler))

	// As métricas ficam junto do mux para enxergar o padrão de rota casado.
	var handler http.Handler = opts.Metrics.Middleware(mux)
	handler = middleware.NewAuthMiddleware(opts.Resolver, log)(handler)
	handler = middleware.RateLimiter(opts.RateLimitCache, opts.RateLimitMax, opts.RateLimitPeriod, log)(handler)
	return handler
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
