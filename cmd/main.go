package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"gopedidos/config"
	"gopedidos/internal/pkg/cache"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/events"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/metrics"
	"gopedidos/internal/pkg/password"
	"gopedidos/internal/pkg/token"

	// Camadas para injeção de dependências
	"gopedidos/internal/api/customer"
	"gopedidos/internal/api/order"
	"gopedidos/internal/api/product"
	"gopedidos/internal/api/report"
	"gopedidos/internal/api/router"
	"gopedidos/internal/api/stock"
	"gopedidos/internal/api/user"
	"gopedidos/internal/repository/customerrepo"
	"gopedidos/internal/repository/orderrepo"
	"gopedidos/internal/repository/productrepo"
	"gopedidos/internal/repository/reportrepo"
	"gopedidos/internal/repository/stockrepo"
	"gopedidos/internal/repository/userrepo"
	"gopedidos/internal/service/customerservice"
	"gopedidos/internal/service/orderservice"
	"gopedidos/internal/service/productservice"
	"gopedidos/internal/service/reportservice"
	"gopedidos/internal/service/stockservice"
	"gopedidos/internal/service/userservice"
)

func main() {
	// 0. Variáveis de ambiente (.env é opcional: no Docker vêm do ambiente)
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Usando apenas variáveis do ambiente.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("configuração inválida: %v", err)
	}

	var log logger.Logger
	if cfg.Environment == "development" {
		log = logger.NewDevelopmentLogger(cfg.LogLevel)
	} else {
		log = logger.NewLogger(cfg.LogLevel)
	}
	log.Info("Inicializando serviço GoPedidos.", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// 1. Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis o serviço sobe com cache em memória.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível; usando cache em memória.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		_ = redisClient.Close()
		cacheClient = cache.NewMemoryClient()
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", nil)
	}

	cacheClient = cache.WithTimeout(cacheClient, cfg.CacheTimeout)

	// C. Eventos (Kafka) e métricas
	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Falha ao fechar publicador de eventos.", err)
		}
	}()
	serverMetrics := metrics.NewServerMetrics()

	// 2. Injeção de dependências: Repository -> Service -> Handler
	txRunner := database.NewTxRunner(db, cfg.DBTimeout)

	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.ProductCacheTTL, log)
	stockRepo := stockrepo.NewStockRepository(log)
	orderRepo := orderrepo.NewOrderRepository(db, cfg.DBTimeout, log)
	customerRepo := customerrepo.NewCustomerRepository(db, cfg.DBTimeout, log)
	reportRepo := reportrepo.NewReportRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry,
		token.WithDenylist(token.NewDenylist(cacheClient)),
		token.WithIssuer(cfg.JWTIssuer),
	)
	hasher := password.NewHasher(cfg.BcryptCost)

	userSvc := userservice.NewService(userRepo, hasher, tokenSvc, log)
	productSvc := productservice.NewService(productRepo, log)
	stockSvc := stockservice.NewService(stockRepo, txRunner, productRepo, log)
	orderSvc := orderservice.NewService(orderRepo, stockSvc, productRepo, txRunner, publisher, serverMetrics, log)
	customerSvc := customerservice.NewService(customerRepo, log)
	reportSvc := reportservice.NewService(reportRepo, log)
	log.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		User:     user.NewHandler(userSvc, log),
		Order:    order.NewHandler(orderSvc, log),
		Product:  product.NewHandler(productSvc, log),
		Stock:    stock.NewHandler(stockSvc, log),
		Customer: customer.NewHandler(customerSvc, log),
		Report:   report.NewHandler(reportSvc, log),
	}

	// 3. Roteador e servidor
	r := router.NewRouter(handlers, router.Options{
		Resolver:        userSvc,
		RateLimitCache:  cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Metrics:         serverMetrics,
		Logger:          log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Servidor GoPedidos ouvindo na porta.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
