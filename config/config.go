package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do GoPedidos.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr       string
	CacheTimeout    time.Duration
	ProductCacheTTL time.Duration

	// Segurança (JWT + bcrypt)
	JWTSecretKey string
	TokenExpiry  time.Duration
	JWTIssuer    string
	BcryptCost   int

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Eventos (Kafka); vazio desativa a publicação
	KafkaBrokers    string
	KafkaOrderTopic string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// DATABASE_URL e JWT_SECRET_KEY são obrigatórias.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		RedisAddr:       v.GetString("REDIS_ADDR"),
		CacheTimeout:    time.Duration(v.GetInt("CACHE_TIMEOUT_SEC")) * time.Second,
		ProductCacheTTL: time.Duration(v.GetInt("PRODUCT_CACHE_TTL_SEC")) * time.Second,

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),
		TokenExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute,
		JWTIssuer:    v.GetString("JWT_ISSUER"),
		BcryptCost:   v.GetInt("BCRYPT_COST"),

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		KafkaBrokers:    v.GetString("KAFKA_BROKERS"),
		KafkaOrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TIMEOUT_SEC", 2)
	v.SetDefault("PRODUCT_CACHE_TTL_SEC", 300)
	v.SetDefault("JWT_EXPIRY_MIN", 60)
	v.SetDefault("JWT_ISSUER", "GoPedidos-API")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_TOPIC", "pedidos.transiciones")
}

// validate garante que a aplicação não inicie sem credenciais de DB e segredo do JWT.
func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("erro de configuração: a variável de ambiente DATABASE_URL deve ser definida")
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("erro de configuração: a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("erro de configuração: DB_TIMEOUT_SEC deve ser positivo")
	}
	return nil
}
