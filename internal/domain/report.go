package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// LeaderboardLimit é o tamanho fixo dos rankings.
const LeaderboardLimit = 10

// TopCustomer agrega o total de pedidos COMPLETADO de um cliente.
type TopCustomer struct {
	Total    decimal.Decimal `json:"total"`
	Customer Customer        `json:"cliente"`
}

// TopSalesperson agrega o total de pedidos COMPLETADO de um vendedor.
type TopSalesperson struct {
	Total       decimal.Decimal `json:"total"`
	Salesperson User            `json:"vendedor"`
}

// ReportRepository executa as agregações dos rankings.
type ReportRepository interface {
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
	TopSalespeople(ctx context.Context, limit int) ([]TopSalesperson, error)
}
