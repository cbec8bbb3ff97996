package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderTransitioned é publicado depois que uma transição de pedido foi confirmada.
type OrderTransitioned struct {
	OrderID       string          `json:"order_id"`
	From          OrderState      `json:"from"`
	To            OrderState      `json:"to"`
	CustomerID    string          `json:"cliente"`
	SalespersonID string          `json:"vendedor"`
	Total         decimal.Decimal `json:"total"`
	Lines         int             `json:"lines"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
