package domain

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// OrderState é o estado do ciclo de vida de um pedido.
type OrderState string

const (
	OrderPending   OrderState = "PENDIENTE"
	OrderCompleted OrderState = "COMPLETADO"
	OrderCancelled OrderState = "CANCELADO"
)

// Terminal informa se nenhuma transição é permitida a partir do estado.
func (s OrderState) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// StockSign devolve o sinal do ajuste de estoque da transição para este estado:
// -1 consome (COMPLETADO), +1 devolve (CANCELADO), 0 se o estado não é destino válido.
func (s OrderState) StockSign() int {
	switch s {
	case OrderCompleted:
		return -1
	case OrderCancelled:
		return 1
	default:
		return 0
	}
}

// LineItem é uma linha do pedido: referência ao produto e quantidade.
type LineItem struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}

// Validate verifica produto e quantidade da linha.
func (l LineItem) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ProductID, validation.Required, validation.By(isUUID)),
		validation.Field(&l.Quantity, validation.Required, validation.Min(1)),
	)
}

// ValidateLineItems exige ao menos uma linha e valida cada uma.
func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errors.New("pedido: o pedido deve ter ao menos uma linha")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("pedido[%d]: %w", i, err)
		}
	}
	return nil
}

// Order representa um pedido. É dono exclusivo de suas linhas.
type Order struct {
	ID             string          `json:"id"`
	Items          []LineItem      `json:"pedido"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"fecha"`
	CustomerID     string          `json:"cliente"`
	SalespersonID  string          `json:"vendedor"`
	State          OrderState      `json:"estado"`
	StockAppliedAt *time.Time      `json:"-"`
}

// NewOrder é o payload de createOrder.
type NewOrder struct {
	Items         []LineItem      `json:"pedido"`
	Total         decimal.Decimal `json:"total"`
	CustomerID    string          `json:"cliente"`
	SalespersonID string          `json:"vendedor"`
}

// Validate verifica linhas, referências e total do novo pedido.
func (o NewOrder) Validate() error {
	if err := ValidateLineItems(o.Items); err != nil {
		return err
	}
	if o.Total.IsNegative() {
		return errors.New("total: não pode ser negativo")
	}
	return validation.ValidateStruct(&o,
		validation.Field(&o.CustomerID, validation.Required, validation.By(isUUID)),
		validation.Field(&o.SalespersonID, validation.Required, validation.By(isUUID)),
	)
}

// OrderUpdate é o payload de updateOrder.
type OrderUpdate struct {
	State OrderState `json:"estado"`
	Items []LineItem `json:"pedido"`
}
