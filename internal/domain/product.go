package domain

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// Product representa um item do catálogo. O estoque só é alterado pelo livro de estoque.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Price     decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct é o payload de criação de produto.
type NewProduct struct {
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
	Stock int             `json:"stock"`
}

// Validate verifica nome, preço e estoque inicial.
func (p NewProduct) Validate() error {
	if !p.Price.IsPositive() {
		return errors.New("precio: deve ser maior que zero")
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Stock, validation.Min(0)),
	)
}

// StockAdjustmentRequest é o payload para ajuste manual de estoque de um produto.
type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // Quantidade a ser adicionada/removida
}

// StockLevel é o estoque (e o preço) de um produto após um ajuste aplicado.
type StockLevel struct {
	ProductID string          `json:"product_id"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"precio"`
}

// ProductRepository define o acesso a produtos fora do livro de estoque.
type ProductRepository interface {
	Save(ctx context.Context, product Product) (Product, error)
	FindByID(ctx context.Context, id string) (Product, error)
}
