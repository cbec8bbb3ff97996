package domain

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CustomerType classifica o cliente.
type CustomerType string

const (
	CustomerBasic   CustomerType = "BASICO"
	CustomerPremium CustomerType = "PREMIUM"
)

// Customer representa um cliente atendido por um vendedor.
type Customer struct {
	ID            string       `json:"id"`
	Name          string       `json:"nombre"`
	Surname       string       `json:"apellido"`
	Company       string       `json:"empresa"`
	Emails        []string     `json:"emails"`
	Age           int          `json:"edad"`
	Type          CustomerType `json:"tipo"`
	SalespersonID string       `json:"vendedor"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Validate verifica os campos do cliente antes da criação.
func (c Customer) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Surname, validation.Length(0, 100)),
		validation.Field(&c.Company, validation.Length(0, 200)),
		validation.Field(&c.Age, validation.Min(0), validation.Max(150)),
		validation.Field(&c.Type, validation.Required, validation.In(CustomerBasic, CustomerPremium)),
		validation.Field(&c.SalespersonID, validation.Required, validation.By(isUUID)),
	)
	if err != nil {
		return err
	}
	for i, email := range c.Emails {
		if err := validation.Validate(email, validation.Required, is.Email); err != nil {
			return fmt.Errorf("emails[%d]: %w", i, err)
		}
	}
	return nil
}

// CustomerRepository define a persistência de clientes.
type CustomerRepository interface {
	Save(ctx context.Context, customer Customer) (Customer, error)
	FindByID(ctx context.Context, id string) (Customer, error)
}
