package customerservice

import (
	"context"

	"github.com/google/uuid"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/logger"
)

// Service cadastra e consulta clientes.
type Service struct {
	repo   domain.CustomerRepository
	logger logger.Logger
}

// NewService cria o serviço de clientes.
func NewService(repo domain.CustomerRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create valida e persiste um cliente. Sem tipo informado o cliente é BASICO.
func (s *Service) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if customer.Type == "" {
		customer.Type = domain.CustomerBasic
	}
	if customer.Emails == nil {
		customer.Emails = []string{}
	}
	if err := customer.Validate(); err != nil {
		return domain.Customer{}, apperror.NewValidationError(err.Error())
	}
	customer.ID = uuid.NewString()

	created, err := s.repo.Save(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}
	s.logger.Info("Cliente criado.", map[string]interface{}{"customer_id": created.ID, "vendedor": created.SalespersonID})
	return created, nil
}

// Get busca um cliente pelo ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Customer{}, apperror.NewValidationError("O ID do cliente deve ser um UUID válido.")
	}
	return s.repo.FindByID(ctx, id)
}
