package reportservice

import (
	"context"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
)

// Service monta os rankings de clientes e vendedores a partir dos pedidos COMPLETADO.
type Service struct {
	repo   domain.ReportRepository
	logger logger.Logger
}

// NewService cria o serviço de relatórios.
func NewService(repo domain.ReportRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// TopCustomers devolve os clientes com maior total comprado.
func (s *Service) TopCustomers(ctx context.Context) ([]domain.TopCustomer, error) {
	return s.repo.TopCustomers(ctx, domain.LeaderboardLimit)
}

// TopSalespeople devolve os vendedores com maior total vendido.
func (s *Service) TopSalespeople(ctx context.Context) ([]domain.TopSalesperson, error) {
	return s.repo.TopSalespeople(ctx, domain.LeaderboardLimit)
}
