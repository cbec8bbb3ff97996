package stockservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/logger"
)

// StockRepository define o contrato que o livro de estoque espera da camada de Persistência.
type StockRepository interface {
	ApplyDelta(ctx context.Context, q database.Querier, productID string, delta int) (domain.StockLevel, error)
	RecordMovement(ctx context.Context, q database.Querier, orderID string, lineIndex int, productID string, delta int) (bool, error)
	CurrentStock(ctx context.Context, q database.Querier, productID string) (domain.StockLevel, error)
}

// UnitOfWork executa fn numa transação.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, q database.Querier) error) error
}

// ProductCache invalida as leituras em cache de produtos cujo estoque mudou.
type ProductCache interface {
	Invalidate(ctx context.Context, ids ...string)
}

// Service é o livro de estoque: o único caminho que altera products.stock.
type Service struct {
	repo   StockRepository
	uow    UnitOfWork
	cache  ProductCache
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(repo StockRepository, uow UnitOfWork, cache ProductCache, logger logger.Logger) *Service {
	return &Service{repo: repo, uow: uow, cache: cache, logger: logger}
}

// ApplyDelta aplica um ajuste avulso (positivo ou negativo) ao estoque de um produto.
func (s *Service) ApplyDelta(ctx context.Context, productID string, delta int) (domain.StockLevel, error) {
	if err := validateDelta(productID, delta); err != nil {
		return domain.StockLevel{}, err
	}

	var level domain.StockLevel
	err := s.uow.RunInTx(ctx, func(ctx context.Context, q database.Querier) error {
		var err error
		level, err = s.repo.ApplyDelta(ctx, q, productID, delta)
		return err
	})
	if err != nil {
		s.logger.Warn("Ajuste de estoque recusado.", map[string]interface{}{"product_id": productID, "delta": delta, "error": err.Error()})
		return domain.StockLevel{}, err
	}

	s.cache.Invalidate(ctx, productID)
	return level, nil
}

// ApplyOrderLine aplica o delta da linha lineIndex do pedido dentro da transação q.
// Se o movimento dessa linha já foi registrado, o estoque não é alterado de novo.
func (s *Service) ApplyOrderLine(ctx context.Context, q database.Querier, orderID string, lineIndex int, productID string, delta int) (domain.StockLevel, error) {
	if err := validateDelta(productID, delta); err != nil {
		return domain.StockLevel{}, err
	}

	inserted, err := s.repo.RecordMovement(ctx, q, orderID, lineIndex, productID, delta)
	if err != nil {
		return domain.StockLevel{}, err
	}
	if !inserted {
		return s.repo.CurrentStock(ctx, q, productID)
	}
	return s.repo.ApplyDelta(ctx, q, productID, delta)
}

// InvalidateProducts descarta o cache dos produtos depois do commit.
func (s *Service) InvalidateProducts(ctx context.Context, ids ...string) {
	s.cache.Invalidate(ctx, ids...)
}

func validateDelta(productID string, delta int) error {
	if _, err := uuid.Parse(productID); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("O ID do produto '%s' deve ser um UUID válido.", productID))
	}
	if delta == 0 {
		return apperror.NewValidationError("O ajuste de estoque (delta) não pode ser zero.")
	}
	return nil
}
