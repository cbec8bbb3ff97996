package orderservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"gopedidos/internal/domain"
	apperror "gopedidos/internal/errors"
	"gopedidos/internal/pkg/database"
	"gopedidos/internal/pkg/logger"
	"gopedidos/internal/pkg/metrics"
)

// OrderRepository define o contrato que este Serviço espera da camada de Persistência.
type OrderRepository interface {
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id string) (domain.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	LockByID(ctx context.Context, q database.Querier, id string) (domain.Order, error)
	UpdateIfPending(ctx context.Context, q database.Querier, order domain.Order) (bool, error)
}

// Ledger é o livro de estoque visto pelo ciclo de vida do pedido.
type Ledger interface {
	ApplyOrderLine(ctx context.Context, q database.Querier, orderID string, lineIndex int, productID string, delta int) (domain.StockLevel, error)
	InvalidateProducts(ctx context.Context, ids ...string)
}

// PriceLookup resolve o preço atual de um produto.
type PriceLookup interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// UnitOfWork executa fn numa transação.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, q database.Querier) error) error
}

// EventPublisher publica eventos depois do commit.
type EventPublisher interface {
	PublishOrderTransitioned(ctx context.Context, event domain.OrderTransitioned) error
}

// TransitionObserver registra o resultado de cada transição.
type TransitionObserver interface {
	ObserveTransition(state domain.OrderState, outcome string)
}

// Service é o gerenciador do ciclo de vida de pedidos.
type Service struct {
	repo      OrderRepository
	ledger    Ledger
	prices    PriceLookup
	uow       UnitOfWork
	publisher EventPublisher
	observer  TransitionObserver
	logger    logger.Logger

	now     func() time.Time
	backoff func() retry.Backoff
}

// Option ajusta o Service.
type Option func(*Service)

// WithClock substitui o relógio (testes).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRetryBackoff define o backoff usado quando o banco está indisponível.
func WithRetryBackoff(b func() retry.Backoff) Option {
	return func(s *Service) { s.backoff = b }
}

// NewService cria e retorna uma nova instância do Serviço de Pedidos.
func NewService(repo OrderRepository, ledger Ledger, prices PriceLookup, uow UnitOfWork, publisher EventPublisher, observer TransitionObserver, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		ledger:    ledger,
		prices:    prices,
		uow:       uow,
		publisher: publisher,
		observer:  observer,
		logger:    logger,
		now:       time.Now,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create valida e persiste um pedido PENDIENTE. Um total ausente (zero) é calculado
// a partir dos preços atuais dos produtos.
func (s *Service) Create(ctx context.Context, input domain.NewOrder) (domain.Order, error) {
	if err := input.Validate(); err != nil {
		return domain.Order{}, apperror.NewValidationError(err.Error())
	}

	total := input.Total
	if !total.IsPositive() {
		computed, err := s.priceItems(ctx, input.Items)
		if err != nil {
			return domain.Order{}, err
		}
		total = computed
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Items:         input.Items,
		Total:         total,
		CreatedAt:     s.now().UTC(),
		CustomerID:    input.CustomerID,
		SalespersonID: input.SalespersonID,
		State:         domain.OrderPending,
	}

	created, err := s.repo.Save(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("Pedido criado.", map[string]interface{}{"order_id": created.ID, "total": created.Total.String()})
	return created, nil
}

// Transition leva um pedido PENDIENTE a COMPLETADO ou CANCELADO. Os ajustes de estoque
// de todas as linhas e a mudança de estado são confirmados juntos ou não são confirmados.
func (s *Service) Transition(ctx context.Context, id string, update domain.OrderUpdate) (domain.Order, error) {
	sign := update.State.StockSign()
	if sign == 0 {
		return domain.Order{}, apperror.NewInvalidTransitionError(fmt.Sprintf("Transição para o estado '%s' não é permitida.", update.State))
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.Order{}, apperror.NewValidationError("O ID do pedido deve ser um UUID válido.")
	}
	if len(update.Items) > 0 {
		if err := domain.ValidateLineItems(update.Items); err != nil {
			return domain.Order{}, apperror.NewValidationError(err.Error())
		}
	}

	var (
		result domain.Order
		from   domain.OrderState
	)
	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		err := s.uow.RunInTx(ctx, func(ctx context.Context, q database.Querier) error {
			var err error
			result, from, err = s.transitionInTx(ctx, q, id, update, sign)
			return err
		})
		var unavailable *apperror.UnavailableError
		if errors.As(err, &unavailable) {
			s.logger.Warn("Banco indisponível durante transição; nova tentativa.", map[string]interface{}{"order_id": id, "error": err.Error()})
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		s.observer.ObserveTransition(update.State, metrics.OutcomeRejected)
		s.logger.Warn("Transição de pedido abortada.", map[string]interface{}{"order_id": id, "state": update.State, "error": err.Error()})
		return domain.Order{}, err
	}

	s.afterCommit(ctx, result, from)
	return result, nil
}

func (s *Service) transitionInTx(ctx context.Context, q database.Querier, id string, update domain.OrderUpdate, sign int) (domain.Order, domain.OrderState, error) {
	order, err := s.repo.LockByID(ctx, q, id)
	if err != nil {
		return domain.Order{}, "", err
	}
	from := order.State
	if order.State != domain.OrderPending {
		return domain.Order{}, from, alreadyFinalized(order)
	}

	items := order.Items
	replaced := len(update.Items) > 0
	if replaced {
		items = update.Items
	}

	total := decimal.Zero
	for _, i := range lineOrder(items) {
		line := items[i]
		level, err := s.ledger.ApplyOrderLine(ctx, q, order.ID, i, line.ProductID, sign*line.Quantity)
		if err != nil {
			return domain.Order{}, from, err
		}
		total = total.Add(level.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	appliedAt := s.now().UTC()
	order.Items = items
	order.State = update.State
	order.StockAppliedAt = &appliedAt
	if replaced {
		order.Total = total
	}

	ok, err := s.repo.UpdateIfPending(ctx, q, order)
	if err != nil {
		return domain.Order{}, from, err
	}
	if !ok {
		return domain.Order{}, from, alreadyFinalized(order)
	}
	return order, from, nil
}

func (s *Service) afterCommit(ctx context.Context, order domain.Order, from domain.OrderState) {
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	s.ledger.InvalidateProducts(ctx, ids...)
	s.observer.ObserveTransition(order.State, metrics.OutcomeApplied)

	event := domain.OrderTransitioned{
		OrderID:       order.ID,
		From:          from,
		To:            order.State,
		CustomerID:    order.CustomerID,
		SalespersonID: order.SalespersonID,
		Total:         order.Total,
		Lines:         len(order.Items),
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishOrderTransitioned(ctx, event); err != nil {
		s.logger.Warn("Falha ao publicar evento de pedido.", map[string]interface{}{"order_id": order.ID, "error": err.Error()})
	}

	s.logger.Info("Pedido finalizado.", map[string]interface{}{"order_id": order.ID, "from": from, "to": order.State})
}

// Get busca um pedido pelo ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Order{}, apperror.NewValidationError("O ID do pedido deve ser um UUID válido.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListByCustomer lista os pedidos de um cliente.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	if _, err := uuid.Parse(customerID); err != nil {
		return nil, apperror.NewValidationError("O ID do cliente deve ser um UUID válido.")
	}
	return s.repo.FindByCustomer(ctx, customerID)
}

func (s *Service) priceItems(ctx context.Context, items []domain.LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		product, err := s.prices.FindByID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// lineOrder devolve os índices das linhas ordenados por produto, para que transações
// concorrentes bloqueiem as linhas de products sempre na mesma ordem.
func lineOrder(items []domain.LineItem) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return items[idx[a]].ProductID < items[idx[b]].ProductID
	})
	return idx
}

func alreadyFinalized(order domain.Order) error {
	return apperror.NewConflictErrorWithCode(apperror.CodeAlreadyFinalized, fmt.Sprintf("O pedido %s já foi finalizado (%s).", order.ID, order.State))
}
