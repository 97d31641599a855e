// Package service реализует бизнес-логику ресторанного бэк-офиса.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-backoffice/internal/events"
	"github.com/mmeshcher/restaurant-backoffice/internal/metrics"
	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

// OrderRepository описывает контракт доступа к заказам, используемый сервисом.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	GetOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) (model.Order, error)
}

// OrderService содержит бизнес-логику работы с заказами.
type OrderService struct {
	repo      OrderRepository
	logger    *zap.Logger
	publisher *events.Publisher
	metrics   *metrics.Metrics
}

// NewOrderService создаёт сервис заказов.
// Публикатор событий и метрики допускают nil.
func NewOrderService(repo OrderRepository, logger *zap.Logger, publisher *events.Publisher, m *metrics.Metrics) *OrderService {
	return &OrderService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		metrics:   m,
	}
}

// Create создаёт новый заказ. Заказ без позиций отклоняется,
// статус всегда выставляется в PLACED независимо от входного значения.
func (s *OrderService) Create(ctx context.Context, order model.Order) (model.Order, error) {
	s.logger.Info("creating order", zap.Int("table", order.TableNumber))

	if len(order.Items) == 0 {
		s.logger.Warn("order creation failed: items list is empty")
		return model.Order{}, ErrOrderItemsRequired
	}

	order.Status = model.OrderStatusPlaced

	saved, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return model.Order{}, err
	}

	s.metrics.RecordOrderCreated()
	s.publisher.OrderCreated(ctx, saved)

	s.logger.Info("order created", zap.Int64("id", saved.ID))
	return saved, nil
}

// GetAll возвращает все заказы.
func (s *OrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	return s.repo.GetOrders(ctx)
}

// GetByID возвращает заказ по идентификатору.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Warn("order lookup failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// UpdateStatus устанавливает новый статус заказа. Граф переходов не
// ограничивается: любой статус может быть назначен из любого другого.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	s.logger.Info("updating order status", zap.Int64("id", id), zap.String("status", string(status)))

	if status == "" {
		s.logger.Warn("order status update failed: status is empty", zap.Int64("id", id))
		return model.Order{}, ErrOrderStatusRequired
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Warn("order status update failed", zap.Int64("id", id), zap.Error(err))
		return model.Order{}, err
	}

	order.Status = status

	updated, err := s.repo.UpdateOrder(ctx, *order)
	if err != nil {
		return model.Order{}, err
	}

	s.metrics.RecordOrderStatusUpdate()
	s.publisher.OrderStatusChanged(ctx, updated)

	s.logger.Info("order status updated", zap.Int64("id", id), zap.String("status", string(status)))
	return updated, nil
}
