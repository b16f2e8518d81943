package services

import (
	"fmt"

	"grubdash/internal/idgen"
	"grubdash/internal/models"
	"grubdash/internal/repositories"
	"grubdash/internal/validation"
	"grubdash/pkg/rabbitmq"

	"go.uber.org/zap"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	repo   repositories.OrderRepository
	events EventPublisher
	log    *zap.Logger
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(repo repositories.OrderRepository, events EventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.repo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.repo.GetByID(id)
}

// CreateOrder stores order under a freshly generated ID. Orders without a status start as pending.
func (s *OrderService) CreateOrder(order models.Order) (*models.Order, error) {
	order.ID = idgen.Next()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := s.repo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.Int("dishes", len(order.Dishes)),
	)
	publish(s.events, s.log, rabbitmq.EventOrderCreated, order.ID, order)
	return &order, nil
}

// UpdateOrder replaces every mutable field of existing with changes. The stored ID is kept.
// Status transitions are not restricted.
func (s *OrderService) UpdateOrder(existing *models.Order, changes models.Order) (*models.Order, error) {
	changes.ID = existing.ID
	changes.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(&changes); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", existing.ID, err)
	}

	s.log.Info("order updated",
		zap.String("order_id", changes.ID),
		zap.String("from_status", string(existing.Status)),
		zap.String("to_status", string(changes.Status)),
	)
	publish(s.events, s.log, rabbitmq.EventOrderUpdated, changes.ID, changes)
	return &changes, nil
}

// DeleteOrder removes a pending order.
func (s *OrderService) DeleteOrder(order *models.Order) error {
	if err := CheckDeletable(order); err != nil {
		return err
	}
	if err := s.repo.Delete(order.ID); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", order.ID, err)
	}

	s.log.Info("order deleted", zap.String("order_id", order.ID))
	publish(s.events, s.log, rabbitmq.EventOrderDeleted, order.ID, order)
	return nil
}

// CheckDeletable reports a client error unless order is still pending.
func CheckDeletable(order *models.Order) error {
	if order.Status != models.StatusPending {
		return validation.Invalid("An order cannot be deleted unless it is pending")
	}
	return nil
}
