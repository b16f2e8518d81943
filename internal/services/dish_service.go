package services

import (
	"fmt"

	"grubdash/internal/idgen"
	"grubdash/internal/models"
	"grubdash/internal/repositories"
	"grubdash/pkg/rabbitmq"

	"go.uber.org/zap"
)

// DishService handles business logic related to dishes.
type DishService struct {
	repo   repositories.DishRepository
	events EventPublisher
	log    *zap.Logger
}

// NewDishService creates a new DishService. events may be nil.
func NewDishService(repo repositories.DishRepository, events EventPublisher, log *zap.Logger) *DishService {
	return &DishService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// GetAllDishes retrieves all dishes.
func (s *DishService) GetAllDishes() ([]models.Dish, error) {
	return s.repo.GetAll()
}

// GetDishByID retrieves a single dish by its ID.
func (s *DishService) GetDishByID(id string) (*models.Dish, error) {
	return s.repo.GetByID(id)
}

// CreateDish stores dish under a freshly generated ID.
func (s *DishService) CreateDish(dish models.Dish) (*models.Dish, error) {
	dish.ID = idgen.Next()
	if err := s.repo.Create(&dish); err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	s.log.Info("dish created", zap.String("dish_id", dish.ID), zap.String("name", dish.Name))
	publish(s.events, s.log, rabbitmq.EventDishCreated, dish.ID, dish)
	return &dish, nil
}

// UpdateDish replaces every mutable field of existing with changes. The stored ID is kept.
func (s *DishService) UpdateDish(existing *models.Dish, changes models.Dish) (*models.Dish, error) {
	changes.ID = existing.ID
	changes.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(&changes); err != nil {
		return nil, fmt.Errorf("failed to update dish %s: %w", existing.ID, err)
	}

	s.log.Info("dish updated", zap.String("dish_id", changes.ID))
	publish(s.events, s.log, rabbitmq.EventDishUpdated, changes.ID, changes)
	return &changes, nil
}
