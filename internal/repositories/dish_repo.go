package repositories

import (
	"grubdash/internal/models"
)

// DishRepository defines the interface for dish data access.
// Dishes are never deleted, so there is no Delete method.
type DishRepository interface {
	GetAll() ([]models.Dish, error)
	GetByID(id string) (*models.Dish, error)
	Create(dish *models.Dish) error
	Update(dish *models.Dish) error
}
