package repositories

import (
	"errors"
	"fmt"

	"grubdash/internal/models"

	"gorm.io/gorm"
)

// GORMDishRepository is a GORM implementation of DishRepository.
type GORMDishRepository struct {
	db *gorm.DB
}

// NewGORMDishRepository creates a new instance of GORMDishRepository.
func NewGORMDishRepository(db *gorm.DB) *GORMDishRepository {
	return &GORMDishRepository{
		db: db,
	}
}

// GetAll retrieves all dishes from the database in creation order.
func (r *GORMDishRepository) GetAll() ([]models.Dish, error) {
	dishes := []models.Dish{}
	if err := r.db.Order("created_at, id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all dishes: %w", err)
	}
	return dishes, nil
}

// GetByID retrieves a single dish by its ID from the database.
func (r *GORMDishRepository) GetByID(id string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "dish", ID: id}
		}
		return nil, fmt.Errorf("failed to get dish by ID %s: %w", id, err)
	}
	return &dish, nil
}

// Create creates a new dish in the database.
func (r *GORMDishRepository) Create(dish *models.Dish) error {
	if dish.ID == "" {
		return fmt.Errorf("dish must have an ID before it is stored")
	}
	if err := r.db.Create(dish).Error; err != nil {
		return fmt.Errorf("failed to create dish: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing dish.
func (r *GORMDishRepository) Update(dish *models.Dish) error {
	// Save would fall back to an insert when no row matches, so update explicitly.
	res := r.db.Model(dish).
		Select("name", "description", "price", "image_url", "updated_at").
		Updates(dish)
	if res.Error != nil {
		return fmt.Errorf("failed to update dish: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "dish", ID: dish.ID}
	}
	return nil
}
