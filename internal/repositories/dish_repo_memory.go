package repositories

import (
	"fmt"
	"sync"

	"grubdash/internal/models"
)

// MemoryDishRepository is an in-memory implementation of DishRepository.
// Dishes are kept in insertion order.
type MemoryDishRepository struct {
	dishes []models.Dish
	mu     sync.RWMutex
}

// NewMemoryDishRepository creates a new instance of MemoryDishRepository.
func NewMemoryDishRepository() *MemoryDishRepository {
	return &MemoryDishRepository{}
}

// GetAll returns all dishes.
func (r *MemoryDishRepository) GetAll() ([]models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dishList := make([]models.Dish, len(r.dishes))
	copy(dishList, r.dishes)
	return dishList, nil
}

// GetByID returns a dish by its ID.
func (r *MemoryDishRepository) GetByID(id string) (*models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "dish", ID: id}
	}
	dish := r.dishes[i]
	return &dish, nil
}

// Create appends a new dish.
func (r *MemoryDishRepository) Create(dish *models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dish.ID == "" {
		return fmt.Errorf("dish must have an ID before it is stored")
	}
	if r.indexOf(dish.ID) >= 0 {
		return fmt.Errorf("dish with ID %s already exists", dish.ID)
	}
	r.dishes = append(r.dishes, *dish)
	return nil
}

// Update replaces an existing dish in place.
func (r *MemoryDishRepository) Update(dish *models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(dish.ID)
	if i < 0 {
		return &NotFoundError{Resource: "dish", ID: dish.ID}
	}
	r.dishes[i] = *dish
	return nil
}

// indexOf must be called with the lock held.
func (r *MemoryDishRepository) indexOf(id string) int {
	for i := range r.dishes {
		if r.dishes[i].ID == id {
			return i
		}
	}
	return -1
}
