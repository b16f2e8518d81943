package repositories

import (
	"fmt"
	"slices"
	"sync"

	"grubdash/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// Orders are kept in insertion order.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// GetAll returns all orders.
func (r *MemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, len(r.orders))
	for i := range r.orders {
		orderList[i] = cloneOrder(r.orders[i])
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "order", ID: id}
	}
	order := cloneOrder(r.orders[i])
	return &order, nil
}

// Create appends a new order.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		return fmt.Errorf("order must have an ID before it is stored")
	}
	if r.indexOf(order.ID) >= 0 {
		return fmt.Errorf("order with ID %s already exists", order.ID)
	}
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}

// Update replaces an existing order in place.
func (r *MemoryOrderRepository) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(order.ID)
	if i < 0 {
		return &NotFoundError{Resource: "order", ID: order.ID}
	}
	r.orders[i] = cloneOrder(*order)
	return nil
}

// Delete removes an order by its ID.
func (r *MemoryOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &NotFoundError{Resource: "order", ID: id}
	}
	r.orders = slices.Delete(r.orders, i, i+1)
	return nil
}

func (r *MemoryOrderRepository) indexOf(id string) int {
	return slices.IndexFunc(r.orders, func(o models.Order) bool { return o.ID == id })
}

// cloneOrder copies the dishes slice so callers cannot mutate stored state.
func cloneOrder(o models.Order) models.Order {
	o.Dishes = slices.Clone(o.Dishes)
	return o
}
