package services_test

import (
	"grubdash/internal/models"
	"grubdash/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockDishRepository is a mock implementation of repositories.DishRepository
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) GetAll() ([]models.Dish, error) {
	args := m.Called()
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) GetByID(id string) (*models.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) Create(dish *models.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MockDishRepository) Update(dish *models.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventNamed(name string) any {
	return mock.MatchedBy(func(e rabbitmq.Event) bool { return e.Name == name })
}
