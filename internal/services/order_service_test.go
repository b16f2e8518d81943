package services_test

import (
	"errors"
	"fmt"
	"testing"

	"grubdash/internal/models"
	"grubdash/internal/services"
	"grubdash/internal/validation"
	"grubdash/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockEvents := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockEvents, zap.NewNop())

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Twice()
	mockEvents.On("Publish", eventNamed(rabbitmq.EventOrderCreated)).Return(nil).Twice()

	// Missing status defaults to pending
	order, err := service.CreateOrder(models.Order{DeliverTo: "a", MobileNumber: "b", Dishes: []models.OrderItem{{DishID: "d", Quantity: 1}}})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)

	// Supplied status is kept
	order, err = service.CreateOrder(models.Order{DeliverTo: "a", MobileNumber: "b", Status: models.StatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.Status)

	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, zap.NewNop())

	existing := &models.Order{ID: "o1", Status: models.StatusDelivered}
	changes := models.Order{ID: "other", DeliverTo: "x", MobileNumber: "y", Status: models.StatusPending}

	mockRepo.On("Update", mock.MatchedBy(func(o *models.Order) bool { return o.ID == "o1" })).Return(nil).Once()

	updated, err := service.UpdateOrder(existing, changes)
	require.NoError(t, err)
	assert.Equal(t, "o1", updated.ID)
	assert.Equal(t, models.StatusPending, updated.Status)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockEvents := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockEvents, zap.NewNop())

	// Pending orders are removed
	mockRepo.On("Delete", "o1").Return(nil).Once()
	mockEvents.On("Publish", eventNamed(rabbitmq.EventOrderDeleted)).Return(nil).Once()
	assert.NoError(t, service.DeleteOrder(&models.Order{ID: "o1", Status: models.StatusPending}))

	// Other statuses are refused without touching the repository
	err := service.DeleteOrder(&models.Order{ID: "o2", Status: models.StatusOutForDelivery})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 400, verr.Status)
	assert.Equal(t, "An order cannot be deleted unless it is pending", verr.Message)

	// Repository failures are wrapped
	mockRepo.On("Delete", "o3").Return(fmt.Errorf("database error")).Once()
	err = service.DeleteOrder(&models.Order{ID: "o3", Status: models.StatusPending})
	assert.ErrorContains(t, err, "failed to delete order o3: database error")

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Delete", "o2")
	mockEvents.AssertExpectations(t)
}

func TestCheckDeletable(t *testing.T) {
	for _, status := range models.OrderStatuses {
		err := services.CheckDeletable(&models.Order{Status: status})
		if status == models.StatusPending {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err, "status %s", status)
		}
	}
}
