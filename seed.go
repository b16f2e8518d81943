package main

import (
	"go.uber.org/zap"

	"grubdash/internal/models"
	"grubdash/internal/repositories"
)

var seedDishes = []models.Dish{
	{
		ID:          "3c637d011d844ebab1205fef8a7e36ea",
		Name:        "Broccoli and beetroot stir fry",
		Description: "Crunchy stir fry featuring fresh broccoli and beetroot",
		Price:       15,
		ImageURL:    "https://images.pexels.com/photos/4144234/pexels-photo-4144234.jpeg?h=530&w=350",
	},
	{
		ID:          "d351db2b49b69679504652ea1cf38241",
		Name:        "Dolcelatte and chickpea spaghetti",
		Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
		Price:       19,
		ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?h=530&w=350",
	},
	{
		ID:          "90c3d873684bf381dfab29034b5bba73",
		Name:        "Falafel and tahini bagel",
		Description: "A warm bagel filled with falafel and tahini",
		Price:       6,
		ImageURL:    "https://images.pexels.com/photos/4560606/pexels-photo-4560606.jpeg?h=530&w=350",
	},
}

var seedOrders = []models.Order{
	{
		ID:           "f6069a542257054114138301947672ba",
		DeliverTo:    "1600 Pennsylvania Avenue NW, Washington, DC 20500",
		MobileNumber: "(202) 456-1111",
		Status:       models.StatusOutForDelivery,
		Dishes:       []models.OrderItem{{DishID: "90c3d873684bf381dfab29034b5bba73", Quantity: 2}},
	},
	{
		ID:           "5a887d326e83d3c5bdcbee398ea32aff",
		DeliverTo:    "308 Negra Arroyo Lane, Albuquerque, NM",
		MobileNumber: "(505) 143-3369",
		Status:       models.StatusPending,
		Dishes:       []models.OrderItem{{DishID: "d351db2b49b69679504652ea1cf38241", Quantity: 1}},
	},
}

// seed populates the repositories with the starter menu and orders.
// Records that already exist are logged and skipped.
func seed(dishes repositories.DishRepository, orders repositories.OrderRepository, log *zap.Logger) {
	for i := range seedDishes {
		dish := seedDishes[i]
		if err := dishes.Create(&dish); err != nil {
			log.Warn("Error seeding dish", zap.String("name", dish.Name), zap.Error(err))
			continue
		}
		log.Debug("Seeded dish", zap.String("dish_id", dish.ID), zap.String("name", dish.Name))
	}
	for i := range seedOrders {
		order := seedOrders[i]
		order.Dishes = append([]models.OrderItem(nil), order.Dishes...)
		if err := orders.Create(&order); err != nil {
			log.Warn("Error seeding order", zap.String("order_id", order.ID), zap.Error(err))
			continue
		}
		log.Debug("Seeded order", zap.String("order_id", order.ID))
	}
}
