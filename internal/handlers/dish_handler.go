package handlers

import (
	"errors"
	"fmt"

	"grubdash/internal/models"
	"grubdash/internal/repositories"
	"grubdash/internal/services"
	"grubdash/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// dishPayload is the body of a create or update dish request.
type dishPayload struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

func (p dishPayload) bodyID() any { return p.ID }

func (p dishPayload) toDish() models.Dish {
	price, _ := validation.PositiveInteger(p.Price)
	return models.Dish{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		ImageURL:    p.ImageURL,
	}
}

var dishRules = validation.Chain[dishPayload]{
	func(p dishPayload) error {
		return validation.Field(p.Name, "required", "Dish must include a name")
	},
	func(p dishPayload) error {
		return validation.Field(p.Description, "required", "Dish must include a description")
	},
	func(p dishPayload) error {
		if p.Price == nil || p.Price == "" {
			return validation.Invalid("Dish must include a price")
		}
		return nil
	},
	func(p dishPayload) error {
		if _, ok := validation.PositiveInteger(p.Price); !ok {
			return validation.Invalid("Dish must have a price that is an integer greater than 0")
		}
		return nil
	},
	func(p dishPayload) error {
		return validation.Field(p.ImageURL, "required", "Dish must include a image_url")
	},
}

// DishHandler handles HTTP requests for dishes.
type DishHandler struct {
	service *services.DishService
}

// NewDishHandler creates a new DishHandler.
func NewDishHandler(service *services.DishService) *DishHandler {
	return &DishHandler{
		service: service,
	}
}

// RegisterRoutes registers the dish routes. Dishes cannot be deleted.
func (h *DishHandler) RegisterRoutes(router fiber.Router) {
	dishRoutes := router.Group("/dishes")
	dishRoutes.Get("/", h.HandleGetDishes)
	dishRoutes.Get("/:dishId", h.HandleGetDish)
	dishRoutes.Post("/", h.HandleCreateDish)
	dishRoutes.Put("/:dishId", h.HandleUpdateDish)
}

// dishExists resolves the route id to a stored dish.
func (h *DishHandler) dishExists(dishID string) (*models.Dish, error) {
	dish, err := h.service.GetDishByID(dishID)
	if err != nil {
		var notFound *repositories.NotFoundError
		if errors.As(err, &notFound) {
			return nil, validation.NotFound("Dish does not exist: %s", dishID)
		}
		return nil, fmt.Errorf("failed to look up dish %s: %w", dishID, err)
	}
	return dish, nil
}

// HandleGetDishes lists every dish.
func (h *DishHandler) HandleGetDishes(c *fiber.Ctx) error {
	dishes, err := h.service.GetAllDishes()
	if err != nil {
		return fmt.Errorf("could not retrieve dishes: %w", err)
	}
	if dishes == nil {
		dishes = []models.Dish{}
	}
	return c.JSON(fiber.Map{"data": dishes})
}

// HandleGetDish returns a single dish.
func (h *DishHandler) HandleGetDish(c *fiber.Ctx) error {
	dish, err := h.dishExists(c.Params("dishId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dish})
}

// HandleCreateDish validates the payload and stores a new dish.
func (h *DishHandler) HandleCreateDish(c *fiber.Ctx) error {
	var payload dishPayload
	if err := bindData(c, &payload); err != nil {
		return err
	}
	if err := dishRules.Run(payload); err != nil {
		return err
	}

	dish, err := h.service.CreateDish(payload.toDish())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dish})
}

// HandleUpdateDish replaces a dish. The route id always wins over the body id.
func (h *DishHandler) HandleUpdateDish(c *fiber.Ctx) error {
	dishID := c.Params("dishId")
	dish, err := h.dishExists(dishID)
	if err != nil {
		return err
	}

	var payload dishPayload
	if err := bindData(c, &payload); err != nil {
		return err
	}
	rules := dishRules.With(idMatchesRoute[dishPayload]("Dish", dishID))
	if err := rules.Run(payload); err != nil {
		return err
	}

	updated, err := h.service.UpdateDish(dish, payload.toDish())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}
