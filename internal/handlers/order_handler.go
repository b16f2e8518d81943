package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"grubdash/internal/models"
	"grubdash/internal/repositories"
	"grubdash/internal/services"
	"grubdash/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// orderPayload is the body of a create, update or delete order request.
// Dishes stays raw so a missing list, a non-list and a bad entry can be told apart.
type orderPayload struct {
	ID           any             `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

type orderItemPayload struct {
	DishID   string `json:"dishId"`
	Quantity any    `json:"quantity"`
}

func (p orderPayload) bodyID() any { return p.ID }

func (p orderPayload) hasDishes() bool {
	raw := bytes.TrimSpace(p.Dishes)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null")) && !bytes.Equal(raw, []byte(`""`))
}

func (p orderPayload) dishEntries() ([]json.RawMessage, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal(p.Dishes, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// items decodes the dishes list. It reports the index of the first entry without
// a positive integer quantity, or -1 when every entry is valid.
func (p orderPayload) items() ([]models.OrderItem, int) {
	entries, _ := p.dishEntries()
	items := make([]models.OrderItem, 0, len(entries))
	for i, raw := range entries {
		var entry orderItemPayload
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, i
		}
		quantity, ok := validation.PositiveInteger(entry.Quantity)
		if !ok {
			return nil, i
		}
		items = append(items, models.OrderItem{DishID: entry.DishID, Quantity: quantity})
	}
	return items, -1
}

func (p orderPayload) toOrder() models.Order {
	items, _ := p.items()
	return models.Order{
		DeliverTo:    p.DeliverTo,
		MobileNumber: p.MobileNumber,
		Status:       models.OrderStatus(p.Status),
		Dishes:       items,
	}
}

var (
	statusTag     = "oneof=" + joinStatuses(" ")
	statusMessage = "Order must have a status of " + joinStatuses(", ")
)

func joinStatuses(sep string) string {
	names := make([]string, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, sep)
}

var orderRules = validation.Chain[orderPayload]{
	func(p orderPayload) error {
		return validation.Field(p.DeliverTo, "required", "Order must include a deliverTo")
	},
	func(p orderPayload) error {
		return validation.Field(p.MobileNumber, "required", "Order must include a mobileNumber")
	},
	func(p orderPayload) error {
		if !p.hasDishes() {
			return validation.Invalid("Order must include a dish")
		}
		return nil
	},
	func(p orderPayload) error {
		if entries, ok := p.dishEntries(); !ok || len(entries) == 0 {
			return validation.Invalid("Order must include at least one dish")
		}
		return nil
	},
	func(p orderPayload) error {
		if _, bad := p.items(); bad >= 0 {
			return validation.Invalid("Dish %d must have a quantity that is an integer greater than 0", bad)
		}
		return nil
	},
}

// statusRequired rejects a missing or unknown status.
func statusRequired(p orderPayload) error {
	return validation.Field(p.Status, "required,"+statusTag, statusMessage)
}

// statusAllowed rejects an unknown status but lets a missing one through.
func statusAllowed(p orderPayload) error {
	return validation.Field(p.Status, "omitempty,"+statusTag, statusMessage)
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:orderId", h.HandleGetOrder)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:orderId", h.HandleUpdateOrder)
	orderRoutes.Delete("/:orderId", h.HandleDeleteOrder)
}

// orderExists resolves the route id to a stored order.
func (h *OrderHandler) orderExists(orderID string) (*models.Order, error) {
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		var notFound *repositories.NotFoundError
		if errors.As(err, &notFound) {
			return nil, validation.NotFound("Order does not exist: %s", orderID)
		}
		return nil, fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}
	return order, nil
}

// HandleGetOrders lists every order.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return fmt.Errorf("could not retrieve orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(fiber.Map{"data": orders})
}

// HandleGetOrder returns a single order.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.orderExists(c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// HandleCreateOrder validates the payload and stores a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var payload orderPayload
	if err := bindData(c, &payload); err != nil {
		return err
	}
	if err := orderRules.With(statusAllowed).Run(payload); err != nil {
		return err
	}

	order, err := h.service.CreateOrder(payload.toOrder())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": order})
}

// HandleUpdateOrder replaces an order. The route id always wins over the body id.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	order, err := h.orderExists(orderID)
	if err != nil {
		return err
	}

	var payload orderPayload
	if err := bindData(c, &payload); err != nil {
		return err
	}
	rules := orderRules.With(idMatchesRoute[orderPayload]("Order", orderID), statusRequired)
	if err := rules.Run(payload); err != nil {
		return err
	}

	updated, err := h.service.UpdateOrder(order, payload.toOrder())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// HandleDeleteOrder removes a pending order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	order, err := h.orderExists(orderID)
	if err != nil {
		return err
	}

	var payload orderPayload
	if err := bindData(c, &payload); err != nil {
		return err
	}
	if err := idMatchesRoute[orderPayload]("Order", orderID)(payload); err != nil {
		return err
	}
	if err := services.CheckDeletable(order); err != nil {
		return err
	}

	if err := h.service.DeleteOrder(order); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
