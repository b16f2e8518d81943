package handlers

import (
	"fmt"

	"grubdash/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// envelope is the {"data": {...}} wrapper every request body uses.
type envelope[T any] struct {
	Data T `json:"data"`
}

// bindData decodes the request body's data object into out. An empty body leaves out untouched.
func bindData[T any](c *fiber.Ctx, out *T) error {
	if len(c.Body()) == 0 {
		return nil
	}
	var body envelope[T]
	if err := c.BodyParser(&body); err != nil {
		return validation.Invalid("Invalid request body")
	}
	*out = body.Data
	return nil
}

// identified is a payload that may carry its own id.
type identified interface {
	bodyID() any
}

// idMatchesRoute rejects a payload whose non-empty id differs from the route id.
func idMatchesRoute[T identified](resource, routeID string) validation.Rule[T] {
	return func(p T) error {
		id := p.bodyID()
		if id == nil || id == "" {
			return nil
		}
		if s, ok := id.(string); ok && s == routeID {
			return nil
		}
		return validation.Invalid("%s id does not match route id. %s: %s, Route: %s", resource, resource, fmt.Sprint(id), routeID)
	}
}
