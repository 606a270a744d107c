package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key de Locals con el request id.
const LocalRequestID = "request_id"

// RequestID asigna un request id (el del cliente o un uuid nuevo), lo devuelve en la respuesta y deja en el
// UserContext un logger con ese id para use cases y handlers.
func RequestID(base *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		c.SetUserContext(logger.WithContext(c.UserContext(), base.WithRequestID(id)))
		return c.Next()
	}
}
