package credits

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rickai0118/OpenLovart/internal/auth"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// GetBalance serves GET /api/credits. A balance that could not be
// determined is returned as null rather than an error so the dashboard
// simply shows nothing.
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	balance, ok := h.Svc.Ensure(c.UserContext(), userID)
	if !ok {
		return c.JSON(fiber.Map{"balance": nil})
	}
	return c.JSON(fiber.Map{"balance": balance})
}
