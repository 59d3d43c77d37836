package admin

import "github.com/gofiber/fiber/v2"

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) Overview(c *fiber.Ctx) error {
	out, err := h.Store.Overview(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed overview: "+err.Error())
	}
	return c.JSON(out)
}
