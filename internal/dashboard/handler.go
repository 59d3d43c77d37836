// Package dashboard composes the first-load payload: the credit bootstrap
// and the project preview run as two concurrently issued store operations
// joined before a single response is written.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/rickai0118/OpenLovart/internal/auth"
	"github.com/rickai0118/OpenLovart/internal/credits"
	"github.com/rickai0118/OpenLovart/internal/logging"
	"github.com/rickai0118/OpenLovart/internal/projects"
)

type Handler struct {
	Credits  *credits.Service
	Projects *projects.Service
	Log      logging.Logger
}

type Response struct {
	Credits  *int64             `json:"credits"`
	Projects []projects.Project `json:"projects"`
	HasMore  bool               `json:"has_more"`
}

// Get serves GET /api/dashboard. Both flows always settle before the
// response: a failed credit load degrades to a null balance, a failed
// listing degrades to an empty list. Neither blocks the other.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if h.Credits == nil || h.Projects == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "store not ready")
	}

	ctx := c.UserContext()

	var (
		balance *int64
		preview []projects.Project
		hasMore bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if b, ok := h.Credits.Ensure(gctx, userID); ok {
			balance = &b
		}
		return nil
	})
	g.Go(func() error {
		items, more, err := h.Projects.Preview(gctx, userID)
		if err != nil {
			h.Log.Error(gctx, "failed to load project preview", "user_id", userID, "err", err)
			return nil
		}
		preview = items
		hasMore = more
		return nil
	})
	_ = g.Wait()

	if preview == nil {
		preview = []projects.Project{}
	}
	return c.JSON(Response{
		Credits:  balance,
		Projects: preview,
		HasMore:  hasMore,
	})
}
