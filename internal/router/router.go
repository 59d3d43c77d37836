package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rickai0118/OpenLovart/internal/admin"
	"github.com/rickai0118/OpenLovart/internal/auth"
	"github.com/rickai0118/OpenLovart/internal/credits"
	"github.com/rickai0118/OpenLovart/internal/dashboard"
	"github.com/rickai0118/OpenLovart/internal/notifications"
	"github.com/rickai0118/OpenLovart/internal/projects"
)

type Router struct {
	AuthHandler      *auth.Handler
	CreditsHandler   *credits.Handler
	ProjectsHandler  *projects.Handler
	DashboardHandler *dashboard.Handler
	AdminHandler     *admin.Handler

	AuthMW     fiber.Handler
	AdminMW    fiber.Handler
	CreateRate fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/api/auth/signup", RateLimitAuth(), r.AuthHandler.Signup)
		app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
		app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)
	}

	if r.DashboardHandler != nil {
		app.Get("/api/dashboard", r.AuthMW, r.DashboardHandler.Get)
	}

	if r.CreditsHandler != nil {
		app.Get("/api/credits", r.AuthMW, r.CreditsHandler.GetBalance)
	}

	if r.ProjectsHandler != nil {
		// Auth runs first so the limiter can key by user id; failed auth
		// also never consumes rate budget.
		create := r.ProjectsHandler.Create
		if r.CreateRate != nil {
			app.Post("/api/projects", r.AuthMW, r.CreateRate, create)
		} else {
			app.Post("/api/projects", r.AuthMW, create)
		}
		app.Get("/api/projects", r.AuthMW, r.ProjectsHandler.List)
	}

	app.Get("/api/notifications", notifications.Handler)

	if r.AdminHandler != nil && r.AdminMW != nil {
		app.Get("/api/admin/overview", r.AdminMW, r.AdminHandler.Overview)
	}
}
