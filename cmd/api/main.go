package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/rickai0118/OpenLovart/internal/admin"
	"github.com/rickai0118/OpenLovart/internal/auth"
	"github.com/rickai0118/OpenLovart/internal/config"
	"github.com/rickai0118/OpenLovart/internal/credits"
	"github.com/rickai0118/OpenLovart/internal/dashboard"
	"github.com/rickai0118/OpenLovart/internal/logging"
	"github.com/rickai0118/OpenLovart/internal/projects"
	"github.com/rickai0118/OpenLovart/internal/router"
	"github.com/rickai0118/OpenLovart/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	logger := logging.NewWith(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error opening store: %v", err)
	}
	defer st.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Dev token endpoint
	if strings.EqualFold(cfg.Env, "dev") {
		app.Get("/dev/token", func(c *fiber.Ctx) error {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"user_id": "11111111-1111-1111-1111-111111111111",
				"exp":     time.Now().Add(24 * time.Hour).Unix(),
			})
			signed, err := token.SignedString([]byte(secret))
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			return c.JSON(fiber.Map{"token": signed})
		})
	}

	creditsSvc := credits.NewService(credits.NewRepo(st.Pool), logger)
	projectsSvc := projects.NewService(projects.NewRepo(st.Pool), logger)
	projectsHandler := projects.NewHandler(projectsSvc)
	projectsHandler.AuditDB = st.Pool

	authMW := withLastSeen(st.Pool, auth.Middleware([]byte(secret)))

	r := &router.Router{
		AuthHandler:      &auth.Handler{DB: st.Pool, Secret: []byte(secret)},
		CreditsHandler:   credits.NewHandler(creditsSvc),
		ProjectsHandler:  projectsHandler,
		DashboardHandler: &dashboard.Handler{Credits: creditsSvc, Projects: projectsSvc, Log: logger},
		AdminHandler:     admin.NewHandler(&admin.Store{DB: st.DB}),
		AuthMW:           authMW,
		AdminMW:          admin.RequireAdminKey(cfg.AdminKey),
		CreateRate: router.RateLimitCreate(
			cfg.RateLimitCreateMax,
			time.Duration(cfg.RateLimitCreateWindowSeconds)*time.Second,
		),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}

// withLastSeen stamps users.last_seen_at after a successful auth without
// blocking the request.
func withLastSeen(pool *pgxpool.Pool, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := next(c); err != nil {
			return err
		}
		if uid := auth.UserID(c); uid != "" {
			go func(uid string) {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_, _ = pool.Exec(ctx, `UPDATE users SET last_seen_at = NOW() WHERE id = $1::uuid`, uid)
			}(uid)
		}
		return nil
	}
}
