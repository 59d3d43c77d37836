package projects

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickai0118/OpenLovart/internal/audit"
	"github.com/rickai0118/OpenLovart/internal/auth"
)

type Handler struct {
	Svc *Service

	// AuditDB is optional; audit failures never fail the request.
	AuditDB *pgxpool.Pool
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// Create serves POST /api/projects. The user-facing messages distinguish
// a missing sign-in from a store that is not ready yet; any insert error
// is surfaced verbatim so the user can retry.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "请先登录")
	}
	if h.Svc == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "数据服务未就绪")
	}

	var body CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	project, editorURL, err := h.Svc.CreateFromPrompt(c.UserContext(), userID, body.Prompt)
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			return fiber.NewError(fiber.StatusBadRequest, "prompt required")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "创建项目失败: "+err.Error())
	}

	h.writeAudit(c, userID, project.ID)

	c.Set("Location", editorURL)
	return c.Status(fiber.StatusCreated).JSON(CreateProjectResponse{
		Project:   *project,
		EditorURL: editorURL,
	})
}

// List serves GET /api/projects with the full ordered list.
func (h *Handler) List(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if h.Svc == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "store not ready")
	}

	items, err := h.Svc.List(c.UserContext(), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load projects: "+err.Error())
	}
	if items == nil {
		items = []Project{}
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) writeAudit(c *fiber.Ctx, userID, projectID string) {
	if h.AuditDB == nil {
		return
	}
	ip := c.IP()
	ua := c.Get("User-Agent")
	_ = audit.Write(c.UserContext(), h.AuditDB, audit.Entry{
		UserID:     &userID,
		Action:     "project_created",
		EntityType: "project",
		EntityID:   &projectID,
		IP:         &ip,
		UserAgent:  &ua,
	})
}
