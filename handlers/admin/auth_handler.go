package handlers // handlers/admin paketi

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler yönetici kimlik işlemleri için handler.
type AuthHandler struct {
	service services.IAdminService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAdminService()}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UnitID   *uint  `json:"unit_id"`
}

// Login (POST /api/admin/login)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	token, admin, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrAdminInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Admin Login Error", zap.String("username", req.Username), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Giriş sırasında bir hata oluştu."})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
			"unit_id":  admin.CareUnitID,
		},
	})
}

// CreateAdmin (POST /api/admin/create-admin) — yalnızca SuperAdmin.
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	admin, err := h.service.CreateAdmin(c.UserContext(), req.Username, req.Password, models.AdminRole(req.Role), req.UnitID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminUsernameExists),
			errors.Is(err, services.ErrAdminPasswordTooShort),
			errors.Is(err, services.ErrAdminInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateAdmin Error", zap.String("username", req.Username), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Yönetici oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
			"unit_id":  admin.CareUnitID,
		},
	})
}
