package handlers // handlers/api paketi

import (
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler vatandaş kimlik işlemleri için handler.
type AuthHandler struct {
	service services.ICitizenService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewCitizenService()}
}

type loginRequest struct {
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
}

type updateUserRequest struct {
	CitizenID    uint    `json:"citizen_id"`
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	HealthCardNo *string `json:"health_card_no"`
}

// Login (POST /api/auth/login)
// Kimlik numarası + doğum tarihi ile giriş; kayıt yoksa örtük oluşturulur.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}
	if req.NationalID == "" || req.BirthDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kimlik numarası ve doğum tarihi zorunludur."})
	}

	birthDate, err := time.ParseInLocation(services.DateLayout, req.BirthDate, time.UTC)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Doğum tarihi geçersiz."})
	}

	result, err := h.service.Login(c.UserContext(), req.NationalID, birthDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIDNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Login Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Giriş sırasında bir hata oluştu."})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"user_exists":      result.Existed,
		"citizen_id":       result.Citizen.ID,
		"has_appointments": result.HasBookings,
		"citizen":          citizenJSON(result.Citizen),
	})
}

// UpdateUser (PUT /api/auth/update-user)
// Yalnızca gönderilen profil alanlarını günceller.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}
	if req.CitizenID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vatandaş ID zorunludur."})
	}

	update := services.ProfileUpdate{
		FullName:     req.FullName,
		Phone:        req.Phone,
		HealthCardNo: req.HealthCardNo,
	}
	if err := h.service.UpdateProfile(c.UserContext(), req.CitizenID, update); err != nil {
		if errors.Is(err, services.ErrCitizenNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateUser Error", zap.Uint("citizenID", req.CitizenID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Profil güncellenirken bir hata oluştu."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Profil bilgileri güncellendi."})
}

// GetUser (GET /api/auth/user/{id})
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	citizen, err := h.service.GetCitizen(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCitizenNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetUser Error", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kayıt getirilirken bir hata oluştu."})
	}

	return c.JSON(fiber.Map{"success": true, "citizen": citizenJSON(citizen)})
}

func citizenJSON(citizen *models.Citizen) fiber.Map {
	return fiber.Map{
		"id":             citizen.ID,
		"national_id":    citizen.NationalID,
		"birth_date":     citizen.BirthDate.Format(services.DateLayout),
		"full_name":      citizen.FullName,
		"phone":          citizen.Phone,
		"health_card_no": citizen.HealthCardNo,
	}
}
