package handlers // handlers/admin paketi

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler şehir/birim/hizmet kataloğunun yönetimi için handler.
type CatalogHandler struct {
	service services.ICatalogService
}

// NewCatalogHandler yeni bir CatalogHandler örneği oluşturur.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{service: services.NewCatalogService()}
}

type createCityRequest struct {
	Name string `json:"name"`
}

type createUnitRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	CityID  uint   `json:"city_id"`
}

type createServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type assignServiceRequest struct {
	UnitID    uint `json:"unit_id"`
	ServiceID uint `json:"service_id"`
}

// ListCities (GET /api/admin/cities)
func (h *CatalogHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.service.ListCities(c.UserContext())
	if err != nil {
		configslog.Log.Error("Admin ListCities Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şehirler getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(cities))
	for _, city := range cities {
		list = append(list, fiber.Map{"id": city.ID, "name": city.Name})
	}
	return c.JSON(fiber.Map{"success": true, "cities": list})
}

// CreateCity (POST /api/admin/cities)
func (h *CatalogHandler) CreateCity(c *fiber.Ctx) error {
	var req createCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	city, err := h.service.CreateCity(c.UserContext(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCityExists), errors.Is(err, services.ErrCatalogInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateCity Error", zap.String("name", req.Name), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şehir oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "city": fiber.Map{"id": city.ID, "name": city.Name}})
}

// ListUnits (GET /api/admin/ubs?city_id=)
func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	cityID := c.QueryInt("city_id")
	if cityID < 0 {
		cityID = 0
	}

	units, err := h.service.ListUnits(c.UserContext(), uint(cityID))
	if err != nil {
		configslog.Log.Error("Admin ListUnits Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sağlık birimleri getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(units))
	for _, unit := range units {
		item := fiber.Map{"id": unit.ID, "name": unit.Name, "address": unit.Address, "city_id": unit.CityID}
		if unit.City.ID != 0 {
			item["city_name"] = unit.City.Name
		}
		list = append(list, item)
	}
	return c.JSON(fiber.Map{"success": true, "ubs_list": list})
}

// CreateUnit (POST /api/admin/ubs)
func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	var req createUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	unit, err := h.service.CreateUnit(c.UserContext(), req.Name, req.Address, req.CityID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCityNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCatalogInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateUnit Error", zap.String("name", req.Name), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sağlık birimi oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"ubs":     fiber.Map{"id": unit.ID, "name": unit.Name, "address": unit.Address, "city_id": unit.CityID},
	})
}

// ListServices (GET /api/admin/services)
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	servicesList, err := h.service.ListServices(c.UserContext())
	if err != nil {
		configslog.Log.Error("Admin ListServices Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Hizmetler getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(servicesList))
	for _, svc := range servicesList {
		list = append(list, fiber.Map{"id": svc.ID, "name": svc.Name, "description": svc.Description})
	}
	return c.JSON(fiber.Map{"success": true, "services": list})
}

// CreateService (POST /api/admin/services)
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var req createServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	service, err := h.service.CreateService(c.UserContext(), req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceExists), errors.Is(err, services.ErrCatalogInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateService Error", zap.String("name", req.Name), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Hizmet oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"service": fiber.Map{"id": service.ID, "name": service.Name, "description": service.Description},
	})
}

// AssignService (POST /api/admin/ubs-services)
// Bir hizmeti bir sağlık birimine tanımlar.
func (h *CatalogHandler) AssignService(c *fiber.Ctx) error {
	var req assignServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	if err := h.service.AssignServiceToUnit(c.UserContext(), req.UnitID, req.ServiceID); err != nil {
		switch {
		case errors.Is(err, services.ErrUnitNotFound), errors.Is(err, services.ErrServiceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrServiceAlreadyAssigned), errors.Is(err, services.ErrCatalogInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("AssignService Error",
				zap.Uint("unitID", req.UnitID), zap.Uint("serviceID", req.ServiceID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Hizmet birime tanımlanırken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Hizmet birime tanımlandı."})
}
