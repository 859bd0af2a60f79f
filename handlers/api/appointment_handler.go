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

// AppointmentHandler vatandaşın randevu akışı için handler.
type AppointmentHandler struct {
	catalogService services.ICatalogService
	ledgerService  services.ILedgerService
	bookingService services.IBookingService
}

// NewAppointmentHandler yeni bir AppointmentHandler örneği oluşturur.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{
		catalogService: services.NewCatalogService(),
		ledgerService:  services.NewLedgerService(),
		bookingService: services.NewBookingService(),
	}
}

type availableDatesRequest struct {
	UnitID    uint `json:"unit_id"`
	ServiceID uint `json:"service_id"`
}

type createBookingRequest struct {
	CitizenID uint   `json:"citizen_id"`
	UnitID    uint   `json:"unit_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
}

// GetCities (GET /api/appointments/cities)
func (h *AppointmentHandler) GetCities(c *fiber.Ctx) error {
	cities, err := h.catalogService.ListCities(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetCities Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şehirler getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(cities))
	for _, city := range cities {
		list = append(list, fiber.Map{"id": city.ID, "name": city.Name})
	}
	return c.JSON(fiber.Map{"success": true, "cities": list})
}

// GetUnitsByCity (GET /api/appointments/ubs/{cityID})
func (h *AppointmentHandler) GetUnitsByCity(c *fiber.Ctx) error {
	cityID, err := c.ParamsInt("cityID")
	if err != nil || cityID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz şehir ID."})
	}

	units, err := h.catalogService.ListUnits(c.UserContext(), uint(cityID))
	if err != nil {
		configslog.Log.Error("GetUnitsByCity Error", zap.Int("cityID", cityID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sağlık birimleri getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(units))
	for _, unit := range units {
		list = append(list, fiber.Map{"id": unit.ID, "name": unit.Name, "address": unit.Address})
	}
	return c.JSON(fiber.Map{"success": true, "ubs_list": list})
}

// GetServicesByUnit (GET /api/appointments/services/{unitID})
func (h *AppointmentHandler) GetServicesByUnit(c *fiber.Ctx) error {
	unitID, err := c.ParamsInt("unitID")
	if err != nil || unitID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz birim ID."})
	}

	servicesList, err := h.catalogService.ListServicesOfUnit(c.UserContext(), uint(unitID))
	if err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetServicesByUnit Error", zap.Int("unitID", unitID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Hizmetler getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(servicesList))
	for _, svc := range servicesList {
		list = append(list, fiber.Map{"id": svc.ID, "name": svc.Name, "description": svc.Description})
	}
	return c.JSON(fiber.Map{"success": true, "services": list})
}

// AvailableDates (POST /api/appointments/available-dates)
// Bugünden itibaren boş kontenjanı olan tarihleri vardiya kırılımıyla döndürür.
func (h *AppointmentHandler) AvailableDates(c *fiber.Ctx) error {
	var req availableDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}
	if req.UnitID == 0 || req.ServiceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Birim ve hizmet seçimi zorunludur."})
	}

	dates, err := h.ledgerService.QueryAvailability(c.UserContext(), req.UnitID, req.ServiceID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrLedgerInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("AvailableDates Error",
			zap.Uint("unitID", req.UnitID), zap.Uint("serviceID", req.ServiceID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Uygun tarihler getirilirken bir hata oluştu."})
	}

	return c.JSON(fiber.Map{"success": true, "available_dates": dates})
}

// Create (POST /api/appointments/create)
// Randevu oluşturur; kontenjan düşümü ve kayıt tek transaction içindedir.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tarih biçimi geçersiz (YYYY-AA-GG bekleniyor)."})
	}

	booking, err := h.bookingService.CreateBooking(c.UserContext(),
		req.CitizenID, req.UnitID, req.ServiceID, date, models.Shift(req.Shift))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCapacity),
			errors.Is(err, services.ErrDuplicateBookingSameDay),
			errors.Is(err, services.ErrBookingInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateBooking Error", zap.Uint("citizenID", req.CitizenID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevu oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Randevunuz başarıyla oluşturuldu.",
		"appointment": bookingJSON(booking),
	})
}

// GetUserAppointments (GET /api/appointments/user/{citizenID})
func (h *AppointmentHandler) GetUserAppointments(c *fiber.Ctx) error {
	citizenID, err := c.ParamsInt("citizenID")
	if err != nil || citizenID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz vatandaş ID."})
	}

	bookings, err := h.bookingService.GetBookingsForCitizen(c.UserContext(), uint(citizenID))
	if err != nil {
		configslog.Log.Error("GetUserAppointments Error", zap.Int("citizenID", citizenID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevular getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		list = append(list, bookingJSON(&bookings[i]))
	}
	return c.JSON(fiber.Map{"success": true, "appointments": list})
}

// Cancel (PUT /api/appointments/cancel/{id})
// İptal edilen randevunun kontenjanı deftere iade edilir.
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz randevu ID."})
	}

	if err := h.bookingService.CancelBooking(c.UserContext(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrNotCancellable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CancelBooking Error", zap.Int("bookingID", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevu iptal edilirken bir hata oluştu."})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Randevunuz iptal edildi."})
}

// parseDate API tarih biçimini UTC olarak çözümler.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(services.DateLayout, value, time.UTC)
}

func bookingJSON(booking *models.Booking) fiber.Map {
	m := fiber.Map{
		"id":        booking.ID,
		"reference": booking.Reference,
		"date":      booking.Date.Format(services.DateLayout),
		"shift":     booking.Shift,
		"status":    booking.Status,
	}
	if booking.CareUnit.ID != 0 {
		m["ubs_name"] = booking.CareUnit.Name
		if booking.CareUnit.City.ID != 0 {
			m["city_name"] = booking.CareUnit.City.Name
		}
	}
	if booking.Service.ID != 0 {
		m["service_name"] = booking.Service.Name
	}
	return m
}
