package handlers // handlers/admin paketi

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/middlewares"
	"randevu.link/models"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler randevu kayıtlarının yönetici tarafı için handler.
type BookingHandler struct {
	service services.IBookingService
}

// NewBookingHandler yeni bir BookingHandler örneği oluşturur.
func NewBookingHandler() *BookingHandler {
	return &BookingHandler{service: services.NewBookingService()}
}

// ListBookings (GET /api/admin/appointments?unit_id=&from=&to=)
// UnitManager rolündeki yönetici yalnızca kendi biriminin randevularını görür.
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	unitID := uint(c.QueryInt("unit_id"))
	if scope := middlewares.AdminUnitScope(c); scope != 0 {
		unitID = scope
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Başlangıç tarihi geçersiz."})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bitiş tarihi geçersiz."})
	}

	bookings, err := h.service.GetBookingsFiltered(c.UserContext(), unitID, from, to)
	if err != nil {
		configslog.Log.Error("Admin ListBookings Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevular getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		list = append(list, adminBookingJSON(&bookings[i]))
	}
	return c.JSON(fiber.Map{"success": true, "appointments": list})
}

// CompleteBooking (PUT /api/admin/appointments/complete/{id})
// Muayene gerçekleşti işareti; kontenjan etkilenmez.
func (h *BookingHandler) CompleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz randevu ID."})
	}

	if err := h.service.CompleteBooking(c.UserContext(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrNotCompletable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CompleteBooking Error", zap.Int("bookingID", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevu güncellenirken bir hata oluştu."})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Randevu tamamlandı olarak işaretlendi."})
}

// CancelBooking (PUT /api/admin/appointments/cancel/{id})
// Yönetici iptali; vatandaş iptaliyle aynı kurallara tabidir.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz randevu ID."})
	}

	if err := h.service.CancelBooking(c.UserContext(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrNotCancellable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Admin CancelBooking Error", zap.Int("bookingID", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Randevu iptal edilirken bir hata oluştu."})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Randevu iptal edildi."})
}

func adminBookingJSON(booking *models.Booking) fiber.Map {
	m := fiber.Map{
		"id":         booking.ID,
		"reference":  booking.Reference,
		"citizen_id": booking.CitizenID,
		"date":       booking.Date.Format(services.DateLayout),
		"shift":      booking.Shift,
		"status":     booking.Status,
	}
	if booking.Citizen.ID != 0 {
		m["citizen_name"] = booking.Citizen.FullName
		m["national_id"] = booking.Citizen.NationalID
	}
	if booking.CareUnit.ID != 0 {
		m["ubs_name"] = booking.CareUnit.Name
	}
	if booking.Service.ID != 0 {
		m["service_name"] = booking.Service.Name
	}
	return m
}
