package handlers // handlers/admin paketi

import (
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/middlewares"
	"randevu.link/models"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SlotHandler kontenjan defterinin yönetimi için handler.
type SlotHandler struct {
	service services.ILedgerService
}

// NewSlotHandler yeni bir SlotHandler örneği oluşturur.
func NewSlotHandler() *SlotHandler {
	return &SlotHandler{service: services.NewLedgerService()}
}

type createSlotRequest struct {
	UnitID    uint   `json:"unit_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
	Total     int    `json:"total"`
}

// ListSlots (GET /api/admin/slots?unit_id=&service_id=&from=&to=)
// UnitManager rolündeki yönetici yalnızca kendi birimini görür.
func (h *SlotHandler) ListSlots(c *fiber.Ctx) error {
	unitID := uint(c.QueryInt("unit_id"))
	if scope := middlewares.AdminUnitScope(c); scope != 0 {
		unitID = scope
	}
	serviceID := uint(c.QueryInt("service_id"))

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Başlangıç tarihi geçersiz."})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bitiş tarihi geçersiz."})
	}

	slots, err := h.service.GetSlots(c.UserContext(), unitID, serviceID, from, to)
	if err != nil {
		configslog.Log.Error("ListSlots Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Slotlar getirilirken bir hata oluştu."})
	}

	list := make([]fiber.Map, 0, len(slots))
	for _, slot := range slots {
		list = append(list, fiber.Map{
			"id":         slot.ID,
			"unit_id":    slot.CareUnitID,
			"service_id": slot.ServiceID,
			"date":       slot.Date.Format(services.DateLayout),
			"shift":      slot.Shift,
			"available":  slot.Available,
			"total":      slot.Total,
		})
	}
	return c.JSON(fiber.Map{"success": true, "slots": list})
}

// CreateSlot (POST /api/admin/slots)
// Yeni slot available == total ile açılır.
func (h *SlotHandler) CreateSlot(c *fiber.Ctx) error {
	var req createSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi."})
	}

	if scope := middlewares.AdminUnitScope(c); scope != 0 && scope != req.UnitID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Yalnızca kendi biriminiz için slot tanımlayabilirsiniz."})
	}

	date, err := time.ParseInLocation(services.DateLayout, req.Date, time.UTC)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tarih biçimi geçersiz (YYYY-AA-GG bekleniyor)."})
	}

	slot, err := h.service.CreateSlot(c.UserContext(), req.UnitID, req.ServiceID, date, models.Shift(req.Shift), req.Total)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotExists), errors.Is(err, services.ErrLedgerInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateSlot Error", zap.Uint("unitID", req.UnitID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Slot oluşturulurken bir hata oluştu."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"slot": fiber.Map{
			"id":         slot.ID,
			"unit_id":    slot.CareUnitID,
			"service_id": slot.ServiceID,
			"date":       slot.Date.Format(services.DateLayout),
			"shift":      slot.Shift,
			"available":  slot.Available,
			"total":      slot.Total,
		},
	})
}

// parseDateQuery isteğe bağlı tarih sorgu parametresini çözümler; boşsa nil döner.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(services.DateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
