package services

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/metrics"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerServiceError kontenjan defterinin özel servis hataları.
type LedgerServiceError string

func (e LedgerServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrNoCapacity         LedgerServiceError = "bu tarih ve vardiya için uygun kontenjan bulunmuyor"
	ErrSlotExists         LedgerServiceError = "bu tarih ve vardiya için slot zaten tanımlı"
	ErrSlotNotFound       LedgerServiceError = "slot bulunamadı"
	ErrReleaseAnomaly     LedgerServiceError = "kontenjan iadesi eşleşen slot bulamadı"
	ErrLedgerInvalidInput LedgerServiceError = "geçersiz kontenjan girdisi"
)

// ShiftAvailability bir vardiyanın anlık kontenjan görünümü.
type ShiftAvailability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// AvailableDate bir tarihe ait vardiya->kontenjan eşlemesi.
type AvailableDate struct {
	Date   string                             `json:"date"`
	Shifts map[models.Shift]ShiftAvailability `json:"shifts"`
}

// ILedgerService kontenjan defteri işlemleri için arayüz.
// Temel değişmez kural: bir slotun available değeri hiçbir işlem dizisi
// sonunda 0'ın altına inmez, total'in üstüne çıkmaz.
type ILedgerService interface {
	QueryAvailability(ctx context.Context, unitID, serviceID uint, fromDate time.Time) ([]AvailableDate, error)
	Reserve(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error
	Release(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error
	CreateSlot(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift, total int) (*models.Slot, error)
	GetSlots(ctx context.Context, unitID, serviceID uint, from, to *time.Time) ([]models.Slot, error)
}

// LedgerService ILedgerService arayüzünü uygular.
type LedgerService struct {
	repo repositories.ISlotRepository
}

// NewLedgerService yeni bir LedgerService örneği oluşturur.
func NewLedgerService() ILedgerService {
	return &LedgerService{repo: repositories.NewSlotRepository()}
}

// QueryAvailability birim+hizmet için fromDate ve sonrasındaki boş
// kontenjanları tarihe göre gruplar. Salt okunurdur, yan etkisi yoktur.
func (s *LedgerService) QueryAvailability(ctx context.Context, unitID, serviceID uint, fromDate time.Time) ([]AvailableDate, error) {
	if unitID == 0 || serviceID == 0 {
		return nil, ErrLedgerInvalidInput
	}

	slots, err := s.repo.FindAvailable(ctx, unitID, serviceID, NormalizeDate(fromDate))
	if err != nil {
		return nil, err
	}

	// Slotlar tarih sıralı gelir; aynı sırayı koruyarak grupla.
	result := make([]AvailableDate, 0, len(slots))
	index := make(map[string]int, len(slots))
	for _, slot := range slots {
		key := slot.Date.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, AvailableDate{
				Date:   key,
				Shifts: make(map[models.Shift]ShiftAvailability, 2),
			})
		}
		result[i].Shifts[slot.Shift] = ShiftAvailability{Available: slot.Available, Total: slot.Total}
	}
	return result, nil
}

// Reserve bir birim kontenjanı atomik olarak düşürür. Kontrol ve azaltma
// tek koşullu UPDATE olduğundan aynı slota eşzamanlı istekler fazladan
// rezervasyon üretemez; yetersiz kontenjan ErrNoCapacity olarak döner.
func (s *LedgerService) Reserve(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error {
	if unitID == 0 || serviceID == 0 || !shift.IsValid() {
		return ErrLedgerInvalidInput
	}

	err := s.repo.ReserveCapacity(ctx, unitID, serviceID, NormalizeDate(date), shift)
	if err != nil {
		if errors.Is(err, repositories.ErrNoCapacity) {
			metrics.CapacityRejections.Inc()
			return ErrNoCapacity
		}
		return err
	}
	return nil
}

// Release bir birim kontenjanı iade eder. İade, daha önceki başarılı bir
// Reserve ile 1:1 eşleşmelidir; bu eşleme randevu kayıt servisinin
// sorumluluğudur. Eşleşen slot yoksa veya kontenjan zaten tavandaysa durum
// anomali olarak loglanır ve ErrReleaseAnomaly döner; defter bozulmaz.
func (s *LedgerService) Release(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error {
	if unitID == 0 || serviceID == 0 || !shift.IsValid() {
		return ErrLedgerInvalidInput
	}

	err := s.repo.ReleaseCapacity(ctx, unitID, serviceID, NormalizeDate(date), shift)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrCapacityAtTotal) {
			configslog.Log.Warn("Kontenjan iade anomalisi",
				zap.Uint("unitID", unitID),
				zap.Uint("serviceID", serviceID),
				zap.Time("date", date),
				zap.String("shift", string(shift)),
				zap.Error(err),
			)
			metrics.ReleaseAnomalies.Inc()
			return ErrReleaseAnomaly
		}
		return err
	}
	return nil
}

// CreateSlot yönetici işlemiyle yeni slot tanımlar; available == total başlar.
func (s *LedgerService) CreateSlot(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift, total int) (*models.Slot, error) {
	if unitID == 0 || serviceID == 0 || !shift.IsValid() || total <= 0 {
		return nil, ErrLedgerInvalidInput
	}

	slot := models.Slot{
		CareUnitID: unitID,
		ServiceID:  serviceID,
		Date:       NormalizeDate(date),
		Shift:      shift,
		Available:  total,
		Total:      total,
	}
	if err := s.repo.Create(ctx, &slot); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotExists
		}
		configslog.Log.Error("Slot oluşturulamadı", zap.Uint("unitID", unitID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Slot oluşturuldu: birim %d, hizmet %d, %s %s, kontenjan %d",
		unitID, serviceID, slot.Date.Format(DateLayout), shift, total)
	return &slot, nil
}

// GetSlots yönetici listelemesi için filtreli slot listesi döndürür.
func (s *LedgerService) GetSlots(ctx context.Context, unitID, serviceID uint, from, to *time.Time) ([]models.Slot, error) {
	return s.repo.FindAllFiltered(ctx, unitID, serviceID, from, to)
}

var _ ILedgerService = (*LedgerService)(nil)
