package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISlotRepository kontenjan defterinin veritabanı işlemleri için arayüz.
// Reserve/Release işlemleri tek bir koşullu UPDATE olarak çalışır;
// oku-sonra-yaz dizisi kullanılmaz (bkz. ReserveCapacity/ReleaseCapacity).
type ISlotRepository interface {
	Create(ctx context.Context, slot *models.Slot) error
	FindByTuple(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) (*models.Slot, error)
	FindAvailable(ctx context.Context, unitID, serviceID uint, fromDate time.Time) ([]models.Slot, error)
	FindAllFiltered(ctx context.Context, unitID, serviceID uint, from, to *time.Time) ([]models.Slot, error)
	ReserveCapacity(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error
	ReleaseCapacity(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error
}

// SlotRepository ISlotRepository arayüzünü uygular.
type SlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository yeni bir SlotRepository örneği oluşturur.
func NewSlotRepository() ISlotRepository {
	return &SlotRepository{db: configs.GetDB()}
}

// NewSlotRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewSlotRepositoryTx(tx *gorm.DB) ISlotRepository {
	return &SlotRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *SlotRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir slot kaydı oluşturur. Dörtlü üzerindeki unique index
// sayesinde aynı tuple için ikinci kayıt gorm.ErrDuplicatedKey ile reddedilir.
func (r *SlotRepository) Create(ctx context.Context, slot *models.Slot) error {
	if slot == nil || slot.CareUnitID == 0 || slot.ServiceID == 0 || !slot.Shift.IsValid() {
		return errors.New("geçersiz slot verisi")
	}
	return r.getDB(ctx).Create(slot).Error
}

// FindByTuple (birim, hizmet, tarih, vardiya) dörtlüsüne ait slotu bulur.
func (r *SlotRepository) FindByTuple(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) (*models.Slot, error) {
	var slot models.Slot
	err := r.getDB(ctx).
		Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ?", unitID, serviceID, date, shift).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SlotRepository.FindByTuple: DB error", zap.Uint("unitID", unitID), zap.Error(err))
		return nil, err
	}
	return &slot, nil
}

// FindAvailable verilen birim+hizmet için fromDate ve sonrasında
// kontenjanı kalmış (available > 0) slotları tarih sırasıyla getirir.
func (r *SlotRepository) FindAvailable(ctx context.Context, unitID, serviceID uint, fromDate time.Time) ([]models.Slot, error) {
	var slots []models.Slot
	err := r.getDB(ctx).
		Where("care_unit_id = ? AND service_id = ? AND date >= ? AND available > 0", unitID, serviceID, fromDate).
		Order("date asc, shift asc").
		Find(&slots).Error
	if err != nil {
		configslog.Log.Error("SlotRepository.FindAvailable: DB error",
			zap.Uint("unitID", unitID), zap.Uint("serviceID", serviceID), zap.Error(err))
		return nil, err
	}
	return slots, nil
}

// FindAllFiltered yönetici listelemesi için opsiyonel filtrelerle slotları getirir.
func (r *SlotRepository) FindAllFiltered(ctx context.Context, unitID, serviceID uint, from, to *time.Time) ([]models.Slot, error) {
	query := r.getDB(ctx).Model(&models.Slot{})
	if unitID != 0 {
		query = query.Where("care_unit_id = ?", unitID)
	}
	if serviceID != 0 {
		query = query.Where("service_id = ?", serviceID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var slots []models.Slot
	err := query.Preload("CareUnit").Preload("Service").Order("date asc, shift asc").Find(&slots).Error
	if err != nil {
		configslog.Log.Error("SlotRepository.FindAllFiltered: DB error", zap.Error(err))
		return nil, err
	}
	return slots, nil
}

// ReserveCapacity kontenjanı tek bir atomik koşullu UPDATE ile düşürür:
//
//	UPDATE slots SET available = available - 1
//	WHERE care_unit_id = ? AND service_id = ? AND date = ? AND shift = ? AND available > 0
//
// Hiçbir satır etkilenmediyse slot yoktur veya kontenjan bitmiştir (ErrNoCapacity).
// Kontrol ve azaltma aynı ifadede olduğundan eşzamanlı çağrılar available'ı
// asla negatife düşüremez.
func (r *SlotRepository) ReserveCapacity(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error {
	result := r.getDB(ctx).Model(&models.Slot{}).
		Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ? AND available > 0",
			unitID, serviceID, date, shift).
		UpdateColumn("available", gorm.Expr("available - 1"))
	if result.Error != nil {
		configslog.Log.Error("SlotRepository.ReserveCapacity: DB error",
			zap.Uint("unitID", unitID), zap.Uint("serviceID", serviceID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoCapacity
	}
	return nil
}

// ReleaseCapacity kontenjanı koşullu UPDATE ile iade eder; available < total
// koşulu tavanın aşılmasını engeller. Satır etkilenmediyse ayrım yapılır:
// slot hiç yoksa ErrNotFound, tavandaysa ErrCapacityAtTotal döner.
// İade idempotent değildir; 1:1 eşleme disiplini çağıranın sorumluluğudur.
func (r *SlotRepository) ReleaseCapacity(ctx context.Context, unitID, serviceID uint, date time.Time, shift models.Shift) error {
	db := r.getDB(ctx)
	result := db.Model(&models.Slot{}).
		Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ? AND available < total",
			unitID, serviceID, date, shift).
		UpdateColumn("available", gorm.Expr("available + 1"))
	if result.Error != nil {
		configslog.Log.Error("SlotRepository.ReleaseCapacity: DB error",
			zap.Uint("unitID", unitID), zap.Uint("serviceID", serviceID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Slot{}).
			Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ?", unitID, serviceID, date, shift).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrCapacityAtTotal
	}
	return nil
}

var _ ISlotRepository = (*SlotRepository)(nil)
