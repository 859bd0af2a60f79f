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

// IBookingRepository randevu kayıtlarının veritabanı işlemleri için arayüz.
type IBookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAllByCitizen(ctx context.Context, citizenID uint) ([]models.Booking, error)
	FindAllFiltered(ctx context.Context, unitID uint, from, to *time.Time) ([]models.Booking, error)
	ExistsConfirmedForDay(ctx context.Context, citizenID uint, date time.Time) (bool, error)
	UpdateStatusIf(ctx context.Context, id uint, from, to models.BookingStatus) (int64, error)
	CountByCitizenID(ctx context.Context, citizenID uint) (int64, error)
}

// BookingRepository IBookingRepository arayüzünü uygular.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository yeni bir BookingRepository örneği oluşturur.
func NewBookingRepository() IBookingRepository {
	return &BookingRepository{db: configs.GetDB()}
}

// NewBookingRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewBookingRepositoryTx(tx *gorm.DB) IBookingRepository {
	return &BookingRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *BookingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir randevu kaydı ekler. Aynı vatandaş ve tarih için ikinci
// confirmed kayıt, kısmi unique index nedeniyle gorm.ErrDuplicatedKey üretir;
// çeviriyi servis katmanı yapar.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking == nil || booking.CitizenID == 0 {
		return errors.New("geçersiz randevu verisi")
	}
	return r.getDB(ctx).Create(booking).Error
}

// FindByID randevuyu ilişkili birim/hizmet bilgileriyle getirir.
func (r *BookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if id == 0 {
		return nil, errors.New("geçersiz randevu ID")
	}
	var booking models.Booking
	err := r.getDB(ctx).Preload("CareUnit.City").Preload("Service").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BookingRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// FindAllByCitizen bir vatandaşın tüm randevularını (durumdan bağımsız) getirir.
func (r *BookingRepository) FindAllByCitizen(ctx context.Context, citizenID uint) ([]models.Booking, error) {
	if citizenID == 0 {
		return nil, errors.New("geçersiz vatandaş ID")
	}
	var bookings []models.Booking
	err := r.getDB(ctx).
		Where("citizen_id = ?", citizenID).
		Preload("CareUnit.City").Preload("Service").
		Order("date asc, created_at asc").
		Find(&bookings).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.FindAllByCitizen: DB error", zap.Uint("citizenID", citizenID), zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

// FindAllFiltered yönetici listelemesi için opsiyonel birim ve tarih aralığı
// filtreleriyle randevuları getirir.
func (r *BookingRepository) FindAllFiltered(ctx context.Context, unitID uint, from, to *time.Time) ([]models.Booking, error) {
	query := r.getDB(ctx).Model(&models.Booking{})
	if unitID != 0 {
		query = query.Where("care_unit_id = ?", unitID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var bookings []models.Booking
	err := query.Preload("Citizen").Preload("CareUnit").Preload("Service").
		Order("date asc, created_at asc").
		Find(&bookings).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.FindAllFiltered: DB error", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

// ExistsConfirmedForDay vatandaşın o tarihte confirmed randevusu olup
// olmadığını kontrol eder. Vardiyadan ve birimden bağımsızdır: kural
// "günde bir ziyaret"tir.
func (r *BookingRepository) ExistsConfirmedForDay(ctx context.Context, citizenID uint, date time.Time) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Booking{}).
		Where("citizen_id = ? AND date = ? AND status = ?", citizenID, date, models.BookingStatusConfirmed).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("BookingRepository.ExistsConfirmedForDay: DB error",
			zap.Uint("citizenID", citizenID), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// UpdateStatusIf durumu yalnızca mevcut durum 'from' ise 'to' yapar ve
// etkilenen satır sayısını döndürür. Durum makinesinin terminal durumlardan
// çıkışını tek koşullu UPDATE ile engeller.
func (r *BookingRepository) UpdateStatusIf(ctx context.Context, id uint, from, to models.BookingStatus) (int64, error) {
	result := r.getDB(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		configslog.Log.Error("BookingRepository.UpdateStatusIf: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByCitizenID vatandaşın toplam randevu sayısını döndürür.
func (r *BookingRepository) CountByCitizenID(ctx context.Context, citizenID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Booking{}).Where("citizen_id = ?", citizenID).Count(&count).Error
	return count, err
}

var _ IBookingRepository = (*BookingRepository)(nil)
