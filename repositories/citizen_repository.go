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

// ICitizenRepository vatandaş kayıtlarının veritabanı işlemleri için arayüz.
type ICitizenRepository interface {
	Create(ctx context.Context, citizen *models.Citizen) error
	FindByID(ctx context.Context, id uint) (*models.Citizen, error)
	FindByNationalIDAndBirthDate(ctx context.Context, nationalID string, birthDate time.Time) (*models.Citizen, error)
	Update(ctx context.Context, citizen *models.Citizen) error
}

// CitizenRepository ICitizenRepository arayüzünü uygular.
type CitizenRepository struct {
	db *gorm.DB
}

// NewCitizenRepository yeni bir CitizenRepository örneği oluşturur.
func NewCitizenRepository() ICitizenRepository {
	return &CitizenRepository{db: configs.GetDB()}
}

// NewCitizenRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewCitizenRepositoryTx(tx *gorm.DB) ICitizenRepository {
	return &CitizenRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *CitizenRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir vatandaş kaydı oluşturur (ilk girişte örtük oluşturma).
func (r *CitizenRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	if citizen == nil || citizen.NationalID == "" {
		return errors.New("geçersiz vatandaş verisi")
	}
	return r.getDB(ctx).Create(citizen).Error
}

// FindByID vatandaşı ID ile bulur.
func (r *CitizenRepository) FindByID(ctx context.Context, id uint) (*models.Citizen, error) {
	if id == 0 {
		return nil, errors.New("geçersiz vatandaş ID")
	}
	var citizen models.Citizen
	err := r.getDB(ctx).First(&citizen, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CitizenRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &citizen, nil
}

// FindByNationalIDAndBirthDate kimlik numarası ve doğum tarihi eşleşen kaydı bulur.
func (r *CitizenRepository) FindByNationalIDAndBirthDate(ctx context.Context, nationalID string, birthDate time.Time) (*models.Citizen, error) {
	var citizen models.Citizen
	err := r.getDB(ctx).
		Where("national_id = ? AND birth_date = ?", nationalID, birthDate).
		First(&citizen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CitizenRepository.FindByNationalIDAndBirthDate: DB error", zap.Error(err))
		return nil, err
	}
	return &citizen, nil
}

// Update vatandaş profilini Save ile günceller.
func (r *CitizenRepository) Update(ctx context.Context, citizen *models.Citizen) error {
	if citizen == nil || citizen.ID == 0 {
		return errors.New("güncellenecek vatandaş kaydı geçerli değil")
	}
	return r.getDB(ctx).Save(citizen).Error
}

var _ ICitizenRepository = (*CitizenRepository)(nil)
