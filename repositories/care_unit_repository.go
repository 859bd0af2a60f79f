package repositories

import (
	"context"
	"errors"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICareUnitRepository sağlık birimi kayıtları için arayüz.
type ICareUnitRepository interface {
	Create(ctx context.Context, unit *models.CareUnit) error
	FindByID(ctx context.Context, id uint) (*models.CareUnit, error)
	FindAll(ctx context.Context) ([]models.CareUnit, error)
	FindAllByCityID(ctx context.Context, cityID uint) ([]models.CareUnit, error)
	FindServices(ctx context.Context, unitID uint) ([]models.Service, error)
	AppendService(ctx context.Context, unit *models.CareUnit, service *models.Service) error
	HasService(ctx context.Context, unitID, serviceID uint) (bool, error)
}

// CareUnitRepository ICareUnitRepository arayüzünü uygular.
type CareUnitRepository struct {
	db *gorm.DB
}

// NewCareUnitRepository yeni bir CareUnitRepository örneği oluşturur.
func NewCareUnitRepository() ICareUnitRepository {
	return &CareUnitRepository{db: configs.GetDB()}
}

// NewCareUnitRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewCareUnitRepositoryTx(tx *gorm.DB) ICareUnitRepository {
	return &CareUnitRepository{db: tx}
}

func (r *CareUnitRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *CareUnitRepository) Create(ctx context.Context, unit *models.CareUnit) error {
	if unit == nil || unit.Name == "" || unit.CityID == 0 {
		return errors.New("geçersiz sağlık birimi verisi")
	}
	return r.getDB(ctx).Create(unit).Error
}

func (r *CareUnitRepository) FindByID(ctx context.Context, id uint) (*models.CareUnit, error) {
	var unit models.CareUnit
	err := r.getDB(ctx).Preload("City").First(&unit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CareUnitRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &unit, nil
}

func (r *CareUnitRepository) FindAll(ctx context.Context) ([]models.CareUnit, error) {
	var units []models.CareUnit
	err := r.getDB(ctx).Preload("City").Order("name asc").Find(&units).Error
	if err != nil {
		configslog.Log.Error("CareUnitRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return units, nil
}

func (r *CareUnitRepository) FindAllByCityID(ctx context.Context, cityID uint) ([]models.CareUnit, error) {
	if cityID == 0 {
		return nil, errors.New("geçersiz şehir ID")
	}
	var units []models.CareUnit
	err := r.getDB(ctx).Where("city_id = ?", cityID).Order("name asc").Find(&units).Error
	if err != nil {
		configslog.Log.Error("CareUnitRepository.FindAllByCityID: DB error", zap.Uint("cityID", cityID), zap.Error(err))
		return nil, err
	}
	return units, nil
}

// FindServices birimin sunduğu hizmetleri many-to-many ilişki üzerinden getirir.
func (r *CareUnitRepository) FindServices(ctx context.Context, unitID uint) ([]models.Service, error) {
	var unit models.CareUnit
	err := r.getDB(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("services.name asc") }).
		First(&unit, unitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CareUnitRepository.FindServices: DB error", zap.Uint("unitID", unitID), zap.Error(err))
		return nil, err
	}
	return unit.Services, nil
}

// AppendService hizmeti birime bağlar (care_unit_services ara tablosu).
func (r *CareUnitRepository) AppendService(ctx context.Context, unit *models.CareUnit, service *models.Service) error {
	if unit == nil || service == nil {
		return errors.New("geçersiz ilişkilendirme verisi")
	}
	return r.getDB(ctx).Model(unit).Association("Services").Append(service)
}

// HasService birim-hizmet ilişkisinin zaten var olup olmadığını kontrol eder.
func (r *CareUnitRepository) HasService(ctx context.Context, unitID, serviceID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Table("care_unit_services").
		Where("care_unit_id = ? AND service_id = ?", unitID, serviceID).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("CareUnitRepository.HasService: DB error", zap.Uint("unitID", unitID), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

var _ ICareUnitRepository = (*CareUnitRepository)(nil)
