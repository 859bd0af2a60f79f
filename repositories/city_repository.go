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

// ICityRepository şehir kayıtları için arayüz.
type ICityRepository interface {
	Create(ctx context.Context, city *models.City) error
	FindByID(ctx context.Context, id uint) (*models.City, error)
	FindByName(ctx context.Context, name string) (*models.City, error)
	FindAll(ctx context.Context) ([]models.City, error)
}

// CityRepository ICityRepository arayüzünü uygular.
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository yeni bir CityRepository örneği oluşturur.
func NewCityRepository() ICityRepository {
	return &CityRepository{db: configs.GetDB()}
}

// NewCityRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewCityRepositoryTx(tx *gorm.DB) ICityRepository {
	return &CityRepository{db: tx}
}

func (r *CityRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	if city == nil || city.Name == "" {
		return errors.New("geçersiz şehir verisi")
	}
	return r.getDB(ctx).Create(city).Error
}

func (r *CityRepository) FindByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	err := r.getDB(ctx).First(&city, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CityRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) FindByName(ctx context.Context, name string) (*models.City, error) {
	var city models.City
	err := r.getDB(ctx).Where("name = ?", name).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CityRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) FindAll(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.getDB(ctx).Order("name asc").Find(&cities).Error
	if err != nil {
		configslog.Log.Error("CityRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return cities, nil
}

var _ ICityRepository = (*CityRepository)(nil)
