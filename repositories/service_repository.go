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

// IServiceRepository hizmet kayıtları için arayüz.
type IServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByName(ctx context.Context, name string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
}

// ServiceRepository IServiceRepository arayüzünü uygular.
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository yeni bir ServiceRepository örneği oluşturur.
func NewServiceRepository() IServiceRepository {
	return &ServiceRepository{db: configs.GetDB()}
}

// NewServiceRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewServiceRepositoryTx(tx *gorm.DB) IServiceRepository {
	return &ServiceRepository{db: tx}
}

func (r *ServiceRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if service == nil || service.Name == "" {
		return errors.New("geçersiz hizmet verisi")
	}
	return r.getDB(ctx).Create(service).Error
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	err := r.getDB(ctx).First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ServiceRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	var service models.Service
	err := r.getDB(ctx).Where("name = ?", name).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ServiceRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.getDB(ctx).Order("name asc").Find(&services).Error
	if err != nil {
		configslog.Log.Error("ServiceRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return services, nil
}

var _ IServiceRepository = (*ServiceRepository)(nil)
