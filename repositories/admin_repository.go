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

// IAdminRepository yönetici kayıtları için arayüz.
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// AdminRepository IAdminRepository arayüzünü uygular.
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository yeni bir AdminRepository örneği oluşturur.
func NewAdminRepository() IAdminRepository {
	return &AdminRepository{db: configs.GetDB()}
}

// NewAdminRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewAdminRepositoryTx(tx *gorm.DB) IAdminRepository {
	return &AdminRepository{db: tx}
}

func (r *AdminRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin == nil || admin.Username == "" || admin.PasswordHash == "" {
		return errors.New("geçersiz yönetici verisi")
	}
	return r.getDB(ctx).Create(admin).Error
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.getDB(ctx).First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AdminRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.getDB(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		// Kullanıcı adı loglanır, parola asla loglanmaz.
		configslog.Log.Error("AdminRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

var _ IAdminRepository = (*AdminRepository)(nil)
