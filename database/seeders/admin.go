package seeders

import (
	"errors"
	"os"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAdmin SuperAdmin hesabını kontrol eder, yoksa oluşturur.
// Kimlik bilgileri ADMIN_USERNAME / ADMIN_PASSWORD ortam değişkenlerinden
// okunur; tanımlı değilse geliştirme varsayılanları kullanılır.
func SeedSystemAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil, geliştirme parolası kullanılıyor.")
	}

	var existing models.Admin
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Sistem yöneticisi '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem yöneticisi kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem yöneticisi parolası hashlenemedi", zap.Error(err))
		return err
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.AdminRoleSuper,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Sistem yöneticisi oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem yöneticisi '%s' başarıyla oluşturuldu (ID: %d).", username, admin.ID)
	return nil
}
