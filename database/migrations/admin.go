package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating admins table...")
	err := db.AutoMigrate(&models.Admin{})
	if err != nil {
		configslog.Log.Error("Failed to migrate admins table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Admins table migrated successfully")
	return nil
}
