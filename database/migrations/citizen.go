package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCitizensTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating citizens table...")
	err := db.AutoMigrate(&models.Citizen{})
	if err != nil {
		configslog.Log.Error("Failed to migrate citizens table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Citizens table migrated successfully")
	return nil
}
