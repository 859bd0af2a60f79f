package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSlotsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating slots table...")
	err := db.AutoMigrate(&models.Slot{})
	if err != nil {
		configslog.Log.Error("Failed to migrate slots table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Slots table migrated successfully")
	return nil
}
