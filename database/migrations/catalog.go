package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCatalogTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cities, care_units & services tables...")
	err := db.AutoMigrate(&models.City{}, &models.CareUnit{}, &models.Service{})
	if err != nil {
		configslog.Log.Error("Failed to migrate catalog tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Catalog tables migrated successfully")
	return nil
}
