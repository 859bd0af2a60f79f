package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBookingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating bookings table...")
	err := db.AutoMigrate(&models.Booking{})
	if err != nil {
		configslog.Log.Error("Failed to migrate bookings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Bookings table migrated successfully")
	return nil
}
