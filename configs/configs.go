package configs

import (
	"randevu.link/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB repository ve servis katmanlarının kullandığı kısayol.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
